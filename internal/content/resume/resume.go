// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

/*
Package resume implements the résumé domain.

The résumé is a single versioned JSON document rather than a set of relational
rows: every update appends an immutable revision, and reads return the latest
one. The document carries an explicit schema version so older revisions stay
readable when the structure evolves.
*/
package resume

import (
	"fmt"
	"time"

	"github.com/minhngo/folio/internal/platform/validate"
)

// DocumentVersion is the schema version written by this build.
const DocumentVersion = 1

// Document is the structured résumé content.
type Document struct {
	Version        int             `json:"version"`
	Basics         Basics          `json:"basics"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Projects       []ProjectRef    `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}

// Basics is the header block of the résumé.
type Basics struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date,omitempty"` // empty means current
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is one schooling entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// SkillGroup is a named cluster of related skills.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ProjectRef is a short project mention inside the résumé.
type ProjectRef struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Certification is one credential entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Language is one spoken-language entry.
type Language struct {
	Name    string `json:"name"`
	Fluency string `json:"fluency,omitempty"`
}

// Revision is one stored résumé snapshot.
type Revision struct {
	ID        string    `json:"id"`
	Document  Document  `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the structural integrity of a document.
//
// It runs at both boundaries: before a revision is written, and after one is
// read back from storage. A stored document that no longer validates is
// surfaced as an error rather than silently replaced with a default.
func (document Document) Validate() error {
	if document.Version != DocumentVersion {
		return fmt.Errorf("resume: unsupported document version %d", document.Version)
	}

	validator := &validate.Validator{}
	validator.Required("basics.name", document.Basics.Name)
	if document.Basics.Email != "" {
		validator.Email("basics.email", document.Basics.Email)
	}
	if document.Basics.Website != "" {
		validator.URL("basics.website", document.Basics.Website)
	}

	for i, experience := range document.Experience {
		validator.
			Required(fmt.Sprintf("experience[%d].company", i), experience.Company).
			Required(fmt.Sprintf("experience[%d].position", i), experience.Position)
	}
	for i, education := range document.Education {
		validator.Required(fmt.Sprintf("education[%d].institution", i), education.Institution)
	}
	for i, group := range document.Skills {
		validator.Required(fmt.Sprintf("skills[%d].category", i), group.Category)
	}

	return validator.Err()
}
