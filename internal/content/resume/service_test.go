// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package resume

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhngo/folio/internal/platform/apperr"
)

type fakeRepository struct {
	revisions []*Revision
	clock     time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeRepository) Latest(_ context.Context) (*Revision, error) {
	if len(f.revisions) == 0 {
		return nil, apperr.NotFound("No resume has been saved yet")
	}
	sorted := append([]*Revision(nil), f.revisions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	return sorted[0], nil
}

func (f *fakeRepository) List(_ context.Context, limit int) ([]*Revision, error) {
	sorted := append([]*Revision(nil), f.revisions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Revision, error) {
	for _, r := range f.revisions {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Resume revision not found")
}

func (f *fakeRepository) Insert(_ context.Context, revision *Revision) error {
	f.clock = f.clock.Add(time.Minute)
	clone := *revision
	clone.CreatedAt = f.clock
	f.revisions = append(f.revisions, &clone)
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	for i, r := range f.revisions {
		if r.ID == id {
			f.revisions = append(f.revisions[:i], f.revisions[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Resume revision not found")
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validDocument() Document {
	return Document{
		Version: DocumentVersion,
		Basics: Basics{
			Name:    "Minh Ngo",
			Label:   "Backend Engineer",
			Email:   "minh@example.com",
			Website: "https://example.com",
		},
		Experience: []Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2020-01"},
		},
		Education: []Education{
			{Institution: "State University", Degree: "BSc"},
		},
		Skills: []SkillGroup{
			{Category: "Languages", Items: []string{"Go", "SQL"}},
		},
	}
}

func TestDocumentValidate(t *testing.T) {
	t.Run("accepts a complete document", func(t *testing.T) {
		assert.NoError(t, validDocument().Validate())
	})

	t.Run("rejects unsupported schema version", func(t *testing.T) {
		document := validDocument()
		document.Version = 99

		err := document.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported document version")
	})

	t.Run("rejects missing name", func(t *testing.T) {
		document := validDocument()
		document.Basics.Name = ""

		require.Error(t, document.Validate())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		document := validDocument()
		document.Basics.Email = "not-an-email"

		require.Error(t, document.Validate())
	})

	t.Run("rejects experience without company", func(t *testing.T) {
		document := validDocument()
		document.Experience = append(document.Experience, Experience{Position: "Ghost"})

		require.Error(t, document.Validate())
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Run("stamps the current schema version when omitted", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		document := validDocument()
		document.Version = 0

		revision, err := service.Update(context.Background(), document)

		require.NoError(t, err)
		assert.Equal(t, DocumentVersion, revision.Document.Version)
	})

	t.Run("each update appends a revision and latest wins", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		first := validDocument()
		_, err := service.Update(context.Background(), first)
		require.NoError(t, err)

		second := validDocument()
		second.Basics.Label = "Staff Engineer"
		_, err = service.Update(context.Background(), second)
		require.NoError(t, err)

		latest, err := service.Latest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Staff Engineer", latest.Document.Basics.Label)

		history, err := service.History(context.Background())
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("deleting the latest revision rolls back to the previous one", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		first := validDocument()
		_, err := service.Update(context.Background(), first)
		require.NoError(t, err)

		second := validDocument()
		second.Basics.Label = "Staff Engineer"
		_, err = service.Update(context.Background(), second)
		require.NoError(t, err)

		require.NoError(t, service.DeleteLatest(context.Background()))

		latest, err := service.Latest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first.Basics.Label, latest.Document.Basics.Label)
	})

	t.Run("deleting with no revisions reports not found", func(t *testing.T) {
		service := newTestService(newFakeRepository())

		err := service.DeleteLatest(context.Background())

		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("invalid document is rejected and nothing is written", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		document := validDocument()
		document.Basics.Name = ""

		_, err := service.Update(context.Background(), document)

		require.Error(t, err)
		assert.Empty(t, repo.revisions)
	})
}

func TestServiceLatestEmpty(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Latest(context.Background())

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
