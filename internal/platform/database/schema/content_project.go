package schema

// ContentProjectTable represents the 'content.project' table
type ContentProjectTable struct {
	Table        string
	ID           string
	Title        string
	Slug         string
	Description  string
	Content      string
	Technologies string
	GithubURL    string
	LiveURL      string
	ImageURL     string
	Featured     string
	Published    string
	CreatedAt    string
	UpdatedAt    string
}

// ContentProject is the schema definition for content.project
var ContentProject = ContentProjectTable{
	Table:        "content.project",
	ID:           "id",
	Title:        "title",
	Slug:         "slug",
	Description:  "description",
	Content:      "content",
	Technologies: "technologies",
	GithubURL:    "githuburl",
	LiveURL:      "liveurl",
	ImageURL:     "imageurl",
	Featured:     "featured",
	Published:    "published",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t ContentProjectTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Content, t.Technologies,
		t.GithubURL, t.LiveURL, t.ImageURL, t.Featured, t.Published,
		t.CreatedAt, t.UpdatedAt,
	}
}
