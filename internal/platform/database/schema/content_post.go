package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Published   string
	PublishedAt string
	AuthorID    string
	CategoryID  string
	CreatedAt   string
	UpdatedAt   string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:       "content.post",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Content:     "content",
	Excerpt:     "excerpt",
	Published:   "published",
	PublishedAt: "publishedat",
	AuthorID:    "authorid",
	CategoryID:  "categoryid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Content, t.Excerpt, t.Published,
		t.PublishedAt, t.AuthorID, t.CategoryID, t.CreatedAt, t.UpdatedAt,
	}
}
