package schema

// ContentTagTable represents the 'content.tag' table
type ContentTagTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// ContentTag is the schema definition for content.tag
var ContentTag = ContentTagTable{
	Table:     "content.tag",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t ContentTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt}
}
