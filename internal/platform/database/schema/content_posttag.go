package schema

// ContentPostTagTable represents the 'content.posttag' junction table
type ContentPostTagTable struct {
	Table  string
	PostID string
	TagID  string
}

// ContentPostTag is the schema definition for content.posttag
var ContentPostTag = ContentPostTagTable{
	Table:  "content.posttag",
	PostID: "postid",
	TagID:  "tagid",
}

func (t ContentPostTagTable) Columns() []string {
	return []string{t.PostID, t.TagID}
}
