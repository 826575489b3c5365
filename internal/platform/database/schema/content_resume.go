package schema

// ContentResumeTable represents the 'content.resume' table
type ContentResumeTable struct {
	Table     string
	ID        string
	Data      string
	CreatedAt string
}

// ContentResume is the schema definition for content.resume
var ContentResume = ContentResumeTable{
	Table:     "content.resume",
	ID:        "id",
	Data:      "data",
	CreatedAt: "createdat",
}

func (t ContentResumeTable) Columns() []string {
	return []string{t.ID, t.Data, t.CreatedAt}
}
