package schema

// ContentFileTable represents the 'content.file' table
type ContentFileTable struct {
	Table        string
	ID           string
	Filename     string
	OriginalName string
	Key          string
	Folder       string
	URL          string
	Size         string
	MimeType     string
	UploaderID   string
	CreatedAt    string
}

// ContentFile is the schema definition for content.file
var ContentFile = ContentFileTable{
	Table:        "content.file",
	ID:           "id",
	Filename:     "filename",
	OriginalName: "originalname",
	Key:          "objectkey",
	Folder:       "folder",
	URL:          "url",
	Size:         "size",
	MimeType:     "mimetype",
	UploaderID:   "uploaderid",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t ContentFileTable) Columns() []string {
	return []string{
		t.ID, t.Filename, t.OriginalName, t.Key, t.Folder, t.URL,
		t.Size, t.MimeType, t.UploaderID, t.CreatedAt,
	}
}
