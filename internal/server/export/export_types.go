package export

// ExportedFile is a single source file handed to the editing tool
type ExportedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
