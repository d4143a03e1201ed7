package sync

// SyncFile is one file pushed by the editing tool
type SyncFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Checksum string `json:"checksum"`
}

type SyncRequest struct {
	Files []SyncFile `json:"files"`
}

// SyncResult summarizes a batch. Updated + Skipped + len(Errors) always equals
// the number of files in the request.
type SyncResult struct {
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
