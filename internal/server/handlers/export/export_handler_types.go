package export

import "github.com/studiosync/syncserver/internal/server/export"

type ExportResponse struct {
	Files []export.ExportedFile `json:"files"`
}
