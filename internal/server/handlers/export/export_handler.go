package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiosync/syncserver/internal/server/export"
	"github.com/studiosync/syncserver/internal/server/handlers/api"
	"github.com/studiosync/syncserver/internal/server/middlewares"
)

var ErrExportFailed = errors.New("Export failed")

// FileWalker lists the files handed out by an export
type FileWalker interface {
	Walk(ctx context.Context) ([]export.ExportedFile, error)
}

type ExportHandler struct {
	walker FileWalker
}

func New(walker FileWalker) *ExportHandler {
	return &ExportHandler{walker: walker}
}

// Export returns every eligible source file of the project
func (h *ExportHandler) Export(ctx *gin.Context) {
	files, err := h.walker.Walk(ctx.Request.Context())
	if err != nil {
		slog.Error("export failed", "project", middlewares.ProjectID(ctx), "error", err)
		api.AbortWithMessage(ctx, http.StatusInternalServerError, ErrExportFailed.Error(), err)
		return
	}

	if files == nil {
		files = make([]export.ExportedFile, 0)
	}

	slog.Info("export complete", "project", middlewares.ProjectID(ctx), "files", len(files))

	ctx.PureJSON(http.StatusOK, ExportResponse{Files: files})
}
