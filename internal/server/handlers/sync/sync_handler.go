package sync

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/studiosync/syncserver/internal/server/handlers/api"
	"github.com/studiosync/syncserver/internal/server/middlewares"
)

var (
	ErrInvalidJSON     = errors.New("Invalid JSON")
	ErrBodyTooLarge    = errors.New("Request body too large")
	ErrBodyReadFailure = errors.New("Failed to read request body")
)

type SyncHandler struct {
	service     *SyncService
	maxBodySize int64
}

// New creates a sync handler. maxBodySize <= 0 disables the body limit.
func New(store FileStore, maxBodySize int64) *SyncHandler {
	return &SyncHandler{
		service:     NewSyncService(store),
		maxBodySize: maxBodySize,
	}
}

// Sync writes a batch of files into the project tree.
// Per file failures are reported in the 200 response, not as an error status.
func (h *SyncHandler) Sync(ctx *gin.Context) {
	body, err := h.readBody(ctx)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			api.AbortWithMessage(ctx, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error(), err)
			return
		}
		api.AbortWithMessage(ctx, http.StatusBadRequest, ErrBodyReadFailure.Error(), err)
		return
	}

	var req SyncRequest
	if err := json.Unmarshal(body, &req); err != nil {
		api.AbortWithMessage(ctx, http.StatusBadRequest, ErrInvalidJSON.Error(), err)
		return
	}

	// null, {} and a null files list decode to an empty batch
	result := h.service.Apply(middlewares.ProjectID(ctx), req.Files)

	ctx.PureJSON(http.StatusOK, result)
}

func (h *SyncHandler) readBody(ctx *gin.Context) ([]byte, error) {
	body := ctx.Request.Body
	if h.maxBodySize > 0 {
		body = http.MaxBytesReader(ctx.Writer, body, h.maxBodySize)
	}
	defer body.Close()

	return io.ReadAll(body)
}
