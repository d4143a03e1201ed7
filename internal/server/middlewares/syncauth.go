package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiosync/syncserver/internal/server/auth"
	"github.com/studiosync/syncserver/internal/server/handlers/api"
)

// ContextProjectID holds the authenticated project id on the gin context
const ContextProjectID = "syncProjectID"

type SignatureVerifier interface {
	Verify(projectID string, timestamp int64, signature string) bool
}

// SyncAuth authenticates requests signed with the X-Sync-* headers.
// It rejects before any handler runs, so a failed request never touches the filesystem.
func SyncAuth(verifier SignatureVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.GetHeader(auth.HeaderProject)
		rawTimestamp := c.GetHeader(auth.HeaderTimestamp)
		signature := c.GetHeader(auth.HeaderSignature)

		if projectID == "" || rawTimestamp == "" || signature == "" {
			api.AbortWithError(c, http.StatusUnauthorized, auth.ErrMissingHeaders)
			return
		}

		timestamp, err := auth.ParseTimestamp(rawTimestamp)
		if err != nil {
			slog.Debug("sync auth bad timestamp", "project", projectID, "ip", c.ClientIP(), "error", err)
			api.AbortWithMessage(c, http.StatusForbidden, auth.ErrInvalidSignature.Error(), err)
			return
		}

		if !verifier.Verify(projectID, timestamp, signature) {
			slog.Warn("sync auth rejected", "project", projectID, "ip", c.ClientIP(), "timestamp", timestamp)
			api.AbortWithError(c, http.StatusForbidden, auth.ErrInvalidSignature)
			return
		}

		c.Set(ContextProjectID, projectID)
		c.Next()
	}
}

// ProjectID returns the project authenticated by SyncAuth
func ProjectID(c *gin.Context) string {
	return c.GetString(ContextProjectID)
}
