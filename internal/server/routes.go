package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiosync/syncserver/internal/server/handlers/api"
	"github.com/studiosync/syncserver/internal/server/handlers/export"
	"github.com/studiosync/syncserver/internal/server/handlers/sync"
	"github.com/studiosync/syncserver/internal/server/middlewares"
)

var errNotFound = errors.New("Not found")

func SetupRoutes(config *Config, svc *Services) (http.Handler, error) {
	rateLimiter, err := middlewares.RateLimiter(config.HTTP.RateLimit)
	if err != nil {
		return nil, err
	}

	syncH := sync.New(svc.Workspace, config.HTTP.MaxBodySize)
	exportH := export.New(svc.Walker)

	r := gin.New()
	r.HandleMethodNotAllowed = false
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.SecureHeaders(config.HTTP.TLSEnabled()))
	r.Use(middlewares.GZIP())

	r.GET("/api/health", HealthHandler)

	syncGroup := r.Group("/api/sync")
	syncGroup.Use(rateLimiter, middlewares.SyncAuth(svc.Verifier))
	{
		syncGroup.POST("", syncH.Sync)
		syncGroup.GET("/export", exportH.Export)
	}

	r.NoRoute(NotFoundHandler)

	return r.Handler(), nil
}

func HealthHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func NotFoundHandler(ctx *gin.Context) {
	api.AbortWithError(ctx, http.StatusNotFound, errNotFound)
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
