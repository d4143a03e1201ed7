package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studiosync/syncserver/internal/server/auth"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Content-Type", auth.HeaderProject, auth.HeaderTimestamp, auth.HeaderSignature}
)

// the editing tool runs in a browser on another origin
var corsConfig = cors.Config{
	AllowAllOrigins:  true,
	AllowMethods:     corsMethods,
	AllowHeaders:     corsHeaders,
	AllowCredentials: false,
	MaxAge:           12 * time.Hour,
}

// CORS makes every response, including errors and 404s, readable cross-origin
// and answers any OPTIONS request with 204.
func CORS() gin.HandlerFunc {
	corsHandler := cors.New(corsConfig)
	allowMethods := strings.Join(corsMethods, ", ")
	allowHeaders := strings.Join(corsHeaders, ", ")

	return func(c *gin.Context) {
		// gin-contrib/cors only acts when an Origin header is present
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)

		corsHandler(c)
		if c.IsAborted() {
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
