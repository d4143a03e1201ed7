package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecureHeaders sets the standard hardening headers.
// HSTS and the https redirect are only enabled when the server terminates TLS itself.
func SecureHeaders(tls bool) gin.HandlerFunc {
	config := secure.Config{
		SSLRedirect:        tls,
		IsDevelopment:      false,
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IENoOpen:           true,
	}
	if tls {
		config.STSSeconds = 31536000
		config.STSIncludeSubdomains = true
	}
	return secure.New(config)
}
