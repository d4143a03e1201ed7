package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := RateLimiter("")
	require.NoError(t, err)

	r := gin.New()
	r.Use(limiter)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for range 5 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_Exceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := RateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(limiter)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_InvalidRate(t *testing.T) {
	_, err := RateLimiter("lots")
	assert.Error(t, err)
}
