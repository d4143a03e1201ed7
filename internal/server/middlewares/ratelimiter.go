package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiosync/syncserver/internal/server/handlers/api"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

var errRateLimited = errors.New("Rate limit exceeded")

// RateLimiter limits requests per client IP. formattedRate uses the limiter
// notation, e.g. "120-M". An empty rate disables limiting.
func RateLimiter(formattedRate string) (gin.HandlerFunc, error) {
	if formattedRate == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, err
	}

	slog.Info("rate limit enabled", "rate", formattedRate)
	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(
		instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			api.AbortWithError(c, http.StatusTooManyRequests, errRateLimited)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			api.AbortWithError(c, http.StatusInternalServerError, err)
		}),
	), nil
}
