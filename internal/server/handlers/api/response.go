package api

import "github.com/gin-gonic/gin"

// AbortWithError stops the handler chain, records err on the context for the
// access log and writes it as the response body.
func AbortWithError(ctx *gin.Context, status int, err error) {
	ctx.Abort()
	ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Message: err.Error(),
	})
}

// AbortWithMessage is AbortWithError for a fixed client facing message
// that differs from the internal error.
func AbortWithMessage(ctx *gin.Context, status int, message string, err error) {
	ctx.Abort()
	ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Message: message,
	})
}
