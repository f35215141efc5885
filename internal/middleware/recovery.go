package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// Recovery returns a gin middleware that recovers from panics, logs the
// error with stack trace using slog, and returns the standard error
// envelope:
//
//	{"status":"error","error":{"code":"INTERNAL_SERVER_ERROR",...},"meta":{...}}
//
// This middleware replaces gin.Recovery() so panics are logged through the
// application's structured logger.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(stack)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status": "error",
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "internal server error",
					},
					"meta": gin.H{
						"timestamp": time.Now().UTC().Format(time.RFC3339),
					},
				})
			}
		}()
		c.Next()
	}
}
