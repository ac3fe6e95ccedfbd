package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

// Recovery turns a panic into a 500 and reports it to Sentry. Without a
// configured DSN the report is a no-op.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered",
					"request_id", c.GetString(ContextRequestID),
					"panic", r,
					"stack", string(debug.Stack()),
				)

				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(c.Request)
				hub.Scope().SetTag("request_id", c.GetString(ContextRequestID))
				hub.Recover(r)

				httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Something went wrong!")
			}
		}()
		c.Next()
	}
}
