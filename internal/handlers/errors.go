package handlers

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
)

// respondError writes err to the client. Store and infrastructure failures
// are logged and sent to Sentry; business errors are not.
func respondError(c *gin.Context, err error, fallbackCode string) {
	if httperr.Status(err) >= 500 {
		requestID := c.GetString(middleware.ContextRequestID)

		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", requestID,
			"error_code", fallbackCode,
			"err", err,
		)

		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		hub.Scope().SetTag("error_code", fallbackCode)
		hub.Scope().SetTag("request_id", requestID)
		hub.CaptureException(err)
	}

	httperr.FromError(c, err, fallbackCode)
}
