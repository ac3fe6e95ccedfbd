package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Status maps a business error to its HTTP status. Anything else is a store
// or infrastructure failure and maps to 500.
func Status(err error) int {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		// Conflicts are reported as 400 like any other rejected request.
		return http.StatusBadRequest
	}
}

var messages = map[string]string{
	"missing_required_fields": "All required fields must be filled",
	"invalid_date_or_time":    "Invalid date or time",
	"slot_already_booked":     "This time slot is already booked",
	"missing_date":            "Date is required",
	"invalid_date":            "Invalid date",
	"invalid_credentials":     "Invalid credentials",
	"invalid_token":           "Invalid token",
	"token_expired":           "Token expired",
	"admin_required":          "Admin access required",
	"invalid_status":          "Invalid appointment status",
	"appointment_not_found":   "Appointment not found",
	"missing_key":             "Setting key is required",
}

// Message returns the human readable text for a business error code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// FromError writes err as a JSON error. Non-business errors are written as
// fallbackCode with a generic message so store details never leak.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, Status(err), be.Code, Message(be.Code))
		return
	}
	Internal(c, fallbackCode, "Something went wrong!")
}

// AbortFromError is FromError for middleware: it also stops the chain.
func AbortFromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Abort(c, Status(err), be.Code, Message(be.Code))
		return
	}
	Abort(c, http.StatusInternalServerError, "internal_error", "Something went wrong!")
}
