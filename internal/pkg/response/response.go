// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API error format. Successful lead and
// inventory responses use their own documented shapes ({"ok": true} and raw
// records), so only failures go through this envelope.
type Response struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Error   string                `json:"error,omitempty"`
	Fields  []validate.FieldError `json:"fields,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	response := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(code, response)
}

// ValidationFailed sends a 400 Bad Request carrying field-level detail.
func ValidationFailed(c *gin.Context, verr *validate.Error) {
	c.Abort()
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "validation failed",
		Fields:  verr.Fields,
	})
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// FromError maps a service-layer failure onto the HTTP error taxonomy:
// validation -> 400 with fields, missing target -> 404, anything else -> 500.
func FromError(c *gin.Context, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		ValidationFailed(c, verr)
	case errors.Is(err, xerrors.ErrNotFound):
		NotFound(c, "resource not found")
	default:
		Error(c, http.StatusInternalServerError, "storage failure", err)
	}
}
