// Package response writes the JSON envelopes shared by every handler.
// Errors always serialize as {"error": message}.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/pkg/apperr"
)

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// InternalError sends a 500 error envelope.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// BadGateway sends a 502 error envelope.
func BadGateway(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": message})
}

// Error maps the error taxonomy to its HTTP status: ValidationError → 400,
// SchemaError → 502, everything else (UpstreamError included) → 500.
func Error(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Message)
		return
	}
	var se *apperr.SchemaError
	if errors.As(err, &se) {
		BadGateway(c, se.Message)
		return
	}
	InternalError(c, err)
}
