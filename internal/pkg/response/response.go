// Package response writes the JSON envelopes the legacy API produced.
// Error bodies are {success:false, message}; the Indonesian operator-facing
// messages are kept verbatim so existing frontend string matching survives.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrServerMessage is the generic 500 body message.
const ErrServerMessage = "Terjadi kesalahan pada server"

// OK sends a 200 response with the given body as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NotFound sends a 404 {success:false, message} body.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

// BadRequest sends a 400 {success:false, message} body.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// UnprocessableEntity sends a 422 {success:false, message} body for
// validation failures.
func UnprocessableEntity(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": message})
}

// InternalError sends the generic 500 body. Callers log the underlying
// error themselves; the detail never reaches the client.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": ErrServerMessage})
}
