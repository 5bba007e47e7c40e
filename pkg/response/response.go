package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Plain-text error writers matching the service's wire contract. Success
// bodies are written by the handlers directly as JSON; every failure is
// text/plain with a stable, status-specific prefix.

func NotFound(c *gin.Context, msg string) {
	c.String(http.StatusNotFound, msg)
}

func BadRequest(c *gin.Context, msg string) {
	c.String(http.StatusBadRequest, "Bad Request: "+msg)
}

func Unauthorized(c *gin.Context, msg string) {
	c.String(http.StatusUnauthorized, "Unauthorized: "+msg)
}

func Forbidden(c *gin.Context, msg string) {
	c.String(http.StatusForbidden, "Access Denied: "+msg)
}

func Conflict(c *gin.Context, msg string) {
	c.String(http.StatusConflict, "Conflict: "+msg)
}

func Internal(c *gin.Context, msg string) {
	c.String(http.StatusInternalServerError, "Internal Server Error: "+msg)
}

func TooManyRequests(c *gin.Context, msg string) {
	c.String(http.StatusTooManyRequests, msg)
}
