package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	userapp "github.com/Koundinya12/UserService/internal/application"
	"github.com/Koundinya12/UserService/pkg/response"
)

// WriteError translates a service failure into its HTTP status and
// plain-text body. Store, cache, and any other unclassified failures
// deliberately fall through to 500 with the failure message.
func WriteError(c *gin.Context, err error) {
	var exists *userapp.AlreadyExistsError
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.As(err, &exists):
		response.Conflict(c, exists.Error())
	default:
		response.Internal(c, err.Error())
	}
}
