package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/Koundinya12/UserService/internal/application"
	"github.com/Koundinya12/UserService/pkg/response"
	"github.com/Koundinya12/UserService/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// registerRequest deliberately carries no validation tags: any
// deserializable body reaches the service, which owns the registration
// rules. Only JSON decode failures yield 400.
type registerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUserDetails handles GET /users/:id.
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Svc.GetUserDetails(c.Request.Context(), id)
	if err != nil {
		h.logFailure(c, id, err)
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Register handles POST /users/register. Malformed bodies are rejected
// before the service layer is reached.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validation.Describe(err))
		return
	}

	p, err := h.Svc.RegisterUser(c.Request.Context(), userapp.RegisterInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.logFailure(c, req.ID, err)
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *UserHandler) logFailure(c *gin.Context, id string, err error) {
	if h.Logger == nil {
		return
	}
	h.Logger.WithError(err).WithFields(logrus.Fields{
		"user_id":    id,
		"request_id": c.GetString("request_id"),
	}).Warn("user request failed")
}
