package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Koundinya12/UserService/internal/container"
	handlers "github.com/Koundinya12/UserService/internal/interface/http"
	"github.com/Koundinya12/UserService/internal/interface/middleware"
	"github.com/Koundinya12/UserService/pkg/helpers"
)

// UserModule wires the user HTTP handlers into routes:
// GET /users/:id and POST /users/register. Bearer-token auth is attached
// when AUTH_ENABLED is set.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenParser
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenParser) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users")
	if container.GetConfig().AuthEnabled {
		users.Use(middleware.Auth(m.Tokens))
	}
	users.GET("/:id", readLimiter, m.Handler.GetUserDetails)
	users.POST("/register", registerLimiter, m.Handler.Register)
}
