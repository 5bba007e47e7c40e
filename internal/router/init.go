package router

import (
	userapp "github.com/Koundinya12/UserService/internal/application"
	"github.com/Koundinya12/UserService/internal/container"
	pginfra "github.com/Koundinya12/UserService/internal/infrastructure/postgres"
	"github.com/Koundinya12/UserService/internal/infrastructure/rediscache"
	handlers "github.com/Koundinya12/UserService/internal/interface/http"
	"github.com/Koundinya12/UserService/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	cache := rediscache.NewProjectionCache(container.GetRedis())

	// A nil *RabbitPublisher must not become a non-nil interface.
	var events userapp.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	service := userapp.NewService(repo, cache, events, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return modules.NewUserModule(handler, container.GetTokenParser())
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
