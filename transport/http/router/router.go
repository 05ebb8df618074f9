package router

import (
	"todoapi/internal/handlers/health"
	"todoapi/internal/handlers/secret"
	"todoapi/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Todo   todo.Handler
	Secret secret.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the API under prefix; health and docs stay at the root.
func (r *Router) SetupRoutes(router chi.Router, prefix string) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route(prefix, func(routerGroup chi.Router) {
		r.DomainHandlers.Todo.Router(routerGroup)
		r.DomainHandlers.Secret.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
