package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/api/http/handlers"
	"github.com/spec-kit/pet-adoption/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Responsibles *handlers.ResponsibleHandler
	Pets         *handlers.PetsHandler
	Guard        *auth.Guard
}

// RegisterRoutes wires HTTP routes. Every route runs the guard; anonymous
// callers are rejected only where RequireIdentity is mounted.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	health := app.Group("/health")
	health.Get("/live", cfg.Health.Live)
	health.Get("/ready", cfg.Health.Ready)
	health.Get("/metrics", cfg.Health.Metrics)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get("/session", cfg.Guard.Strict, cfg.Auth.Session)

	requireIdentity := auth.RequireIdentity()

	app.Post("/responsible", cfg.Responsibles.Register)
	app.Get("/responsible/:id", cfg.Guard.Authenticate, cfg.Responsibles.Get)
	app.Put("/responsible", cfg.Guard.Authenticate, requireIdentity, cfg.Responsibles.UpdateProfile)
	app.Delete("/responsible", cfg.Guard.Authenticate, requireIdentity, cfg.Responsibles.DeleteAccount)

	pets := app.Group("/pet", cfg.Guard.Authenticate)
	pets.Get("", cfg.Pets.List)
	pets.Get("/:id", cfg.Pets.Get)
	pets.Post("", requireIdentity, cfg.Pets.Create)
	pets.Put("/:id", requireIdentity, cfg.Pets.Update)
	pets.Delete("/:id", requireIdentity, cfg.Pets.Delete)
}
