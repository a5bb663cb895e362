package routes

import (
	"inclusive-jobs/internal/delivery/http/handler"
	v1 "inclusive-jobs/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     fiber.Handler
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, ws fiber.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, ws: ws, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws", r.ws)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
