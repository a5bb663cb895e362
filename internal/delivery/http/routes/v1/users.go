package v1

import (
	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

func registerUsers(r fiber.Router, authed fiber.Handler, h Handlers) {
	pwd := middleware.RequireRole(user.RolePWD)

	if h.Users != nil {
		h.Users.RegisterRoutes(r.Group("/users", authed))
	}
	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(r.Group("/candidates", authed, pwd))
	}
	if h.Onboarding != nil {
		h.Onboarding.RegisterRoutes(r.Group("/onboarding", authed, pwd))
	}
}
