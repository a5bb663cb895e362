package v1

import (
	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// registerMatches mounts the snapshot endpoints. /matches/stats precedes
// /matches/:matchId.
func registerMatches(r fiber.Router, authed fiber.Handler, h Handlers) {
	if h.Matches == nil {
		return
	}
	pwd := middleware.RequireRole(user.RolePWD)

	g := r.Group("/matches", authed, pwd)
	g.Post("/generate", h.Matches.HandleGenerate)
	g.Get("/mine", h.Matches.HandleMine)
	g.Get("/stats", h.Matches.HandleStats)
	g.Get("/:matchId", h.Matches.HandleGet)

	// Flat paths used by earlier clients.
	r.Post("/generate-matches", authed, pwd, h.Matches.HandleGenerate)
	r.Get("/my-matches", authed, pwd, h.Matches.HandleMine)
	r.Get("/stats", authed, pwd, h.Matches.HandleStats)
}
