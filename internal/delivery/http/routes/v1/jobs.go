package v1

import (
	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// registerJobs mounts the job board. Static segments are registered before
// /jobs/:id so they are not captured by the parameter.
func registerJobs(r fiber.Router, authed fiber.Handler, h Handlers) {
	pwd := middleware.RequireRole(user.RolePWD)
	employer := middleware.RequireRole(user.RoleEmployer)

	if h.JobRecommendation != nil {
		r.Get("/jobs/recommended", authed, pwd, h.JobRecommendation.HandleRecommended)
		r.Get("/jobs/:id/candidates", authed, employer, h.JobRecommendation.HandleRankCandidates)
	}

	if h.Jobs != nil {
		r.Get("/jobs", h.Jobs.HandleListJobs)
		r.Post("/jobs", authed, employer, h.Jobs.HandleCreateJob)
		r.Get("/jobs/:id", h.Jobs.HandleGetJob)
		r.Post("/jobs/:id/apply", authed, pwd, h.Jobs.HandleApply)
	}
}

func registerReviews(r fiber.Router, authed fiber.Handler, h Handlers) {
	if h.Reviews == nil {
		return
	}
	r.Get("/employers/:id/reviews", h.Reviews.HandleList)
	r.Post("/employers/:id/reviews", authed, middleware.RequireRole(user.RolePWD), h.Reviews.HandleCreate)
}
