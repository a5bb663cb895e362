package v1

import (
	"inclusive-jobs/internal/delivery/http/handler"
	"inclusive-jobs/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API mounts. A nil handler leaves its
// routes unregistered.
type Handlers struct {
	Auth              *middleware.AuthMiddleware
	AuthHandler       *handler.AuthHandler
	Users             *handler.UserHandler
	Candidates        *handler.CandidateHandler
	Onboarding        *handler.OnboardingHandler
	Jobs              *handler.JobsHandler
	JobRecommendation *handler.JobRecommendationHandler
	Reviews           *handler.ReviewHandler
	Matches           *handler.MatchHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.AuthHandler != nil {
		h.AuthHandler.RegisterRoutes(r.Group("/auth"))
	}

	if h.Auth == nil {
		return
	}
	authed := h.Auth.Middleware()

	registerUsers(r, authed, h)
	registerJobs(r, authed, h)
	registerReviews(r, authed, h)
	registerMatches(r, authed, h)
}
