package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akulikov/careerhub/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, authMW fiber.Handler, health *handlers.HealthHandler, prof *handlers.ProfileHandler, insights *handlers.InsightsHandler, atsH *handlers.ATSHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	pg := v1.Group("/profile", authMW)
	pg.Post("/", prof.Provision)
	pg.Get("/", prof.Get)
	pg.Put("/", prof.Update)
	pg.Get("/onboarding", prof.Onboarding)

	v1.Get("/insights", authMW, insights.Get)

	// Resume scoring against a job description
	ag := v1.Group("/ats", authMW)
	ag.Post("/score", atsH.Score)
}
