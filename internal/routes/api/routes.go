package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes sets up the API routes behind auth.
func SetupRoutes(app *fiber.App, auth fiber.Handler) {
	apiGroup := app.Group("/api", auth)

	apiGroup.Post("/moves", ChooseMove)
	apiGroup.Get("/stats", GetSearchStats)
}
