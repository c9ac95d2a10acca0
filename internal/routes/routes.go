package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/middleware"
	"github.com/lk16/gomoku/internal/routes/api"
	"github.com/lk16/gomoku/internal/routes/version"
	"github.com/lk16/gomoku/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/version")
}

func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	auth := middleware.Auth(cfg)

	// Serve API routes
	api.SetupRoutes(app, auth)

	// Serve move requests over websocket
	ws.SetupRoutes(app, auth)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
