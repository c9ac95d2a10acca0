package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/services"
	"github.com/lk16/gomoku/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)      //nolint: errcheck

	h := ws.NewHandler(c, services, cfg.Engine)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/ws", auth, websocket.New(handleWs))
}
