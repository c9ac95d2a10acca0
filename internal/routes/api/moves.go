package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal/analysis"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/middleware"
	"github.com/lk16/gomoku/internal/models"
	"github.com/lk16/gomoku/internal/repository"
)

// ChooseMove searches the submitted board for a move.
func ChooseMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	query, err := payload.Parse(cfg.Engine)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewSearchRepository(c)
	response := analysis.Analyze(c.Context(), repo, query)
	c.Locals(middleware.NodesLocal, response.Nodes)

	return c.Status(fiber.StatusOK).JSON(response)
}
