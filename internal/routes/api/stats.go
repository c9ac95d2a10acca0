package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal/repository"
)

// GetSearchStats returns search counters per strategy.
func GetSearchStats(c *fiber.Ctx) error {
	repo := repository.NewSearchRepository(c)
	stats, err := repo.GetSearchStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
