package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/gomoku/internal/config"
)

const (
	tokenHeader = "x-token"
	authRealm   = "gomoku"
)

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+authRealm+`"`)

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// Auth accepts a request carrying the server token in the x-token header or
// the configured basic auth credentials. The returned handler is shared by all
// protected routes.
func Auth(cfg *config.ServerConfig) fiber.Handler {
	token := []byte(cfg.Token)

	basicAuth := basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.BasicAuthUsername: cfg.BasicAuthPassword,
		},
		Realm:        authRealm,
		Unauthorized: unauthorized,
	})

	return func(c *fiber.Ctx) error {
		if got := c.Get(tokenHeader); got != "" && len(token) > 0 {
			if subtle.ConstantTimeCompare([]byte(got), token) == 1 {
				return c.Next()
			}
		}

		return basicAuth(c)
	}
}
