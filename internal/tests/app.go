package tests

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/services"
	"github.com/stretchr/testify/require"
)

const (
	Token             = "test-token"
	BasicAuthUsername = "user"
	BasicAuthPassword = "pass"
)

// NewApp creates an app without Redis or Postgres.
func NewApp() *fiber.App {
	cfg := &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: BasicAuthUsername,
		BasicAuthPassword: BasicAuthPassword,
		Token:             Token,
		Engine:            config.DefaultEngineConfig(),
	}

	return internal.NewApp(cfg, &services.Services{})
}

// Do sends req to app and returns the status code and body.
func Do(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}
