package version

import (
	"os/exec"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/gomoku/internal/models"
)

const unknownCommit = "unknown"

var loadVersion = sync.OnceValue(func() models.VersionResponse {
	if info, ok := debug.ReadBuildInfo(); ok {
		if commit := commitFromSettings(info.Settings); commit != "" {
			return models.VersionResponse{Commit: commit}
		}
	}

	return models.VersionResponse{Commit: commitFromGit()}
})

// commitFromSettings returns the VCS revision stamped by go build, with a
// suffix when the working tree was modified.
func commitFromSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool

	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision != "" && modified {
		return revision + "-dirty"
	}
	return revision
}

// commitFromGit covers binaries built without VCS stamping, such as go run.
func commitFromGit() string {
	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return unknownCommit
	}

	if commit := strings.TrimSpace(string(output)); commit != "" {
		return commit
	}
	return unknownCommit
}

func SetupRoutes(app *fiber.App) {
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(loadVersion())
	})
}
