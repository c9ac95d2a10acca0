package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lk16/gomoku/internal/gomoku"
)

const (
	DefaultSearchDepth = 2

	// DefaultMaxSearchDepth bounds request depth. Search cost grows roughly like
	// candidates^depth and a mid-game board has well over 100 candidates, so
	// depth 3 already takes minutes and cannot be cancelled once started.
	DefaultMaxSearchDepth = 2

	DefaultStrategy = "minimax"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	Engine            EngineConfig
}

// EngineConfig holds the search defaults and limits.
type EngineConfig struct {
	// DefaultDepth is used when a request does not specify a depth.
	DefaultDepth int

	// MaxDepth bounds the depth a caller may request. Search recursion is as deep as the requested depth.
	MaxDepth int

	// DefaultStrategy is used when a request does not specify a strategy.
	DefaultStrategy gomoku.Strategy
}

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// LoadServerConfig loads configuration from environment variables.
// Redis and Postgres are optional, without them searches are not recorded.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("GOMOKU_SERVER_HOST"),
		ServerPort:        getEnvMust("GOMOKU_SERVER_PORT"),
		RedisURL:          os.Getenv("GOMOKU_REDIS_URL"),
		PostgresURL:       os.Getenv("GOMOKU_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("GOMOKU_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("GOMOKU_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("GOMOKU_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("GOMOKU_SERVER_PREFORK"),
		Engine:            LoadEngineConfig(),
	}
}

// ClientConfig contains details on how to connect to a move server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("GOMOKU_SERVER_URL"),
		Token:     getEnvMust("GOMOKU_SERVER_TOKEN"),
	}
}

// LoadEngineConfig loads search settings, falling back to defaults for unset variables.
func LoadEngineConfig() EngineConfig {
	cfg := EngineConfig{
		DefaultDepth: getEnvInt("GOMOKU_DEFAULT_DEPTH", DefaultSearchDepth),
		MaxDepth:     getEnvInt("GOMOKU_MAX_DEPTH", DefaultMaxSearchDepth),
	}

	strategyName := getEnvDefault("GOMOKU_DEFAULT_STRATEGY", DefaultStrategy)
	strategy, err := gomoku.ParseStrategy(strategyName)
	if err != nil {
		slog.Error("Invalid default strategy", "strategy", strategyName, "error", err)
		os.Exit(1)
	}
	cfg.DefaultStrategy = strategy

	if cfg.MaxDepth < 1 || cfg.DefaultDepth < 1 || cfg.DefaultDepth > cfg.MaxDepth {
		slog.Error("Invalid search depth settings", "default_depth", cfg.DefaultDepth, "max_depth", cfg.MaxDepth)
		os.Exit(1)
	}

	return cfg
}

// DefaultEngineConfig returns the engine settings used when nothing is configured.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultDepth:    DefaultSearchDepth,
		MaxDepth:        DefaultMaxSearchDepth,
		DefaultStrategy: gomoku.Minimax,
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
