package services

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/gomoku/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services. Either may be nil
// when it is not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := &Services{}

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	}

	if cfg.RedisURL != "" {
		if err := services.connectRedis(cfg.RedisURL); err != nil {
			return nil, err
		}
	}

	return services, nil
}

// connectRedis connects to Redis, closing the connections made so far on failure.
func (s *Services) connectRedis(url string) error {
	redis, err := InitRedis(url)
	if err != nil {
		if closeErr := s.Close(); closeErr != nil {
			slog.Warn("Failed to close services", "error", closeErr)
		}
		return err
	}

	s.Redis = redis
	return nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			return fmt.Errorf("error closing Postgres: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("error closing Redis: %w", err)
		}
	}

	return nil
}
