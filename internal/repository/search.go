package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/lk16/gomoku/internal/models"
	"github.com/lk16/gomoku/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	searchStatsKey        = "search_stats"
	searchStatsVersionKey = "search_stats:version"
	searchesField         = "searches"
	nodesField            = "nodes"
	createSearchesTable   = `
		CREATE TABLE IF NOT EXISTS searches (
			id         UUID PRIMARY KEY,
			board      TEXT NOT NULL,
			player     SMALLINT NOT NULL,
			strategy   TEXT NOT NULL,
			depth      INT NOT NULL,
			found      BOOLEAN NOT NULL,
			move_row   INT,
			move_col   INT,
			score      INT NOT NULL,
			nodes      BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
)

// SearchRepository records searches and their statistics. Without Postgres
// nothing is logged, without Redis the counters are computed by Postgres.
type SearchRepository struct {
	services *services.Services
}

// NewSearchRepository creates a new SearchRepository.
func NewSearchRepository(c *fiber.Ctx) *SearchRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &SearchRepository{
		services: services,
	}
}

func NewSearchRepositoryFromServices(services *services.Services) *SearchRepository {
	return &SearchRepository{
		services: services,
	}
}

// Migrate creates the searches table if needed.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createSearchesTable); err != nil {
		return fmt.Errorf("error creating searches table: %w", err)
	}
	return nil
}

// NewSearchRecord builds the record of a finished search with a fresh ID.
func NewSearchRecord(query *models.MoveQuery, result gomoku.Result) models.SearchRecord {
	record := models.SearchRecord{
		ID:       uuid.New().String(),
		Board:    query.Board.String(),
		Player:   int(query.Player),
		Strategy: query.Strategy.String(),
		Depth:    query.Depth,
		Found:    result.Found,
		Score:    result.Score,
		Nodes:    int64(result.Nodes), //nolint:gosec
	}

	if result.Found {
		row, col := result.Move.Row, result.Move.Col
		record.MoveRow = &row
		record.MoveCol = &col
	}

	return record
}

// RecordSearch stores a search and updates the counters of its strategy.
//
// With Postgres configured the searches table is the source of truth and the
// Redis hash is only a cache: it is dropped here and rebuilt on the next read.
// With Redis alone the hash holds the only counters and is incremented.
func (repo *SearchRepository) RecordSearch(ctx context.Context, record models.SearchRecord) error {
	if repo.services == nil {
		return nil
	}

	pgConn := repo.services.Postgres
	redisConn := repo.services.Redis

	if pgConn != nil {
		query := `
			INSERT INTO searches (id, board, player, strategy, depth, found, move_row, move_col, score, nodes)
			VALUES (:id, :board, :player, :strategy, :depth, :found, :move_row, :move_col, :score, :nodes)
		`

		if _, err := pgConn.NamedExecContext(ctx, query, record); err != nil {
			return fmt.Errorf("error inserting search: %w", err)
		}
	}

	if redisConn == nil {
		return nil
	}

	if pgConn != nil {
		return repo.invalidateSearchStats(ctx)
	}

	pipe := redisConn.Pipeline()
	pipe.HIncrBy(ctx, searchStatsKey, statsField(record.Strategy, searchesField), 1)
	pipe.HIncrBy(ctx, searchStatsKey, statsField(record.Strategy, nodesField), record.Nodes)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error updating search stats: %w", err)
	}

	return nil
}

// invalidateSearchStats drops the cached counters. Bumping the version key
// aborts any rebuild that loaded its totals before this search was inserted.
func (repo *SearchRepository) invalidateSearchStats(ctx context.Context) error {
	_, err := repo.services.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, searchStatsVersionKey)
		pipe.Del(ctx, searchStatsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error invalidating search stats: %w", err)
	}

	return nil
}

// GetSearchStats returns the counters per strategy, sorted by strategy name.
func (repo *SearchRepository) GetSearchStats(ctx context.Context) ([]models.StrategyStats, error) {
	if repo.services == nil {
		return []models.StrategyStats{}, nil
	}

	redisConn := repo.services.Redis
	if redisConn == nil {
		return repo.loadSearchStats(ctx)
	}

	stats, err := redisConn.HGetAll(ctx, searchStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting search stats from Redis: %w", err)
	}

	if len(stats) == 0 && repo.services.Postgres != nil {
		return repo.rebuildSearchStats(ctx, repo.loadSearchStats)
	}

	return parseSearchStats(stats)
}

func (repo *SearchRepository) loadSearchStats(ctx context.Context) ([]models.StrategyStats, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return []models.StrategyStats{}, nil
	}

	query := `
		SELECT strategy, count(*) AS searches, coalesce(sum(nodes), 0) AS nodes
		FROM searches
		GROUP BY strategy
		ORDER BY strategy
	`

	stats := make([]models.StrategyStats, 0)
	if err := pgConn.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("error loading search stats: %w", err)
	}

	return stats, nil
}

// rebuildSearchStats loads the totals and caches them in Redis, unless a
// search was recorded meanwhile. The loaded totals are returned either way.
func (repo *SearchRepository) rebuildSearchStats(
	ctx context.Context,
	load func(ctx context.Context) ([]models.StrategyStats, error),
) ([]models.StrategyStats, error) {
	var stats []models.StrategyStats

	err := repo.services.Redis.Watch(ctx, func(tx *redis.Tx) error {
		var err error
		if stats, err = load(ctx); err != nil {
			return err
		}

		if len(stats) == 0 {
			return nil
		}

		statsMap := make(map[string]interface{}, 2*len(stats)) //nolint:mnd
		for _, stat := range stats {
			statsMap[statsField(stat.Strategy, searchesField)] = stat.Searches
			statsMap[statsField(stat.Strategy, nodesField)] = stat.Nodes
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, searchStatsKey, statsMap)
			return nil
		})
		return err
	}, searchStatsVersionKey)

	if errors.Is(err, redis.TxFailedErr) {
		slog.Debug("Search recorded during stats rebuild, not caching")
		return stats, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error building search stats: %w", err)
	}

	return stats, nil
}

func statsField(strategy, counter string) string {
	return strategy + ":" + counter
}

// parseSearchStats converts "strategy:counter" hash fields into StrategyStats.
func parseSearchStats(fields map[string]string) ([]models.StrategyStats, error) {
	byStrategy := make(map[string]*models.StrategyStats)

	for key, value := range fields {
		strategy, counter, ok := strings.Cut(key, ":")
		if !ok {
			return nil, fmt.Errorf("error parsing search stats key %q", key)
		}

		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing search stats value: %w", err)
		}

		stat, found := byStrategy[strategy]
		if !found {
			stat = &models.StrategyStats{Strategy: strategy}
			byStrategy[strategy] = stat
		}

		switch counter {
		case searchesField:
			stat.Searches = count
		case nodesField:
			stat.Nodes = count
		default:
			return nil, fmt.Errorf("unknown search stats counter %q", counter)
		}
	}

	stats := make([]models.StrategyStats, 0, len(byStrategy))
	for _, stat := range byStrategy {
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Strategy < stats[j].Strategy
	})

	return stats, nil
}
