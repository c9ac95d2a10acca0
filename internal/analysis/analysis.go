package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/lk16/gomoku/internal/models"
	"github.com/lk16/gomoku/internal/repository"
)

const recordTimeout = 2 * time.Second

// Recorder stores finished searches.
type Recorder interface {
	RecordSearch(ctx context.Context, record models.SearchRecord) error
}

// Analyze runs the search described by query and records it. Failing to
// record is logged and does not fail the analysis.
func Analyze(ctx context.Context, recorder Recorder, query *models.MoveQuery) models.MoveResponse {
	result := gomoku.Search(query.Board, query.Strategy, query.Depth, query.Player == gomoku.Black)
	record := repository.NewSearchRecord(query, result)

	response := models.MoveResponse{
		ID:       record.ID,
		Found:    result.Found,
		Score:    result.Score,
		Nodes:    result.Nodes,
		Strategy: query.Strategy.String(),
		Depth:    query.Depth,
	}

	if result.Found {
		move := result.Move
		response.Move = &move
	}

	if !query.Strategy.Valid() {
		return response
	}

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := recorder.RecordSearch(ctx, record); err != nil {
		slog.Warn("Failed to record search", "id", record.ID, "error", err)
	}

	return response
}
