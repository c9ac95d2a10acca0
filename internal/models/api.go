package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/gomoku"
)

var (
	ErrMissingBoard = errors.New("board is missing")
	ErrInvalidDepth = errors.New("depth is out of range")
)

// MoveRequest asks for a move on a board snapshot.
type MoveRequest struct {
	Board    string `json:"board"`
	Player   string `json:"player"`
	Strategy string `json:"strategy"`
	Depth    int    `json:"depth"`
}

// MoveQuery is a validated MoveRequest.
type MoveQuery struct {
	Board    *gomoku.Board
	Player   gomoku.Cell
	Strategy gomoku.Strategy
	Depth    int
}

// Parse validates the request. Missing strategy and depth fall back to the
// engine defaults. An unknown strategy is not an error: it is kept as an
// invalid Strategy so the search reports no move.
func (r *MoveRequest) Parse(cfg config.EngineConfig) (*MoveQuery, error) {
	if r.Board == "" {
		return nil, ErrMissingBoard
	}

	board, err := gomoku.NewBoardFromString(r.Board)
	if err != nil {
		return nil, err
	}

	player, err := gomoku.ParsePlayer(r.Player)
	if err != nil {
		return nil, err
	}

	depth := r.Depth
	if depth == 0 {
		depth = cfg.DefaultDepth
	}

	if depth < 1 || depth > cfg.MaxDepth {
		return nil, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidDepth, cfg.MaxDepth)
	}

	strategy := cfg.DefaultStrategy
	if r.Strategy != "" {
		// Unknown names stay invalid on purpose.
		strategy, _ = gomoku.ParseStrategy(r.Strategy)
	}

	return &MoveQuery{
		Board:    board,
		Player:   player,
		Strategy: strategy,
		Depth:    depth,
	}, nil
}

// MoveResponse is the answer to a MoveRequest.
type MoveResponse struct {
	ID       string       `json:"id"`
	Found    bool         `json:"found"`
	Move     *gomoku.Move `json:"move,omitempty"`
	Score    int          `json:"score"`
	Nodes    uint64       `json:"nodes"`
	Strategy string       `json:"strategy"`
	Depth    int          `json:"depth"`
}

// SearchRecord is a row of the searches table.
type SearchRecord struct {
	ID        string    `db:"id"`
	Board     string    `db:"board"`
	Player    int       `db:"player"`
	Strategy  string    `db:"strategy"`
	Depth     int       `db:"depth"`
	Found     bool      `db:"found"`
	MoveRow   *int      `db:"move_row"`
	MoveCol   *int      `db:"move_col"`
	Score     int       `db:"score"`
	Nodes     int64     `db:"nodes"`
	CreatedAt time.Time `db:"created_at"`
}

// StrategyStats holds search counters for one strategy.
type StrategyStats struct {
	Strategy string `json:"strategy" db:"strategy"`
	Searches int64  `json:"searches" db:"searches"`
	Nodes    int64  `json:"nodes"    db:"nodes"`
}

// VersionResponse contains the git commit the server was built from.
type VersionResponse struct {
	Commit string `json:"commit"`
}
