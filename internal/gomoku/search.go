package gomoku

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
)

// Strategy selects the tree search algorithm.
type Strategy int

const (
	Minimax Strategy = iota + 1
	AlphaBeta
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// ParseStrategy converts an external strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "alpha_beta":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a known algorithm.
func (s Strategy) Valid() bool {
	return s == Minimax || s == AlphaBeta
}

// Result is the outcome of a top-level search.
type Result struct {
	Score int
	Move  Move
	Found bool
	Nodes uint64
}

// Searcher explores the game tree on a shared board, placing and retracting
// stones as it recurses. Recursion depth equals the requested depth, so callers
// must keep it small.
type Searcher struct {
	board     *Board
	radius    int
	startTime time.Time
	nodes     uint64
}

// NewSearcher creates a searcher working on b in place.
func NewSearcher(b *Board) *Searcher {
	return &Searcher{
		board:     b,
		radius:    DefaultRadius,
		startTime: time.Now(),
	}
}

// Search runs strategy on b to the given depth. Black moves when maximizing.
// The board is left as it was found. An unknown strategy yields no move.
func Search(b *Board, strategy Strategy, depth int, maximizing bool) Result {
	s := NewSearcher(b)

	var (
		score int
		move  Move
		found bool
	)

	switch strategy {
	case Minimax:
		score, move, found = s.Minimax(depth, maximizing)
	case AlphaBeta:
		score, move, found = s.AlphaBeta(depth, math.MinInt, math.MaxInt, maximizing)
	default:
		return Result{}
	}

	s.logStats(strategy, depth)

	return Result{
		Score: score,
		Move:  move,
		Found: found,
		Nodes: s.nodes,
	}
}

// Minimax searches every candidate move without pruning.
func (s *Searcher) Minimax(depth int, maximizing bool) (int, Move, bool) {
	s.nodes++

	if score, done := s.terminal(depth); done {
		return score, Move{}, false
	}

	candidates := CandidateMoves(s.board, s.radius)
	if len(candidates) == 0 {
		return 0, Move{}, false
	}

	mover, best := moverAndBound(maximizing)
	var bestMove Move

	for _, move := range candidates {
		score := s.try(move, mover, func() int {
			childScore, _, _ := s.Minimax(depth-1, !maximizing)
			return childScore
		})

		if improves(score, best, maximizing) {
			best = score
			bestMove = move
		}
	}

	return best, bestMove, true
}

// AlphaBeta searches like Minimax but stops examining siblings once beta <= alpha.
// It picks the same move as Minimax at equal depth.
func (s *Searcher) AlphaBeta(depth int, alpha, beta int, maximizing bool) (int, Move, bool) {
	s.nodes++

	if score, done := s.terminal(depth); done {
		return score, Move{}, false
	}

	candidates := CandidateMoves(s.board, s.radius)
	if len(candidates) == 0 {
		return 0, Move{}, false
	}

	mover, best := moverAndBound(maximizing)
	var bestMove Move

	for _, move := range candidates {
		score := s.try(move, mover, func() int {
			childScore, _, _ := s.AlphaBeta(depth-1, alpha, beta, !maximizing)
			return childScore
		})

		if improves(score, best, maximizing) {
			best = score
			bestMove = move
		}

		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		if beta <= alpha {
			break
		}
	}

	return best, bestMove, true
}

// terminal checks the stop conditions in order: Black won, White won, then a
// full board or exhausted depth scored by the heuristic.
func (s *Searcher) terminal(depth int) (int, bool) {
	if HasFiveInRow(s.board, Black) {
		return WinScore, true
	}
	if HasFiveInRow(s.board, White) {
		return -WinScore, true
	}
	if depth <= 0 || s.board.IsFull() {
		return Evaluate(s.board), true
	}
	return 0, false
}

// try places a stone for the duration of fn and always retracts it.
func (s *Searcher) try(move Move, stone Cell, fn func() int) int {
	s.board.Set(move, stone)
	defer s.board.Clear(move)

	return fn()
}

func (s *Searcher) logStats(strategy Strategy, depth int) {
	elapsed := time.Since(s.startTime)

	nodesPerSecond := int64(0)
	if seconds := elapsed.Seconds(); seconds > 0.000001 {
		nodesPerSecond = int64(float64(s.nodes) / seconds)
	}

	slog.Debug(
		"search finished",
		"strategy", strategy.String(),
		"depth", depth,
		"nodes", s.nodes,
		"elapsed", elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}

func moverAndBound(maximizing bool) (Cell, int) {
	if maximizing {
		return Black, math.MinInt
	}
	return White, math.MaxInt
}

// improves keeps the first of equally scored moves.
func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
