package gomoku

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over")
)

// Outcome is the state of a game.
type Outcome int

const (
	Ongoing Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func winOutcome(player Cell) Outcome {
	if player == Black {
		return BlackWins
	}
	return WhiteWins
}

// Game represents a game in progress or finished. Black moves first.
type Game struct {
	// board is the authoritative board
	board *Board

	// moves is the list of moves played, in order
	moves []Move

	// resigned is set when the player to move had no move and lost by default
	resigned bool
}

// NewGame creates a new game on an empty board.
func NewGame(size int) *Game {
	return &Game{
		board: NewBoard(size),
		moves: make([]Move, 0),
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Moves returns a copy of the moves played.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Turn returns the player to move.
func (g *Game) Turn() Cell {
	if len(g.moves)%2 == 0 {
		return Black
	}
	return White
}

// Result returns the current outcome.
func (g *Game) Result() Outcome {
	if g.resigned {
		return winOutcome(g.Turn().Opponent())
	}

	if winner := Winner(g.board); winner != Empty {
		return winOutcome(winner)
	}

	if g.board.IsFull() {
		return Draw
	}

	return Ongoing
}

// PushMove plays move for the player to move.
func (g *Game) PushMove(move Move) error {
	if g.Result() != Ongoing {
		return ErrGameOver
	}

	if !g.board.IsValidMove(move) {
		return fmt.Errorf("%w: %s", ErrInvalidMove, move)
	}

	g.board.Set(move, g.Turn())
	g.moves = append(g.moves, move)
	return nil
}

// PopMove undoes the last move, or a resignation.
func (g *Game) PopMove() {
	if g.resigned {
		g.resigned = false
		return
	}

	if len(g.moves) == 0 {
		return
	}

	last := g.moves[len(g.moves)-1]
	g.board.Clear(last)
	g.moves = g.moves[:len(g.moves)-1]
}

// Resign ends an ongoing game in favor of the opponent of the player to move.
func (g *Game) Resign() error {
	if g.Result() != Ongoing {
		return ErrGameOver
	}

	g.resigned = true
	return nil
}
