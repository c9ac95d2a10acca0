package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/gomoku/internal/api"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/lk16/gomoku/internal/models"
)

// player picks moves for one color, either locally or through a move server.
type player struct {
	strategy gomoku.Strategy
	depth    int
	client   *api.Client
}

func main() {
	size := flag.Int("size", gomoku.DefaultBoardSize, "board size")
	blackStrategy := flag.String("black", config.DefaultStrategy, "strategy for black")
	whiteStrategy := flag.String("white", config.DefaultStrategy, "strategy for white")
	blackDepth := flag.Int("black-depth", config.DefaultSearchDepth, "search depth for black")
	whiteDepth := flag.Int("white-depth", config.DefaultSearchDepth, "search depth for white")
	remote := flag.String("remote", "", "let the move server play black, white or both")
	verbose := flag.Bool("verbose", false, "print the board after every move")
	flag.Parse()

	config.LoadDotEnv()
	config.SetLogLevel()

	if *size < gomoku.MinBoardSize || *size > gomoku.MaxBoardSize {
		slog.Error("Invalid board size", "size", *size, "min", gomoku.MinBoardSize, "max", gomoku.MaxBoardSize)
		os.Exit(1)
	}

	black, err := newPlayer(*blackStrategy, *blackDepth)
	if err != nil {
		slog.Error("Invalid black player", "error", err)
		os.Exit(1)
	}

	white, err := newPlayer(*whiteStrategy, *whiteDepth)
	if err != nil {
		slog.Error("Invalid white player", "error", err)
		os.Exit(1)
	}

	switch *remote {
	case "":
	case "black":
		black.client = api.NewClient(config.LoadClientConfig())
	case "white":
		white.client = api.NewClient(config.LoadClientConfig())
	case "both":
		client := api.NewClient(config.LoadClientConfig())
		black.client = client
		white.client = client
	default:
		slog.Error("Invalid remote flag, it must be black, white or both", "remote", *remote)
		os.Exit(1)
	}

	game := gomoku.NewGame(*size)
	if err = play(context.Background(), game, black, white, *verbose); err != nil {
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}

	game.Board().Print()
	fmt.Printf("%s after %d moves\n", game.Result(), len(game.Moves()))
}

func newPlayer(strategyName string, depth int) (*player, error) {
	strategy, err := gomoku.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	if depth < 1 {
		return nil, fmt.Errorf("depth must be positive, got %d", depth)
	}

	return &player{strategy: strategy, depth: depth}, nil
}

func (p *player) chooseMove(ctx context.Context, board *gomoku.Board, turn gomoku.Cell) (gomoku.Move, bool, error) {
	if p.client == nil {
		move, ok := gomoku.ChooseMove(board, turn, p.strategy, p.depth)
		return move, ok, nil
	}

	response, err := p.client.ChooseMove(ctx, models.MoveRequest{
		Board:    board.String(),
		Player:   turn.String(),
		Strategy: p.strategy.String(),
		Depth:    p.depth,
	})
	if err != nil {
		return gomoku.Move{}, false, err
	}

	if !response.Found || response.Move == nil {
		return gomoku.Move{}, false, nil
	}

	return *response.Move, true, nil
}

func play(ctx context.Context, game *gomoku.Game, black, white *player, verbose bool) error {
	for game.Result() == gomoku.Ongoing {
		turn := game.Turn()

		current := black
		if turn == gomoku.White {
			current = white
		}

		start := time.Now()
		move, ok, err := current.chooseMove(ctx, game.Board(), turn)
		if err != nil {
			return fmt.Errorf("error choosing move for %s: %w", turn, err)
		}

		if !ok {
			slog.Info("No move available, resigning", "player", turn)
			return game.Resign()
		}

		if err = game.PushMove(move); err != nil {
			return fmt.Errorf("error playing %s for %s: %w", move, turn, err)
		}

		slog.Info("Played move", "player", turn, "move", move.String(), "elapsed", time.Since(start))

		if verbose {
			game.Board().Print()
		}
	}

	return nil
}
