package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/gomoku"
)

func main() {
	boardString := flag.String("board", "", "the board to show")
	depth := flag.Int("depth", 0, "search this deep for a move, 0 to only show the board")
	playerName := flag.String("player", "black", "the player to search a move for")
	strategyName := flag.String("strategy", config.DefaultStrategy, "search strategy: minimax or alphabeta")
	flag.Parse()

	config.SetLogLevel()

	board, err := gomoku.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	board.Print()

	if *depth == 0 {
		return
	}

	player, err := gomoku.ParsePlayer(*playerName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	strategy, err := gomoku.ParseStrategy(*strategyName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	result := gomoku.Search(board, strategy, *depth, player == gomoku.Black)
	if !result.Found {
		fmt.Printf("No move for %s (score %d)\n", player, result.Score)
		return
	}

	fmt.Printf("Best move for %s: %s (score %d, %d nodes)\n", player, result.Move, result.Score, result.Nodes)
}
