package gomoku

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame(DefaultBoardSize)

	require.Equal(t, Black, game.Turn())
	require.Equal(t, Ongoing, game.Result())
	require.Empty(t, game.Moves())
	require.True(t, game.Board().IsBlank())
}

func TestGame_PushMove(t *testing.T) {
	game := NewGame(DefaultBoardSize)

	require.NoError(t, game.PushMove(Move{Row: 7, Col: 7}))
	require.Equal(t, White, game.Turn())

	require.NoError(t, game.PushMove(Move{Row: 7, Col: 8}))
	require.Equal(t, Black, game.Turn())

	board := game.Board()
	require.Equal(t, Black, board.At(7, 7))
	require.Equal(t, White, board.At(7, 8))
	require.Equal(t, []Move{{Row: 7, Col: 7}, {Row: 7, Col: 8}}, game.Moves())
}

func TestGame_PushMove_Invalid(t *testing.T) {
	game := NewGame(DefaultBoardSize)
	require.NoError(t, game.PushMove(Move{Row: 0, Col: 0}))

	require.ErrorIs(t, game.PushMove(Move{Row: 0, Col: 0}), ErrInvalidMove)
	require.ErrorIs(t, game.PushMove(Move{Row: 15, Col: 0}), ErrInvalidMove)
	require.Equal(t, White, game.Turn())
}

func TestGame_BoardIsACopy(t *testing.T) {
	game := NewGame(DefaultBoardSize)
	board := game.Board()
	board.Set(Move{Row: 1, Col: 1}, Black)

	require.True(t, game.Board().IsBlank())
}

func TestGame_Win(t *testing.T) {
	game := NewGame(DefaultBoardSize)

	for i := range 4 {
		require.NoError(t, game.PushMove(Move{Row: 7, Col: 3 + i}))
		require.NoError(t, game.PushMove(Move{Row: 0, Col: i}))
	}
	require.NoError(t, game.PushMove(Move{Row: 7, Col: 7}))

	require.Equal(t, BlackWins, game.Result())
	require.ErrorIs(t, game.PushMove(Move{Row: 0, Col: 4}), ErrGameOver)

	game.PopMove()
	require.Equal(t, Ongoing, game.Result())
	require.Equal(t, Black, game.Turn())
}

func TestGame_Draw(t *testing.T) {
	full := drawBoard(MinBoardSize)
	game := NewGame(MinBoardSize)

	var black, white []Move
	for row := range MinBoardSize {
		for col := range MinBoardSize {
			move := Move{Row: row, Col: col}
			if full.At(row, col) == Black {
				black = append(black, move)
			} else {
				white = append(white, move)
			}
		}
	}
	require.Len(t, black, 13)
	require.Len(t, white, 12)

	for i := range black {
		require.NoError(t, game.PushMove(black[i]))
		if i < len(white) {
			require.NoError(t, game.PushMove(white[i]))
		}
	}

	require.Equal(t, Draw, game.Result())
	require.True(t, game.Board().Equal(full))
}

func TestGame_Resign(t *testing.T) {
	game := NewGame(DefaultBoardSize)
	require.NoError(t, game.PushMove(Move{Row: 7, Col: 7}))

	require.NoError(t, game.Resign())
	require.Equal(t, BlackWins, game.Result())
	require.ErrorIs(t, game.Resign(), ErrGameOver)

	game.PopMove()
	require.Equal(t, Ongoing, game.Result())
	require.Len(t, game.Moves(), 1)
}

func TestGame_PopMove_Empty(t *testing.T) {
	game := NewGame(DefaultBoardSize)
	game.PopMove()

	require.Empty(t, game.Moves())
	require.Equal(t, Black, game.Turn())
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "black wins", BlackWins.String())
	require.Equal(t, "white wins", WhiteWins.String())
	require.Equal(t, "draw", Draw.String())
	require.Equal(t, "ongoing", Ongoing.String())
}
