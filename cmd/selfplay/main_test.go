package main

import (
	"context"
	"testing"

	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayFinishesGame(t *testing.T) {
	black, err := newPlayer("alphabeta", 1)
	require.NoError(t, err)

	white, err := newPlayer("minimax", 1)
	require.NoError(t, err)

	game := gomoku.NewGame(gomoku.MinBoardSize)
	require.NoError(t, play(context.Background(), game, black, white, false))

	assert.NotEqual(t, gomoku.Ongoing, game.Result())
	assert.NotEmpty(t, game.Moves())
}

func TestNewPlayer_Invalid(t *testing.T) {
	_, err := newPlayer("negamax", 1)
	require.ErrorIs(t, err, gomoku.ErrUnknownStrategy)

	_, err = newPlayer("minimax", 0)
	require.Error(t, err)
}
