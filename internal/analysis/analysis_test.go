package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/lk16/gomoku/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	records []models.SearchRecord
	err     error
}

func (f *fakeRecorder) RecordSearch(_ context.Context, record models.SearchRecord) error {
	f.records = append(f.records, record)
	return f.err
}

func newQuery(t *testing.T, board string, player gomoku.Cell, strategy gomoku.Strategy) *models.MoveQuery {
	t.Helper()

	b, err := gomoku.NewBoardFromString(board)
	require.NoError(t, err)

	return &models.MoveQuery{Board: b, Player: player, Strategy: strategy, Depth: 1}
}

func TestAnalyze_CompletesFive(t *testing.T) {
	recorder := &fakeRecorder{}
	query := newQuery(t, "XXXX..../......../......../......../......../......../......../OOO.....", gomoku.Black, gomoku.AlphaBeta)

	response := Analyze(context.Background(), recorder, query)

	require.True(t, response.Found)
	require.NotNil(t, response.Move)
	assert.Equal(t, gomoku.Move{Row: 0, Col: 4}, *response.Move)
	assert.Equal(t, gomoku.WinScore, response.Score)
	assert.Equal(t, "alphabeta", response.Strategy)
	assert.Equal(t, 1, response.Depth)
	assert.NotEmpty(t, response.ID)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, response.ID, recorder.records[0].ID)
	assert.Equal(t, response.Nodes, uint64(recorder.records[0].Nodes))
}

func TestAnalyze_UnknownStrategy(t *testing.T) {
	recorder := &fakeRecorder{}
	query := newQuery(t, "...../...../...../...../.....", gomoku.Black, gomoku.Strategy(0))

	response := Analyze(context.Background(), recorder, query)

	assert.False(t, response.Found)
	assert.Nil(t, response.Move)
	assert.Equal(t, "unknown", response.Strategy)
	assert.Empty(t, recorder.records)
}

func TestAnalyze_RecordFailureIsIgnored(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("connection refused")}
	query := newQuery(t, "...../...../...../...../.....", gomoku.White, gomoku.Minimax)

	response := Analyze(context.Background(), recorder, query)

	require.True(t, response.Found)
	assert.Equal(t, gomoku.Move{Row: 2, Col: 2}, *response.Move)
	assert.Len(t, recorder.records, 1)
}
