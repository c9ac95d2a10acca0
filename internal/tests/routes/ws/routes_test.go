package ws_test

import (
	"net/http"
	"testing"

	"github.com/lk16/gomoku/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestWebsocketRequiresUpgrade(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/ws", nil)
	require.NoError(t, err)
	req.Header.Set("x-token", tests.Token)

	status, _ := tests.Do(t, tests.NewApp(), req)
	require.Equal(t, http.StatusUpgradeRequired, status)
}

func TestWebsocketRequiresAuth(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/ws", nil)
	require.NoError(t, err)

	status, _ := tests.Do(t, tests.NewApp(), req)
	require.Equal(t, http.StatusUnauthorized, status)
}
