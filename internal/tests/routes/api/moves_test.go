package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/lk16/gomoku/internal/models"
	"github.com/lk16/gomoku/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blankBoard = "...../...../...../...../....."

func newMoveRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/moves", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-token", tests.Token)

	return req
}

func TestChooseMove(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		wantMoves    []gomoku.Move
		wantStrategy string
		wantDepth    int
	}{
		{
			name:         "BlockOpenFour",
			body:         `{"board":"......./......./.XXXX../......./......./......./.......","player":"white","strategy":"alphabeta","depth":1}`,
			wantMoves:    []gomoku.Move{{Row: 2, Col: 0}, {Row: 2, Col: 5}},
			wantStrategy: "alphabeta",
			wantDepth:    1,
		},
		{
			name:         "Defaults",
			body:         `{"board":"` + blankBoard + `","player":"black"}`,
			wantMoves:    []gomoku.Move{{Row: 2, Col: 2}},
			wantStrategy: "minimax",
			wantDepth:    config.DefaultSearchDepth,
		},
		{
			name:         "UnknownStrategy",
			body:         `{"board":"` + blankBoard + `","player":"black","strategy":"negamax"}`,
			wantStrategy: "unknown",
			wantDepth:    config.DefaultSearchDepth,
		},
		{
			name:         "DecidedBoard",
			body:         `{"board":"XXXXX/OOOO./...../...../.....","player":"white","strategy":"minimax","depth":1}`,
			wantStrategy: "minimax",
			wantDepth:    1,
		},
	}

	app := tests.NewApp()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := tests.Do(t, app, newMoveRequest(t, tc.body))
			require.Equal(t, http.StatusOK, status, string(body))

			var response models.MoveResponse
			require.NoError(t, json.Unmarshal(body, &response))

			assert.Equal(t, tc.wantStrategy, response.Strategy)
			assert.Equal(t, tc.wantDepth, response.Depth)
			assert.NotEmpty(t, response.ID)

			if len(tc.wantMoves) == 0 {
				assert.False(t, response.Found)
				assert.Nil(t, response.Move)
				return
			}

			require.True(t, response.Found)
			require.NotNil(t, response.Move)
			assert.Contains(t, tc.wantMoves, *response.Move)
		})
	}
}

func TestChooseMove_BadRequest(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"InvalidJSON", `{"board":`},
		{"MissingBoard", `{"player":"black"}`},
		{"MalformedBoard", `{"board":"XX/X","player":"black"}`},
		{"BadPlayer", `{"board":"` + blankBoard + `","player":"red"}`},
		{"DepthTooLarge", `{"board":"` + blankBoard + `","player":"black","depth":99}`},
		{"DepthAboveDefaultMax", `{"board":"` + blankBoard + `","player":"black","depth":3}`},
		{"NegativeDepth", `{"board":"` + blankBoard + `","player":"black","depth":-1}`},
	}

	app := tests.NewApp()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := tests.Do(t, app, newMoveRequest(t, tc.body))
			require.Equal(t, http.StatusBadRequest, status)

			var response map[string]string
			require.NoError(t, json.Unmarshal(body, &response))
			assert.NotEmpty(t, response["error"])
		})
	}
}

func TestChooseMove_Auth(t *testing.T) {
	body := `{"board":"` + blankBoard + `","player":"black","depth":1}`

	testCases := []struct {
		name       string
		token      string
		basicAuth  bool
		wantStatus int
	}{
		{name: "Token", token: tests.Token, wantStatus: http.StatusOK},
		{name: "BasicAuth", basicAuth: true, wantStatus: http.StatusOK},
		{name: "WrongToken", token: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "Nothing", wantStatus: http.StatusUnauthorized},
	}

	app := tests.NewApp()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newMoveRequest(t, body)
			req.Header.Del("x-token")

			if tc.token != "" {
				req.Header.Set("x-token", tc.token)
			}
			if tc.basicAuth {
				req.SetBasicAuth(tests.BasicAuthUsername, tests.BasicAuthPassword)
			}

			status, _ := tests.Do(t, app, req)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
