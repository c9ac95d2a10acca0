package ws

import (
	"encoding/json"
)

const (
	EventMoveRequest = "move_request"
	EventError       = "error"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
