package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/gomoku/internal/analysis"
	"github.com/lk16/gomoku/internal/config"
	"github.com/lk16/gomoku/internal/models"
	"github.com/lk16/gomoku/internal/repository"
	"github.com/lk16/gomoku/internal/services"
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	recorder analysis.Recorder
	engine   config.EngineConfig
	ws       Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, services *services.Services, engine config.EngineConfig) *Handler {
	return &Handler{
		recorder: repository.NewSearchRepositoryFromServices(services),
		engine:   engine,
		ws:       ws,
	}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventMoveRequest:
		return h.handleMoveRequest(req), nil
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection. Invalid move requests are answered
// with an error event, protocol errors close the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleMoveRequest(req *Incoming) *Outgoing {
	var reqData models.MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return errorResponse(req.ID, fmt.Errorf("invalid move request: %w", err))
	}

	query, err := reqData.Parse(h.engine)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	return &Outgoing{
		ID:    req.ID,
		Event: EventMoveRequest,
		Data:  analysis.Analyze(context.Background(), h.recorder, query),
	}
}

func errorResponse(id int, err error) *Outgoing {
	return &Outgoing{
		ID:    id,
		Event: EventError,
		Data:  ErrorResponse{Error: err.Error()},
	}
}
