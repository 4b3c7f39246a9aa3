package wsocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"anbupayan_go_backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Handler serves the conversational page over a websocket. Each inbound
// "message" frame is one user utterance; the assistant reply comes back as a
// "reply" frame. A background ticker watches for session expiry so an idle
// tab learns its conversation is gone.
type Handler struct {
	chatSessions         *services.ChatSessionService
	upgrader             websocket.Upgrader
	sessionCheckInterval time.Duration
}

type Message struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	SessionID string `json:"sessionId"`
}

func NewHandler(chatSessions *services.ChatSessionService, upgrader websocket.Upgrader, sessionCheckInterval time.Duration) *Handler {
	return &Handler{
		chatSessions:         chatSessions,
		upgrader:             upgrader,
		sessionCheckInterval: sessionCheckInterval,
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "No sessionId provided", http.StatusBadRequest)
		return
	}
	if !h.chatSessions.HasSession(sessionID) {
		http.Error(w, "Unknown sessionId", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ticker := time.NewTicker(h.sessionCheckInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if h.chatSessions.HasSession(sessionID) {
					continue
				}
				if err := conn.WriteJSON(Message{
					Type:      "expired",
					Content:   "Your session has expired.",
					SessionID: sessionID,
				}); err != nil {
					log.Error().Err(err).Msg("failed to send expiration message")
				}
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Error().Err(err).Msg("failed to unmarshal websocket message")
			continue
		}

		switch msg.Type {
		case "message":
			reply, err := h.chatSessions.SendMessage(ctx, sessionID, msg.Content)
			if err != nil {
				h.writeError(conn, sessionID, err)
				continue
			}
			if err := conn.WriteJSON(Message{
				Type:      "reply",
				Content:   reply,
				SessionID: sessionID,
			}); err != nil {
				log.Error().Err(err).Msg("failed to send reply")
				return
			}
		default:
			log.Warn().Str("type", msg.Type).Msg("unhandled websocket message type")
		}
	}
}

func (h *Handler) writeError(conn *websocket.Conn, sessionID string, err error) {
	content := "generation failed, please retry"
	if errors.Is(err, services.ErrSessionNotFound) {
		content = "chat session not found"
	}
	if writeErr := conn.WriteJSON(Message{
		Type:      "error",
		Content:   content,
		SessionID: sessionID,
	}); writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to send error message")
	}
}
