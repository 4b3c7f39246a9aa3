package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anbupayan_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ChatSessionInfo pairs the stateful model handle with its display
// transcript. The model side remembers prior turns; the transcript is the
// purely additive mirror shown to the user.
type ChatSessionInfo struct {
	Model        ChatModel
	Language     string
	Transcript   []models.ChatMessage
	LastAccessed time.Time
}

// ChatSessionService owns the conversational sessions and drives each turn:
// wrap the utterance with the assistant preamble, send it through the
// session's model handle, and append exactly one user and one assistant
// transcript entry on success. Chat replies are returned unfiltered; no
// cleanup pass is applied.
type ChatSessionService struct {
	modelFactory   ChatModelFactory
	prompts        *PromptBuilder
	sessions       sync.Map
	sessionsMutex  sync.RWMutex
	sessionTimeout time.Duration
}

func NewChatSessionService(modelFactory ChatModelFactory, prompts *PromptBuilder, sessionTimeout, checkInterval time.Duration) *ChatSessionService {
	css := &ChatSessionService{
		modelFactory:   modelFactory,
		prompts:        prompts,
		sessionTimeout: sessionTimeout,
	}
	go css.periodicCleanup(checkInterval)
	return css
}

// StartChatSession creates a fresh conversation with empty history and
// returns its session ID.
func (css *ChatSessionService) StartChatSession(language string) string {
	sessionID := uuid.New().String()

	css.sessionsMutex.Lock()
	defer css.sessionsMutex.Unlock()

	css.sessions.Store(sessionID, ChatSessionInfo{
		Model:        css.modelFactory.NewChatModel(),
		Language:     language,
		Transcript:   []models.ChatMessage{},
		LastAccessed: time.Now(),
	})
	return sessionID
}

// SendMessage submits one user utterance and returns the assistant reply. On
// failure the transcript is left untouched.
func (css *ChatSessionService) SendMessage(ctx context.Context, sessionID, userInput string) (string, error) {
	css.sessionsMutex.Lock()
	defer css.sessionsMutex.Unlock()

	value, ok := css.sessions.Load(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	info := value.(ChatSessionInfo)

	reply, err := info.Model.SendMessage(ctx, css.prompts.ChatTurn(info.Language, userInput))
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}

	now := time.Now()
	info.Transcript = append(info.Transcript,
		models.ChatMessage{Role: models.ChatRoleUser, Content: userInput, Timestamp: now},
		models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply, Timestamp: now},
	)
	info.LastAccessed = now
	css.sessions.Store(sessionID, info)

	return reply, nil
}

// Transcript returns a copy of the display transcript in call order.
func (css *ChatSessionService) Transcript(sessionID string) ([]models.ChatMessage, error) {
	css.sessionsMutex.RLock()
	defer css.sessionsMutex.RUnlock()

	value, ok := css.sessions.Load(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	info := value.(ChatSessionInfo)

	transcript := make([]models.ChatMessage, len(info.Transcript))
	copy(transcript, info.Transcript)
	return transcript, nil
}

// TerminateSession discards the conversation and its model-side memory.
func (css *ChatSessionService) TerminateSession(sessionID string) error {
	css.sessionsMutex.Lock()
	defer css.sessionsMutex.Unlock()

	if _, ok := css.sessions.Load(sessionID); !ok {
		return ErrSessionNotFound
	}
	css.sessions.Delete(sessionID)
	log.Info().Str("session_id", sessionID).Msg("chat session terminated")
	return nil
}

// HasSession reports whether a chat session is still alive.
func (css *ChatSessionService) HasSession(sessionID string) bool {
	_, ok := css.sessions.Load(sessionID)
	return ok
}

func (css *ChatSessionService) periodicCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	for range ticker.C {
		css.CleanupExpiredSessions()
	}
}

// CleanupExpiredSessions drops conversations idle for longer than the
// session timeout.
func (css *ChatSessionService) CleanupExpiredSessions() {
	now := time.Now()
	css.sessions.Range(func(key, value interface{}) bool {
		sessionID := key.(string)
		info := value.(ChatSessionInfo)
		if now.Sub(info.LastAccessed) > css.sessionTimeout {
			css.sessions.Delete(sessionID)
			log.Info().Str("session_id", sessionID).Msg("chat session expired")
		}
		return true
	})
}
