package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"anbupayan_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("session not found")

// PlannerSession holds the per-user planning state: the last successful
// itinerary and budget results for a trip request. A failed regeneration
// never touches the stored results.
type PlannerSession struct {
	ID           string
	Request      models.TripRequest
	Itinerary    string
	Budget       *models.BudgetTable
	Language     string
	LastAccessed time.Time
}

// TripPlannerService runs the itinerary and budget flows: prompt build,
// one synchronous generation call, cleanup, and (for budgets) table parsing.
type TripPlannerService struct {
	generator      TextGenerator
	prompts        *PromptBuilder
	sessions       sync.Map
	sessionsMutex  sync.RWMutex
	sessionTimeout time.Duration
}

func NewTripPlannerService(generator TextGenerator, prompts *PromptBuilder, sessionTimeout, checkInterval time.Duration) *TripPlannerService {
	s := &TripPlannerService{
		generator:      generator,
		prompts:        prompts,
		sessionTimeout: sessionTimeout,
	}
	go s.periodicCleanup(checkInterval)
	return s
}

// GenerateItinerary runs the itinerary flow. An empty sessionID starts a new
// session; passing an existing one regenerates into it, typically with a
// suggestion.
func (s *TripPlannerService) GenerateItinerary(ctx context.Context, sessionID string, req models.TripRequest, suggestion string) (*PlannerSession, error) {
	prompt := s.prompts.ItineraryPrompt(req, suggestion)
	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}

	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	session, err := s.loadOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	session.Request = req
	session.Language = req.Language
	session.Itinerary = CleanResponseText(raw)
	session.LastAccessed = time.Now()
	s.sessions.Store(session.ID, session)

	return &session, nil
}

// GenerateBudget runs the budget flow. The cleaned response is parsed into a
// table; parsing never fails, so any successful generation yields a result.
func (s *TripPlannerService) GenerateBudget(ctx context.Context, sessionID string, req models.TripRequest, suggestion string) (*PlannerSession, error) {
	prompt := s.prompts.BudgetPrompt(req, suggestion)
	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("budget generation failed: %w", err)
	}

	table := ParseBudgetText(CleanResponseText(raw))

	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	session, err := s.loadOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	session.Request = req
	session.Language = req.Language
	session.Budget = &table
	session.LastAccessed = time.Now()
	s.sessions.Store(session.ID, session)

	return &session, nil
}

// Session returns the current state for a session ID and refreshes its
// last-access time.
func (s *TripPlannerService) Session(sessionID string) (*PlannerSession, error) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	value, ok := s.sessions.Load(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session := value.(PlannerSession)
	session.LastAccessed = time.Now()
	s.sessions.Store(sessionID, session)
	return &session, nil
}

// loadOrCreate expects the sessions mutex to be held.
func (s *TripPlannerService) loadOrCreate(sessionID string) (PlannerSession, error) {
	if sessionID == "" {
		return PlannerSession{ID: uuid.New().String()}, nil
	}
	value, ok := s.sessions.Load(sessionID)
	if !ok {
		return PlannerSession{}, ErrSessionNotFound
	}
	return value.(PlannerSession), nil
}

func (s *TripPlannerService) periodicCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	for range ticker.C {
		s.CleanupExpiredSessions()
	}
}

// CleanupExpiredSessions drops sessions idle for longer than the session
// timeout.
func (s *TripPlannerService) CleanupExpiredSessions() {
	now := time.Now()
	s.sessions.Range(func(key, value interface{}) bool {
		sessionID := key.(string)
		session := value.(PlannerSession)
		if now.Sub(session.LastAccessed) > s.sessionTimeout {
			s.sessions.Delete(sessionID)
			log.Info().Str("session_id", sessionID).Msg("planner session expired")
		}
		return true
	})
}
