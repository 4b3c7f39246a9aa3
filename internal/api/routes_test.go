package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anbupayan_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubChatModel struct {
	reply string
	err   error
}

func (s *stubChatModel) SendMessage(ctx context.Context, message string) (string, error) {
	return s.reply, s.err
}

type stubChatFactory struct {
	model services.ChatModel
}

func (s *stubChatFactory) NewChatModel() services.ChatModel {
	return s.model
}

func setupTestRouter(generator services.TextGenerator, chatModel services.ChatModel) *gin.Engine {
	gin.SetMode(gin.TestMode)
	prompts := services.NewPromptBuilder()
	planner := services.NewTripPlannerService(generator, prompts, time.Hour, time.Hour)
	chatSessions := services.NewChatSessionService(&stubChatFactory{model: chatModel}, prompts, time.Hour, time.Hour)
	pdfService := services.NewPDFServiceWithCoreFonts()

	r := gin.New()
	SetupRoutes(r, planner, chatSessions, pdfService)
	return r
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itineraryBody() gin.H {
	return gin.H{
		"departure":   "Chennai",
		"destination": "Bangalore",
		"days":        3,
		"budget":      20000,
		"interests":   "Food, Adventure, Culture",
		"language":    "English",
	}
}

func TestItineraryEndpoint(t *testing.T) {
	generator := &stubGenerator{reply: "Day 1: Arrival\nDay 2: Beach"}
	r := setupTestRouter(generator, &stubChatModel{})

	w := postJSON(r, "/api/itinerary", itineraryBody())

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		SessionID string `json:"session_id"`
		Itinerary string `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.SessionID)
	assert.Equal(t, "Day 1: Arrival\nDay 2: Beach", response.Itinerary)
}

func TestItineraryEndpointMissingFields(t *testing.T) {
	generator := &stubGenerator{reply: "Day 1"}
	r := setupTestRouter(generator, &stubChatModel{})

	w := postJSON(r, "/api/itinerary", gin.H{"departure": "Chennai"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, generator.calls, "no external call may happen on incomplete input")
}

func TestItineraryEndpointBoundsChecked(t *testing.T) {
	generator := &stubGenerator{reply: "Day 1"}
	r := setupTestRouter(generator, &stubChatModel{})

	body := itineraryBody()
	body["days"] = 45
	w := postJSON(r, "/api/itinerary", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, generator.calls)
}

func TestItineraryEndpointGenerationFailure(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	r := setupTestRouter(generator, &stubChatModel{})

	w := postJSON(r, "/api/itinerary", itineraryBody())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "generation failed, please retry")
}

func TestBudgetEndpoint(t *testing.T) {
	generator := &stubGenerator{reply: "Transport | Flight | 5000\nTotal Estimated Cost |  | 5000\nFits within budget"}
	r := setupTestRouter(generator, &stubChatModel{})

	body := itineraryBody()
	delete(body, "interests")
	body["people"] = 2
	w := postJSON(r, "/api/budget", body)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		SessionID string `json:"session_id"`
		Budget    struct {
			Rows     []map[string]string `json:"rows"`
			Notes    string              `json:"notes"`
			TotalRow int                 `json:"total_row"`
		} `json:"budget"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Budget.Rows, 3)
	assert.Equal(t, 2, response.Budget.TotalRow)
	assert.Equal(t, "Fits within budget", response.Budget.Notes)
}

func TestItineraryPDFDownload(t *testing.T) {
	generator := &stubGenerator{reply: "Day 1: Arrival"}
	r := setupTestRouter(generator, &stubChatModel{})

	w := postJSON(r, "/api/itinerary", itineraryBody())
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = postJSON(r, "/api/itinerary/pdf", gin.H{"session_id": created.SessionID})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "itinerary.pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestPDFDownloadUnknownSession(t *testing.T) {
	r := setupTestRouter(&stubGenerator{}, &stubChatModel{})

	w := postJSON(r, "/api/itinerary/pdf", gin.H{"session_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatFlow(t *testing.T) {
	r := setupTestRouter(&stubGenerator{}, &stubChatModel{reply: "Visit in winter."})

	w := postJSON(r, "/api/chat/session", gin.H{"language": "English"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = postJSON(r, "/api/chat/message", gin.H{"session_id": created.SessionID, "message": "best time for Goa?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Visit in winter.")

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?session_id="+created.SessionID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "user", history.Messages[0].Role)
	assert.Equal(t, "assistant", history.Messages[1].Role)
}

func TestChatUnsupportedLanguage(t *testing.T) {
	r := setupTestRouter(&stubGenerator{}, &stubChatModel{})

	w := postJSON(r, "/api/chat/session", gin.H{"language": "Klingon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguagesEndpoint(t *testing.T) {
	r := setupTestRouter(&stubGenerator{}, &stubChatModel{})

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Malayalam")
}
