package api

import (
	"errors"
	"net/http"

	apperrors "anbupayan_go_backend/internal/errors"
	"anbupayan_go_backend/internal/models"
	"anbupayan_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, planner *services.TripPlannerService, chatSessions *services.ChatSessionService, pdfService *services.PDFService) {
	api := r.Group("/api")
	{
		api.GET("/languages", listLanguages)
		api.POST("/itinerary", generateItineraryHandler(planner))
		api.POST("/itinerary/pdf", itineraryPDFHandler(planner, pdfService))
		api.POST("/budget", generateBudgetHandler(planner))
		api.POST("/budget/pdf", budgetPDFHandler(planner, pdfService))
		api.POST("/chat/session", startChatHandler(chatSessions))
		api.POST("/chat/message", sendChatMessageHandler(chatSessions))
		api.GET("/chat/history", getChatHistoryHandler(chatSessions))
		api.POST("/chat/terminate", terminateChatHandler(chatSessions))
	}
}

func listLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": models.SupportedLanguages})
}

func generateItineraryHandler(planner *services.TripPlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID   string `json:"session_id"`
			Departure   string `json:"departure" binding:"required"`
			Destination string `json:"destination" binding:"required"`
			Days        int    `json:"days" binding:"required,min=1,max=30"`
			Budget      int    `json:"budget" binding:"required,min=1000,max=1000000"`
			Interests   string `json:"interests" binding:"required"`
			Language    string `json:"language" binding:"required"`
			Suggestion  string `json:"suggestion"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		req := models.TripRequest{
			Departure:   request.Departure,
			Destination: request.Destination,
			Days:        request.Days,
			Budget:      request.Budget,
			Interests:   request.Interests,
			Language:    request.Language,
		}

		session, err := planner.GenerateItinerary(c.Request.Context(), request.SessionID, req, request.Suggestion)
		if err != nil {
			handlePlannerError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"itinerary":  session.Itinerary,
		})
	}
}

func generateBudgetHandler(planner *services.TripPlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID   string `json:"session_id"`
			Departure   string `json:"departure" binding:"required"`
			Destination string `json:"destination" binding:"required"`
			Days        int    `json:"days" binding:"required,min=1,max=30"`
			Budget      int    `json:"budget" binding:"required,min=1000,max=1000000"`
			People      int    `json:"people" binding:"required,min=1"`
			Language    string `json:"language" binding:"required"`
			Suggestion  string `json:"suggestion"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		req := models.TripRequest{
			Departure:   request.Departure,
			Destination: request.Destination,
			Days:        request.Days,
			Budget:      request.Budget,
			People:      request.People,
			Language:    request.Language,
		}

		session, err := planner.GenerateBudget(c.Request.Context(), request.SessionID, req, request.Suggestion)
		if err != nil {
			handlePlannerError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"budget":     session.Budget,
		})
	}
}

func itineraryPDFHandler(planner *services.TripPlannerService, pdfService *services.PDFService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID string `json:"session_id" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		session, err := planner.Session(request.SessionID)
		if err != nil {
			handlePlannerError(c, err)
			return
		}
		if session.Itinerary == "" {
			apperrors.HandleError(c, apperrors.New400Error("no itinerary generated for this session"))
			return
		}

		document, err := pdfService.RenderItinerary(session.Itinerary, session.Language)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="itinerary.pdf"`)
		c.Data(http.StatusOK, "application/pdf", document)
	}
}

func budgetPDFHandler(planner *services.TripPlannerService, pdfService *services.PDFService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID string `json:"session_id" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		session, err := planner.Session(request.SessionID)
		if err != nil {
			handlePlannerError(c, err)
			return
		}
		if session.Budget == nil {
			apperrors.HandleError(c, apperrors.New400Error("no budget generated for this session"))
			return
		}

		document, err := pdfService.RenderBudget(*session.Budget, session.Language)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="travel_budget.pdf"`)
		c.Data(http.StatusOK, "application/pdf", document)
	}
}

func handlePlannerError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSessionNotFound) {
		apperrors.HandleError(c, apperrors.New404Error("session not found"))
		return
	}
	apperrors.HandleError(c, apperrors.New502Error(err))
}
