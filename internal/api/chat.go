package api

import (
	"errors"
	"net/http"
	"time"

	apperrors "anbupayan_go_backend/internal/errors"
	"anbupayan_go_backend/internal/models"
	"anbupayan_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func startChatHandler(chatSessions *services.ChatSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Language string `json:"language" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}
		if !models.IsSupportedLanguage(request.Language) {
			apperrors.HandleError(c, apperrors.New400Error("unsupported language"))
			return
		}

		sessionID := chatSessions.StartChatSession(request.Language)
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
	}
}

func sendChatMessageHandler(chatSessions *services.ChatSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID string `json:"session_id" binding:"required"`
			Message   string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		reply, err := chatSessions.SendMessage(c.Request.Context(), request.SessionID, request.Message)
		if err != nil {
			handleChatError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

func getChatHistoryHandler(chatSessions *services.ChatSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			apperrors.HandleError(c, apperrors.New400Error("session_id is required"))
			return
		}

		transcript, err := chatSessions.Transcript(sessionID)
		if err != nil {
			handleChatError(c, err)
			return
		}

		messages := make([]gin.H, len(transcript))
		for i, msg := range transcript {
			messages[i] = gin.H{
				"role":      msg.Role,
				"content":   msg.Content,
				"timestamp": msg.Timestamp.Format(time.RFC3339),
			}
		}

		c.JSON(http.StatusOK, gin.H{"messages": messages})
	}
}

func terminateChatHandler(chatSessions *services.ChatSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			SessionID string `json:"session_id" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		if err := chatSessions.TerminateSession(request.SessionID); err != nil {
			handleChatError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "chat session terminated"})
	}
}

func handleChatError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSessionNotFound) {
		apperrors.HandleError(c, apperrors.New404Error("chat session not found"))
		return
	}
	apperrors.HandleError(c, apperrors.New502Error(err))
}
