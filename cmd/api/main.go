package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"anbupayan_go_backend/cmd/api/config"
	"anbupayan_go_backend/internal/api"
	"anbupayan_go_backend/internal/services"
	"anbupayan_go_backend/internal/wsocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	genaiAPIKey := os.Getenv("GOOGLE_AI_STUDIO_API_KEY")
	if genaiAPIKey == "" {
		log.Fatal("GOOGLE_AI_STUDIO_API_KEY is not set in the environment")
	}

	fontDir := os.Getenv("FONT_DIR")
	if fontDir == "" {
		fontDir = "fonts"
	}

	cfg := config.NewConfig()

	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(genaiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}
	defer genaiClient.Close()

	// Font assets are checked once here; a missing TTF aborts startup.
	pdfService, err := services.NewPDFService(fontDir)
	if err != nil {
		log.Fatalf("Failed to initialize PDF service: %v", err)
	}

	generationService := services.NewGenerationService(genaiClient, cfg.ModelName)
	promptBuilder := services.NewPromptBuilder()

	plannerService := services.NewTripPlannerService(
		generationService,
		promptBuilder,
		cfg.PlannerSessionTTL,
		cfg.SessionCheckInterval,
	)
	chatSessionService := services.NewChatSessionService(
		generationService,
		promptBuilder,
		cfg.ChatSessionTTL,
		cfg.SessionCheckInterval,
	)

	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // TODO: restrict to ALLOWED_ORIGINS before exposing publicly
		},
	}
	wsHandler := wsocket.NewHandler(chatSessionService, upgrader, cfg.SessionCheckInterval)

	api.SetupRoutes(r, plannerService, chatSessionService, pdfService)
	r.GET("/ws", func(c *gin.Context) {
		wsHandler.HandleWebSocket(c.Writer, c.Request)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
