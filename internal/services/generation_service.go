package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// GenerationService wraps the Gemini client behind the TextGenerator and
// ChatModelFactory interfaces so the flows can be tested with fakes.
type GenerationService struct {
	client    *genai.Client
	modelName string
}

func NewGenerationService(client *genai.Client, modelName string) *GenerationService {
	return &GenerationService{
		client:    client,
		modelName: modelName,
	}
}

func (s *GenerationService) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(s.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return textFromResponse(resp)
}

func (s *GenerationService) NewChatModel() ChatModel {
	model := s.client.GenerativeModel(s.modelName)
	return &geminiChatModel{session: model.StartChat()}
}

type geminiChatModel struct {
	session *genai.ChatSession
}

func (m *geminiChatModel) SendMessage(ctx context.Context, message string) (string, error) {
	resp, err := m.session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}

	if content.Len() == 0 {
		return "", errors.New("no text parts in model response")
	}
	return content.String(), nil
}
