package services

import "context"

// TextGenerator is the single-shot boundary to the hosted generation service:
// prompt in, free text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ChatModel is a stateful conversation handle. The model side retains prior
// turns; callers only ever send the next message.
type ChatModel interface {
	SendMessage(ctx context.Context, message string) (string, error)
}

// ChatModelFactory creates a fresh ChatModel with empty history for each chat
// session.
type ChatModelFactory interface {
	NewChatModel() ChatModel
}
