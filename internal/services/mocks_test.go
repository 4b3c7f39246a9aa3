package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) SendMessage(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

type MockChatModelFactory struct {
	mock.Mock
}

func (m *MockChatModelFactory) NewChatModel() ChatModel {
	args := m.Called()
	return args.Get(0).(ChatModel)
}
