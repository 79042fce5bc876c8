package chatbot

import (
	"context"

	"research-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chatbot domain.
type UseCase interface {
	// HandleMessage classifies the user message and produces the response for
	// the selected action.
	HandleMessage(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
