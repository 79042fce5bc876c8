package usecase

import (
	"context"

	"research-chatbot/internal/chatbot"
	"research-chatbot/internal/keyword"
	"research-chatbot/internal/library"
	"research-chatbot/internal/router"
	"research-chatbot/pkg/llmprovider"
	pkgLog "research-chatbot/pkg/log"
)

// LLM is the slice of the provider manager the usecase needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       LLM
	router    router.Router
	extractor keyword.Extractor
	library   library.Repository
}

var _ chatbot.UseCase = (*implUseCase)(nil)

// New creates a new chatbot UseCase instance.
func New(
	l pkgLog.Logger,
	llm LLM,
	rt router.Router,
	extractor keyword.Extractor,
	lib library.Repository,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		router:    rt,
		extractor: extractor,
		library:   lib,
	}
}
