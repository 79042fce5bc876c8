package router

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"research-chatbot/pkg/llmprovider"
	"research-chatbot/pkg/log"
)

// LLM is the slice of the provider manager the router needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, message string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using the LLM, caching results for
// repeated inputs.
type SemanticRouter struct {
	llm   LLM
	l     log.Logger
	cache *lru.Cache[string, RouterOutput]
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm LLM, l log.Logger) *SemanticRouter {
	cache, err := lru.New[string, RouterOutput](ClassifyCacheSize)
	if err != nil {
		// lru.New only fails on non-positive size
		cache = nil
	}

	return &SemanticRouter{
		llm:   llm,
		l:     l,
		cache: cache,
	}
}
