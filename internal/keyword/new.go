package keyword

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"research-chatbot/pkg/llmprovider"
	"research-chatbot/pkg/log"
)

// LLM is the slice of the provider manager the extractor needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Extractor pulls vocabulary-restricted keywords out of free-form user text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// VocabExtractor asks the LLM for keywords and validates every candidate
// against the restricted vocabulary.
type VocabExtractor struct {
	llm LLM
	l   log.Logger

	vocabulary []string            // sorted lowercase terms, for prompt and substring fallback
	vocabSet   map[string]struct{} // exact-match lookup
	prompt     string              // system prompt with the vocabulary baked in
}

// Ensure VocabExtractor implements Extractor interface
var _ Extractor = (*VocabExtractor)(nil)

// New creates a new VocabExtractor
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm LLM, vocabulary []string, l log.Logger) *VocabExtractor {
	normalized := make([]string, 0, len(vocabulary))
	vocabSet := make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, dup := vocabSet[term]; dup {
			continue
		}
		vocabSet[term] = struct{}{}
		normalized = append(normalized, term)
	}
	sort.Strings(normalized)

	return &VocabExtractor{
		llm:        llm,
		l:          l,
		vocabulary: normalized,
		vocabSet:   vocabSet,
		prompt:     fmt.Sprintf(PromptExtractSystem, strings.Join(normalized, ", ")),
	}
}
