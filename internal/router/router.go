package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"research-chatbot/pkg/llmprovider"
)

// Classify determines user intent from the message.
// Convention: Method accepts context.Context as first parameter
func (r *SemanticRouter) Classify(ctx context.Context, message string) (RouterOutput, error) {
	cacheKey := normalizeMessage(message)
	if r.cache != nil {
		if cached, ok := r.cache.Get(cacheKey); ok {
			r.l.Debugf(ctx, "%s: cache hit for %q", LogPrefixClassify, cacheKey)
			return cached, nil
		}
	}

	prompt := fmt.Sprintf(PromptRouterSystem, message)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: prompt},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		return RouterOutput{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := strings.TrimSpace(resp.Text)
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonEmptyResponse,
		}, nil
	}

	responseText = stripMarkdownFence(responseText)

	var output RouterOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonParsingError,
		}, nil
	}

	if !output.Intent.valid() {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, output.Intent)
		output = RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonUnknownIntent,
		}
	}

	if r.cache != nil {
		r.cache.Add(cacheKey, output)
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output, nil
}

// stripMarkdownFence removes ```json ... ``` wrappers models tend to add.
func stripMarkdownFence(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

func normalizeMessage(message string) string {
	return strings.ToLower(strings.Join(strings.Fields(message), " "))
}
