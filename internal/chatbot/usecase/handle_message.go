package usecase

import (
	"context"
	"fmt"
	"strings"

	"research-chatbot/internal/chatbot"
	"research-chatbot/internal/model"
	"research-chatbot/internal/router"
	"research-chatbot/pkg/llmprovider"
)

// HandleMessage classifies the message and runs the selected action.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chatbot.ChatInput) (chatbot.ChatOutput, error) {
	text := strings.TrimSpace(input.UserInput)
	if text == "" {
		return chatbot.ChatOutput{}, chatbot.ErrEmptyInput
	}

	routed, err := uc.router.Classify(ctx, text)
	if err != nil {
		return chatbot.ChatOutput{}, fmt.Errorf("classify: %w", err)
	}

	uc.l.Infof(ctx, "HandleMessage: user=%s intent=%s", sc.UserID, routed.Intent)

	switch routed.Intent {
	case router.IntentSearchArticles:
		return uc.searchArticles(ctx, text)
	case router.IntentRecommendThemes:
		return uc.recommendThemes(ctx, text)
	case router.IntentExplain:
		return uc.reply(ctx, chatbot.ActionExplain, PromptExplainSystem, text)
	case router.IntentSummarize:
		return uc.reply(ctx, chatbot.ActionSummarize, PromptSummarizeSystem, text)
	case router.IntentGenerateMetrics:
		// Reserved action: fixed message, no model call.
		return chatbot.ChatOutput{
			Action:  chatbot.ActionGenerateMetrics,
			Message: MessageMetricsNotImplemented,
		}, nil
	default:
		return uc.reply(ctx, chatbot.ActionChat, PromptChatSystem, text)
	}
}

// searchArticles extracts keywords and recommends articles. When no
// vocabulary keyword matches, the response downgrades to a conversational
// rephrase request so search actions always carry keywords.
func (uc *implUseCase) searchArticles(ctx context.Context, text string) (chatbot.ChatOutput, error) {
	keywords, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		return chatbot.ChatOutput{}, fmt.Errorf("extract keywords: %w", err)
	}
	if len(keywords) == 0 {
		return chatbot.ChatOutput{
			Action:  chatbot.ActionChat,
			Message: MessageRephrase,
		}, nil
	}

	articles := uc.library.ArticlesByKeywords(keywords, MaxArticles)

	message := MessageArticlesFound
	if len(articles) == 0 {
		message = MessageNoArticles
	}

	return chatbot.ChatOutput{
		Action:   chatbot.ActionSearchArticles,
		Message:  message,
		Keywords: keywords,
		Data: chatbot.ArticleSearchData{
			Keywords: keywords,
			Articles: articles,
		},
	}, nil
}

// recommendThemes extracts keywords and recommends research clusters.
func (uc *implUseCase) recommendThemes(ctx context.Context, text string) (chatbot.ChatOutput, error) {
	keywords, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		return chatbot.ChatOutput{}, fmt.Errorf("extract keywords: %w", err)
	}
	if len(keywords) == 0 {
		return chatbot.ChatOutput{
			Action:  chatbot.ActionChat,
			Message: MessageRephrase,
		}, nil
	}

	clusters := uc.library.ClustersByKeywords(keywords, MaxClusters)

	message := MessageThemesFound
	if len(clusters) == 0 {
		message = MessageNoThemes
	}

	return chatbot.ChatOutput{
		Action:   chatbot.ActionRecommendThemes,
		Message:  message,
		Keywords: keywords,
		Data: chatbot.ThemeRecommendationData{
			InputKeywords:       keywords,
			RecommendedClusters: clusters,
		},
	}, nil
}

// reply runs a single model call with the per-action system prompt.
func (uc *implUseCase) reply(ctx context.Context, action chatbot.Action, systemPrompt, text string) (chatbot.ChatOutput, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: text},
		},
		Temperature: ReplyTemperature,
		MaxTokens:   ReplyMaxTokens,
	})
	if err != nil {
		return chatbot.ChatOutput{}, fmt.Errorf("%s reply: %w", action, err)
	}

	message := strings.TrimSpace(resp.Text)
	if message == "" {
		return chatbot.ChatOutput{}, fmt.Errorf("%s reply: %w", action, chatbot.ErrEmptyReply)
	}

	return chatbot.ChatOutput{
		Action:  action,
		Message: message,
	}, nil
}
