package chatbot

import "research-chatbot/internal/library"

// Action is the behavior the chatbot selected for a message. Values are part
// of the public wire contract.
type Action string

const (
	ActionSearchArticles  Action = "search_articles"
	ActionRecommendThemes Action = "recommend_themes"
	ActionExplain         Action = "explain"
	ActionSummarize       Action = "summarize"
	ActionGenerateMetrics Action = "generate_metrics"
	ActionChat            Action = "chat"
)

// ChatInput is the parsed user message.
type ChatInput struct {
	UserInput string
	UserID    string
}

// ChatOutput is the typed result of handling one message.
// Keywords is non-nil only for search_articles and recommend_themes.
type ChatOutput struct {
	Action   Action
	Message  string
	Keywords []string
	Data     any
}

// ArticleSearchData is the payload for search_articles.
type ArticleSearchData struct {
	Keywords []string          `json:"keywords"`
	Articles []library.Article `json:"articles"`
}

// ThemeRecommendationData is the payload for recommend_themes.
type ThemeRecommendationData struct {
	InputKeywords       []string               `json:"input_keywords"`
	RecommendedClusters []library.ClusterMatch `json:"recommended_clusters"`
}
