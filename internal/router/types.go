package router

// Intent represents the user's intention
type Intent string

const (
	IntentSearchArticles  Intent = "SEARCH_ARTICLES"
	IntentRecommendThemes Intent = "RECOMMEND_THEMES"
	IntentExplain         Intent = "EXPLAIN"
	IntentSummarize       Intent = "SUMMARIZE"
	IntentGenerateMetrics Intent = "GENERATE_METRICS"
	IntentConversation    Intent = "CONVERSATION"
)

// valid reports whether the intent is one the router may emit.
func (i Intent) valid() bool {
	switch i {
	case IntentSearchArticles, IntentRecommendThemes, IntentExplain,
		IntentSummarize, IntentGenerateMetrics, IntentConversation:
		return true
	}
	return false
}

// RouterOutput is the structured response from the semantic router
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`  // Optional: why this intent was chosen
}
