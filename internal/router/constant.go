package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are a semantic router for a scientific research chatbot. Analyze the following message and determine the user's intent.

Current message: "%s"

Possible intents:
1. SEARCH_ARTICLES: wants scientific articles or papers about a topic (e.g. "I need articles about CRISPR", "necesito artículos sobre IA en medicina")
2. RECOMMEND_THEMES: wants related topics or research themes (e.g. "topics related to blockchain", "temas relacionados con machine learning")
3. EXPLAIN: asks for an explanation of a concept, technical term, or acronym (e.g. "explain what reinforcement learning is")
4. SUMMARIZE: asks for a summary or key findings of a text or article
5. GENERATE_METRICS: asks for metrics, statistics, or visualizations
6. CONVERSATION: greetings, questions about the bot's features, or general chat

Messages may be written in Spanish, English, or any other language.

Respond with JSON in this format:
{
  "intent": "SEARCH_ARTICLES|RECOMMEND_THEMES|EXPLAIN|SUMMARIZE|GENERATE_METRICS|CONVERSATION",
  "confidence": 0-100,
  "reasoning": "Brief explanation"
}`
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackIntent     = IntentConversation
	RouterFallbackConfidence = 50

	// ClassifyCacheSize bounds the LRU of classification results.
	ClassifyCacheSize = 512
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to CONVERSATION"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to CONVERSATION"
	ErrMsgUnknownIntent   = "Unknown intent value, falling back to CONVERSATION"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to parsing error - route to conversational reply"
	ReasonEmptyResponse = "Fallback due to empty response"
	ReasonUnknownIntent = "Fallback due to unknown intent value"
)
