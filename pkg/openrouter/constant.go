package openrouter

import "time"

const (
	// DefaultBaseURL is the default OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default model to use
	DefaultModel = "google/gemini-2.5-flash-lite-preview-09-2025"

	// DefaultTimeout is the default HTTP client timeout. Hosting platforms
	// commonly cap request execution around 10s, so the upstream call must
	// finish well before that.
	DefaultTimeout = 60 * time.Second

	// KeyFetchTimeout bounds the remote API-key fetch at startup.
	KeyFetchTimeout = 5 * time.Second
)
