package middleware

import (
	"golang.org/x/time/rate"

	"research-chatbot/config"
	"research-chatbot/pkg/log"
)

// Context keys set by middlewares.
const (
	ContextKeyRequestID = "request_id"
)

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rate.Limiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled {
		perSecond := rate.Limit(float64(cfg.RateLimit.RequestsPerMin) / 60.0)
		limiter = rate.NewLimiter(perSecond, cfg.RateLimit.Burst)
	}

	return Middleware{
		l:       l,
		apiKey:  cfg.Auth.APIKey,
		limiter: limiter,
	}
}
