package http

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/internal/chatbot"
	"research-chatbot/pkg/log"
)

// Handler is the public interface for the chatbot HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    chatbot.UseCase
	ready bool
}

// New creates a new HTTP handler for the chatbot domain. ready reflects
// whether an upstream model provider was configured at startup; when false
// every chat call answers 503.
func New(l log.Logger, uc chatbot.UseCase, ready bool) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		ready: ready,
	}
}
