package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"research-chatbot/internal/chatbot"
	"research-chatbot/pkg/response"
)

// User-facing error messages.
const (
	MsgChatbotNotReady = "Chatbot is not ready: upstream model credential is missing"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chatbot.ErrEmptyInput):
		response.ValidationError(c, err)
	default:
		response.InternalError(c, err)
	}
}
