package http

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/internal/middleware"
	"research-chatbot/internal/model"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scope builds the request scope from middleware-provided identity.
func (h *handler) scope(c *gin.Context, req chatReq) model.Scope {
	userID := req.UserID
	if userID == "" {
		userID = "default"
	}
	return model.Scope{
		UserID:    userID,
		RequestID: c.GetString(middleware.ContextKeyRequestID),
	}
}
