package http

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
}
