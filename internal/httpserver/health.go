package httpserver

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "research-chatbot"
)

// root serves the service banner.
// @Summary Service banner
// @Description Entry point with pointers to docs and health.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service banner"
// @Router / [get]
func (srv *HTTPServer) root(c *gin.Context) {
	response.JSON(c, gin.H{
		"message": "Chatbot API running",
		"docs":    "/swagger/index.html",
		"health":  "/health",
	})
}

// healthCheck reports service health including chatbot readiness. The body
// shape is part of the public contract, so no envelope.
// @Summary Health Check
// @Description Check if the API is healthy and the chatbot has a model provider
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Health state"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	status := "healthy"
	if !srv.chatbotReady {
		status = "unhealthy"
	}

	response.JSON(c, gin.H{
		"status":        status,
		"chatbot_ready": srv.chatbotReady,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
