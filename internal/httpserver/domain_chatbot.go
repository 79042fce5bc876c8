package httpserver

import (
	"context"

	chatbotHTTP "research-chatbot/internal/chatbot/delivery/http"
	chatbotUC "research-chatbot/internal/chatbot/usecase"
	"research-chatbot/internal/keyword"
	"research-chatbot/internal/middleware"
	"research-chatbot/internal/router"
)

// setupChatbotDomain initializes the chatbot domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create collaborators: rt := router.New(srv.llm, srv.l)
//  2. Create UseCase:       uc := chatbotUC.New(srv.l, srv.llm, rt, ...)
//  3. Create HTTP Handler:  h := chatbotHTTP.New(srv.l, uc, ready)
//  4. Register Routes:      chatbotHTTP.RegisterRoutes(group, h, mw)
func (srv *HTTPServer) setupChatbotDomain(ctx context.Context, mw middleware.Middleware) error {
	// Degraded mode: no model provider. The route still answers, with 503.
	if !srv.chatbotReady {
		h := chatbotHTTP.New(srv.l, nil, false)
		chatbotHTTP.RegisterRoutes(srv.gin.Group(""), h, mw)
		srv.l.Warnf(ctx, "Chatbot domain registered in degraded mode (no model provider)")
		return nil
	}

	rt := router.New(srv.llm, srv.l)
	extractor := keyword.New(srv.llm, srv.libraryRepo.Vocabulary(), srv.l)
	uc := chatbotUC.New(srv.l, srv.llm, rt, extractor, srv.libraryRepo)

	h := chatbotHTTP.New(srv.l, uc, true)
	chatbotHTTP.RegisterRoutes(srv.gin.Group(""), h, mw)

	srv.l.Infof(ctx, "Chatbot domain registered")
	return nil
}
