package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"research-chatbot/config"
	chatbotUC "research-chatbot/internal/chatbot/usecase"
	"research-chatbot/internal/library"
	"research-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appConfig   *config.Config

	// Chatbot domain
	llm          chatbotUC.LLM // nil when no provider could be initialized
	libraryRepo  library.Repository
	chatbotReady bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Chatbot domain
	LLM          chatbotUC.LLM
	Library      library.Repository
	ChatbotReady bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		appConfig:    cfg.AppConfig,
		llm:          cfg.LLM,
		libraryRepo:  cfg.Library,
		chatbotReady: cfg.ChatbotReady,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.libraryRepo == nil {
		return errors.New("library repository is required")
	}
	if srv.chatbotReady && srv.llm == nil {
		return errors.New("llm is required when chatbot is ready")
	}
	return nil
}
