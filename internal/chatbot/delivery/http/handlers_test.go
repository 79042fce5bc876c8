package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"research-chatbot/internal/chatbot"
	"research-chatbot/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeUseCase scripts HandleMessage
type fakeUseCase struct {
	out       chatbot.ChatOutput
	err       error
	lastInput chatbot.ChatInput
	lastScope model.Scope
}

func (f *fakeUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chatbot.ChatInput) (chatbot.ChatOutput, error) {
	f.lastScope = sc
	f.lastInput = input
	return f.out, f.err
}

func setupRouter(uc chatbot.UseCase, ready bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc, ready)
	r := gin.New()
	r.POST("/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	t.Run("Success With Keywords", func(t *testing.T) {
		uc := &fakeUseCase{out: chatbot.ChatOutput{
			Action:   chatbot.ActionSearchArticles,
			Message:  "found",
			Keywords: []string{"dna", "metabolism"},
			Data: chatbot.ArticleSearchData{
				Keywords: []string{"dna", "metabolism"},
				Articles: nil,
			},
		}}
		r := setupRouter(uc, true)

		w := postChat(t, r, `{"user_input": "artículos sobre adn", "user_id": "u42"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if resp["action"] != "search_articles" {
			t.Errorf("expected action search_articles, got %v", resp["action"])
		}
		if _, ok := resp["keywords"]; !ok {
			t.Errorf("search response must include keywords")
		}
		if uc.lastInput.UserID != "u42" {
			t.Errorf("user_id not forwarded, got %q", uc.lastInput.UserID)
		}
	})

	t.Run("Null Fields Omitted", func(t *testing.T) {
		uc := &fakeUseCase{out: chatbot.ChatOutput{
			Action:  chatbot.ActionExplain,
			Message: "CRISPR es...",
		}}
		r := setupRouter(uc, true)

		w := postChat(t, r, `{"user_input": "explícame CRISPR"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if _, ok := resp["keywords"]; ok {
			t.Errorf("keywords must be omitted for explain")
		}
		if _, ok := resp["data"]; ok {
			t.Errorf("data must be omitted when empty")
		}
	})

	t.Run("Defaults User ID", func(t *testing.T) {
		uc := &fakeUseCase{out: chatbot.ChatOutput{Action: chatbot.ActionChat, Message: "hola"}}
		r := setupRouter(uc, true)

		if w := postChat(t, r, `{"user_input": "hola"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.UserID != "default" {
			t.Errorf("expected default user_id, got %q", uc.lastInput.UserID)
		}
	})

	t.Run("Empty Input Is 400", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := setupRouter(uc, true)

		if w := postChat(t, r, `{"user_input": "   "}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed Body Is 400", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := setupRouter(uc, true)

		if w := postChat(t, r, `{"user_input": 42`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Not Ready Is 503", func(t *testing.T) {
		r := setupRouter(nil, false)

		if w := postChat(t, r, `{"user_input": "hola"}`); w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Upstream Failure Is 500", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("all providers failed")}
		r := setupRouter(uc, true)

		if w := postChat(t, r, `{"user_input": "hola"}`); w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})

	t.Run("Domain Empty Input Error Maps To 400", func(t *testing.T) {
		// The delivery validator catches whitespace first; this covers the
		// usecase-originated path.
		uc := &fakeUseCase{err: chatbot.ErrEmptyInput}
		r := setupRouter(uc, true)

		if w := postChat(t, r, `{"user_input": "x"}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
