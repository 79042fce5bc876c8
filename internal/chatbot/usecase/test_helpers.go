package usecase

import (
	"context"

	"research-chatbot/internal/library"
	"research-chatbot/internal/router"
	"research-chatbot/pkg/llmprovider"
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

// fakeRouter scripts the classification result
type fakeRouter struct {
	out   router.RouterOutput
	err   error
	calls int
}

func (f *fakeRouter) Classify(ctx context.Context, message string) (router.RouterOutput, error) {
	f.calls++
	return f.out, f.err
}

// fakeExtractor scripts the extracted keywords
type fakeExtractor struct {
	keywords []string
	err      error
	calls    int
}

func (f *fakeExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	f.calls++
	return f.keywords, f.err
}

// fakeLibrary scripts the recommendation results
type fakeLibrary struct {
	articles []library.Article
	clusters []library.ClusterMatch
}

func (f *fakeLibrary) ArticlesByKeywords(keywords []string, limit int) []library.Article {
	return f.articles
}

func (f *fakeLibrary) ClustersByKeywords(keywords []string, limit int) []library.ClusterMatch {
	return f.clusters
}

func (f *fakeLibrary) Vocabulary() []string { return nil }

// fakeLLM scripts the provider manager response
type fakeLLM struct {
	text    string
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text}, nil
}
