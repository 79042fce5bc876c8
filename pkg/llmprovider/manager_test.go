package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
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

// fakeProvider is a scriptable Provider for manager tests
type fakeProvider struct {
	name  string
	calls int
	fn    func(call int) (*Response, error)
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	f.calls++
	return f.fn(f.calls)
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	okResp := &Response{Text: "ok", Usage: &Usage{TotalTokens: 3}}

	t.Run("No Providers", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		p := &fakeProvider{name: "a", fn: func(int) (*Response, error) { return okResp, nil }}
		m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ok" {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("Retry Then Succeed", func(t *testing.T) {
		p := &fakeProvider{name: "a", fn: func(call int) (*Response, error) {
			if call < 3 {
				return nil, errors.New("transient")
			}
			return okResp, nil
		}}
		m := NewManager([]Provider{p}, &Config{
			RetryAttempts: 3,
			RetryDelay:    time.Millisecond,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.calls != 3 {
			t.Errorf("expected 3 attempts, got %d", p.calls)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		failing := &fakeProvider{name: "primary", fn: func(int) (*Response, error) {
			return nil, errors.New("down")
		}}
		backup := &fakeProvider{name: "backup", fn: func(int) (*Response, error) { return okResp, nil }}

		m := NewManager([]Provider{failing, backup}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ok" {
			t.Errorf("expected backup response, got %+v", resp)
		}
		if backup.calls != 1 {
			t.Errorf("backup not called")
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		failing := &fakeProvider{name: "primary", fn: func(int) (*Response, error) {
			return nil, errors.New("down")
		}}
		backup := &fakeProvider{name: "backup", fn: func(int) (*Response, error) { return okResp, nil }}

		m := NewManager([]Provider{failing, backup}, &Config{
			FallbackEnabled: false,
			RetryAttempts:   1,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if backup.calls != 0 {
			t.Errorf("backup should not be called when fallback is disabled")
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		a := &fakeProvider{name: "a", fn: func(int) (*Response, error) { return nil, errors.New("a down") }}
		b := &fakeProvider{name: "b", fn: func(int) (*Response, error) { return nil, errors.New("b down") }}

		m := NewManager([]Provider{a, b}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("Global Timeout", func(t *testing.T) {
		slow := &fakeProvider{name: "slow", fn: func(int) (*Response, error) {
			time.Sleep(50 * time.Millisecond)
			return nil, errors.New("slow failure")
		}}
		backup := &fakeProvider{name: "backup", fn: func(int) (*Response, error) { return okResp, nil }}

		m := NewManager([]Provider{slow, backup}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
			MaxTotalTimeout: 10 * time.Millisecond,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), &Request{})
		if err == nil {
			t.Errorf("expected timeout error")
		}
	})
}
