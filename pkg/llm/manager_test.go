package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickentry/pkg/log"
)

type stubProvider struct {
	name     string
	calls    int
	failures int // fail this many calls before succeeding
	err      error
}

func (p *stubProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, p.err
	}
	return &Response{Text: "ok from " + p.name, ProviderName: p.name, ModelName: "stub"}, nil
}

func (p *stubProvider) Name() string  { return p.name }
func (p *stubProvider) Model() string { return "stub" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

var _ log.Logger = nopLogger{}

func newTestManager(cfg *Config, providers ...Provider) *Manager {
	if cfg == nil {
		cfg = &Config{
			FallbackEnabled:   true,
			RetryAttempts:     1,
			RetryDelay:        time.Millisecond,
			RequestsPerSecond: 1000,
			Burst:             100,
		}
	}
	return NewManager(providers, cfg, nopLogger{})
}

func TestManagerNoProviders(t *testing.T) {
	m := newTestManager(nil)
	if _, err := m.Complete(context.Background(), &Request{Prompt: "hi"}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
	}
}

func TestManagerFallsBackToSecondProvider(t *testing.T) {
	first := &stubProvider{name: "first", failures: 10, err: errors.New("boom")}
	second := &stubProvider{name: "second"}

	m := newTestManager(nil, first, second)
	resp, err := m.Complete(context.Background(), &Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.ProviderName != "second" {
		t.Errorf("provider = %s, want second", resp.ProviderName)
	}
	if first.calls != 1 {
		t.Errorf("first.calls = %d, want 1", first.calls)
	}
}

func TestManagerRetriesBeforeFallback(t *testing.T) {
	flaky := &stubProvider{name: "flaky", failures: 2, err: errors.New("transient")}

	cfg := &Config{
		FallbackEnabled:   true,
		RetryAttempts:     3,
		RetryDelay:        time.Millisecond,
		RequestsPerSecond: 1000,
		Burst:             100,
	}
	m := newTestManager(cfg, flaky)
	resp, err := m.Complete(context.Background(), &Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.ProviderName != "flaky" || flaky.calls != 3 {
		t.Errorf("provider = %s calls = %d, want flaky after 3 calls", resp.ProviderName, flaky.calls)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	first := &stubProvider{name: "first", failures: 10, err: errors.New("boom")}
	second := &stubProvider{name: "second"}

	cfg := &Config{
		FallbackEnabled:   false,
		RetryAttempts:     1,
		RequestsPerSecond: 1000,
		Burst:             100,
	}
	m := newTestManager(cfg, first, second)
	if _, err := m.Complete(context.Background(), &Request{Prompt: "hi"}); !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("err = %v, want ErrAllProvidersFailed", err)
	}
	if second.calls != 0 {
		t.Errorf("second provider must not be called when fallback is disabled")
	}
}

func TestManagerAllProvidersFail(t *testing.T) {
	first := &stubProvider{name: "first", failures: 10, err: errors.New("a")}
	second := &stubProvider{name: "second", failures: 10, err: errors.New("b")}

	m := newTestManager(nil, first, second)
	_, err := m.Complete(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("err = %v, want ErrAllProvidersFailed", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "second" {
		t.Errorf("expected last ProviderError from second, got %v", err)
	}
}
