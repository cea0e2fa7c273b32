package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"quickentry/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	limiter   *rate.Limiter
	logger    log.Logger
}

// Config defines configuration for the provider Manager
type Config struct {
	FallbackEnabled   bool
	RetryAttempts     int
	RetryDelay        time.Duration
	MaxTotalTimeout   time.Duration // global timeout for the entire fallback chain
	RequestsPerSecond float64       // client-side limit shared by all providers
	Burst             int
}

// NewManager creates a new provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		logger:    logger,
	}
}

// Complete iterates through providers in priority order with fallback logic
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.completeWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry implements retry with linear backoff. Each attempt waits
// on the shared limiter before hitting the provider.
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := m.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := provider.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	if resp.Usage != nil {
		m.logger.Infof(ctx, "LLM completion successful provider=%s model=%s input_tokens=%d output_tokens=%d",
			provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return
	}
	m.logger.Infof(ctx, "LLM completion successful provider=%s model=%s", provider.Name(), provider.Model())
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM completion failed provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
