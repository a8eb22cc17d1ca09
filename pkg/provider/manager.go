package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"task-orchestrator/pkg/log"
)

// Manager orchestrates provider selection, fallback, retry and circuit breaking.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*Response]
}

// Config defines configuration for the Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the whole fallback chain

	BreakerEnabled  bool
	BreakerFailures uint32        // Consecutive failures before the breaker opens
	BreakerTimeout  time.Duration // Open-state duration before a half-open probe
}

// NewManager creates a Manager with providers in priority order.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
		breakers:  make(map[string]*gobreaker.CircuitBreaker[*Response]),
	}
}

// Generate tries providers in priority order with fallback logic.
func (m *Manager) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, p := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.execute(ctx, p, req)
		if err == nil {
			m.logSuccess(ctx, p, req)
			return resp, nil
		}

		m.logFailure(ctx, p, err)
		lastErr = &ProviderError{Provider: p.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// Providers returns the providers managed, in priority order.
func (m *Manager) Providers() []Provider {
	out := make([]Provider, len(m.providers))
	copy(out, m.providers)
	return out
}

func (m *Manager) execute(ctx context.Context, p Provider, req *Request) (*Response, error) {
	if !m.config.BreakerEnabled {
		return m.generateWithRetry(ctx, p, req)
	}
	return m.breaker(p).Execute(func() (*Response, error) {
		resp, err := m.generateWithRetry(ctx, p, req)
		if err != nil && ctx.Err() != nil {
			return nil, &callerDoneError{err: err}
		}
		return resp, err
	})
}

// callerDoneError marks a failure caused by the caller's context ending, which
// says nothing about the provider's health.
type callerDoneError struct {
	err error
}

func (e *callerDoneError) Error() string { return e.err.Error() }
func (e *callerDoneError) Unwrap() error { return e.err }

// generateWithRetry retries with a linearly growing delay.
func (m *Manager) generateWithRetry(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
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

		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

func (m *Manager) breaker(p Provider) *gobreaker.CircuitBreaker[*Response] {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name() + "/" + p.Model()
	if cb, ok := m.breakers[name]; ok {
		return cb
	}

	failures := m.config.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	cb := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:         name,
		MaxRequests:  1,
		Timeout:      m.config.BreakerTimeout,
		IsSuccessful: func(err error) bool {
			var done *callerDoneError
			return err == nil || errors.As(err, &done)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.logger.Warnf(context.Background(), "pkg.provider.Manager: breaker %s changed %s -> %s", name, from, to)
		},
	})
	m.breakers[name] = cb
	return cb
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, req *Request) {
	m.logger.Debugf(ctx, "pkg.provider.Manager: %s generation successful provider=%s model=%s",
		req.Kind, p.Name(), p.Model())
}

func (m *Manager) logFailure(ctx context.Context, p Provider, err error) {
	m.logger.Warnf(ctx, "pkg.provider.Manager: generation failed provider=%s model=%s error=%v",
		p.Name(), p.Model(), err)
}
