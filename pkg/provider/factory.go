package provider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"task-orchestrator/config"
)

// InitializeProviders creates the providers configured for kind, sorted by
// priority (ascending) with disabled backends filtered out. With no backend
// configured for kind a single mock is returned.
func InitializeProviders(cfg *config.ProviderConfig, kind Kind) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("provider config is nil")
	}

	var backends []config.BackendConfig
	for _, b := range cfg.Backends {
		if Kind(b.Kind) == kind && b.Enabled {
			backends = append(backends, b)
		}
	}

	if len(backends) == 0 {
		return []Provider{NewMockProvider(kind, cfg.MockDelay)}, nil
	}

	sort.SliceStable(backends, func(i, j int) bool {
		return backends[i].Priority < backends[j].Priority
	})

	providers := make([]Provider, 0, len(backends))
	var initErrors []string
	for _, b := range backends {
		p, err := createProvider(b, cfg.MockDelay)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", b.Name, b.Priority, err))
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no %s providers successfully initialized: %s", kind, strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerConfig converts the service config into a Manager Config.
func NewManagerConfig(cfg *config.ProviderConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
		BreakerEnabled:  cfg.BreakerEnabled,
		BreakerFailures: cfg.BreakerFailures,
		BreakerTimeout:  cfg.BreakerTimeout,
	}
}

func createProvider(b config.BackendConfig, mockDelay time.Duration) (Provider, error) {
	switch b.Name {
	case MockName:
		return NewMockProvider(Kind(b.Kind), mockDelay), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, b.Name)
	}
}
