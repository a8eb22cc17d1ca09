package provider

import (
	"errors"
	"testing"
	"time"

	"task-orchestrator/config"
)

func TestInitializeProviders_DefaultsToMock(t *testing.T) {
	providers, err := InitializeProviders(&config.ProviderConfig{MockDelay: time.Millisecond}, KindText)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != MockName {
		t.Fatalf("Expected a single mock provider, got %d", len(providers))
	}
}

func TestInitializeProviders_FiltersAndSorts(t *testing.T) {
	cfg := &config.ProviderConfig{
		Backends: []config.BackendConfig{
			{Name: "mock", Kind: "image", Enabled: true, Priority: 2},
			{Name: "mock", Kind: "text", Enabled: true, Priority: 1},
			{Name: "mock", Kind: "image", Enabled: true, Priority: 1},
			{Name: "mock", Kind: "image", Enabled: false, Priority: 3},
		},
	}

	providers, err := InitializeProviders(cfg, KindImage)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 image providers, got %d", len(providers))
	}
	for _, p := range providers {
		if p.Model() != "mock-image" {
			t.Errorf("Expected image mock, got %s", p.Model())
		}
	}
}

func TestInitializeProviders_UnknownBackend(t *testing.T) {
	cfg := &config.ProviderConfig{
		Backends: []config.BackendConfig{
			{Name: "dalle", Kind: "image", Enabled: true, Priority: 1},
		},
	}

	if _, err := InitializeProviders(cfg, KindImage); err == nil {
		t.Fatal("Expected error for unknown backend")
	}
	if _, err := createProvider(cfg.Backends[0], 0); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("Expected ErrUnknownProvider, got %v", err)
	}
	if _, err := InitializeProviders(nil, KindImage); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestNewManagerConfig(t *testing.T) {
	cfg := &config.ProviderConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Second,
		BreakerEnabled:  true,
		BreakerFailures: 3,
	}

	got := NewManagerConfig(cfg)
	if !got.FallbackEnabled || got.RetryAttempts != 2 || got.RetryDelay != time.Second || !got.BreakerEnabled || got.BreakerFailures != 3 {
		t.Errorf("Unexpected manager config: %+v", got)
	}
}
