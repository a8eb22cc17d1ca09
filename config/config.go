package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Orchestrator specifics
	Classifier   ClassifierConfig
	Orchestrator OrchestratorConfig
	Provider     ProviderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// ClassifierConfig selects the keyword rule set. Non-empty keyword lists
// replace the built-in list of the same name.
type ClassifierConfig struct {
	Language string
	Keywords KeywordsConfig
}

type KeywordsConfig struct {
	QuestionLeads []string
	DataMarkers   []string
	ExternalData  []string
	Image         []string
	Document      []string
	Text          []string
}

type OrchestratorConfig struct {
	DefaultEndpoint string
	HandlerTimeout  time.Duration // 0 disables the per-handler timeout
}

// ProviderConfig holds configuration for the provider managers.
type ProviderConfig struct {
	MockDelay       time.Duration
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration

	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	Backends []BackendConfig
}

// BackendConfig holds configuration for a single provider backend.
type BackendConfig struct {
	Name     string
	Kind     string
	Enabled  bool
	Priority int
}

// Load loads configuration using Viper.
// An optional .env file is read first. Config file name: config.yaml, searched
// in ./config, ., /etc/app/.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// CORS: CORS_ORIGINS env var takes a comma separated list
	cfg.CORS.AllowedOrigins = getList(v, "cors.allowed_origins")
	if origins := v.GetString("cors_origins"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Classifier
	cfg.Classifier.Language = v.GetString("classifier.language")
	cfg.Classifier.Keywords = KeywordsConfig{
		QuestionLeads: v.GetStringSlice("classifier.keywords.question_leads"),
		DataMarkers:   v.GetStringSlice("classifier.keywords.data_markers"),
		ExternalData:  v.GetStringSlice("classifier.keywords.external_data"),
		Image:         v.GetStringSlice("classifier.keywords.image"),
		Document:      v.GetStringSlice("classifier.keywords.document"),
		Text:          v.GetStringSlice("classifier.keywords.text"),
	}

	// Orchestrator
	cfg.Orchestrator.DefaultEndpoint = v.GetString("orchestrator.default_endpoint")
	cfg.Orchestrator.HandlerTimeout = v.GetDuration("orchestrator.handler_timeout")

	// Providers
	cfg.Provider.MockDelay = v.GetDuration("provider.mock_delay")
	cfg.Provider.FallbackEnabled = v.GetBool("provider.fallback_enabled")
	cfg.Provider.RetryAttempts = v.GetInt("provider.retry_attempts")
	cfg.Provider.RetryDelay = v.GetDuration("provider.retry_delay")
	cfg.Provider.MaxTotalTimeout = v.GetDuration("provider.max_total_timeout")
	cfg.Provider.BreakerEnabled = v.GetBool("provider.breaker_enabled")
	cfg.Provider.BreakerFailures = v.GetUint32("provider.breaker_failures")
	cfg.Provider.BreakerTimeout = v.GetDuration("provider.breaker_timeout")

	if v.IsSet("provider.backends") {
		if list, ok := v.Get("provider.backends").([]interface{}); ok {
			for _, item := range list {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.Provider.Backends = append(cfg.Provider.Backends, BackendConfig{
					Name:     getStringFromMap(m, "name"),
					Kind:     getStringFromMap(m, "kind"),
					Enabled:  getBoolFromMap(m, "enabled"),
					Priority: getIntFromMap(m, "priority"),
				})
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for invalid values.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be in 1..65535, got %d", c.HTTPServer.Port)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	if !strings.HasPrefix(c.Orchestrator.DefaultEndpoint, "/") {
		return fmt.Errorf("orchestrator.default_endpoint must start with '/', got %q", c.Orchestrator.DefaultEndpoint)
	}
	if c.Orchestrator.HandlerTimeout < 0 {
		return fmt.Errorf("orchestrator.handler_timeout must not be negative")
	}
	if c.Provider.RetryAttempts < 1 {
		return fmt.Errorf("provider.retry_attempts must be at least 1")
	}
	return validateBackends(c.Provider.Backends)
}

func validateBackends(backends []BackendConfig) error {
	type slot struct {
		kind     string
		priority int
	}
	seen := make(map[slot]bool)

	for i, b := range backends {
		if b.Name == "" {
			return fmt.Errorf("provider backend %d: name is required", i)
		}
		switch b.Kind {
		case "text", "document", "image", "data":
		default:
			return fmt.Errorf("provider backend %s: unknown kind %q", b.Name, b.Kind)
		}
		if !b.Enabled {
			continue
		}
		if b.Priority <= 0 {
			return fmt.Errorf("provider backend %s: priority must be positive", b.Name)
		}
		s := slot{b.Kind, b.Priority}
		if seen[s] {
			return fmt.Errorf("provider backend %s: duplicate priority %d for kind %s", b.Name, b.Priority, b.Kind)
		}
		seen[s] = true
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8001)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("classifier.language", "pt")
	v.SetDefault("orchestrator.default_endpoint", "/default")
	v.SetDefault("orchestrator.handler_timeout", "0s")

	// Provider defaults
	v.SetDefault("provider.mock_delay", "500ms")
	v.SetDefault("provider.fallback_enabled", true)
	v.SetDefault("provider.retry_attempts", 1)
	v.SetDefault("provider.retry_delay", "1s")
	v.SetDefault("provider.max_total_timeout", "0s")
	v.SetDefault("provider.breaker_enabled", false)
	v.SetDefault("provider.breaker_failures", 5)
	v.SetDefault("provider.breaker_timeout", "30s")
}

// getList reads key either as a YAML list or as a comma separated string.
func getList(v *viper.Viper, key string) []string {
	if _, ok := v.Get(key).([]interface{}); ok {
		return v.GetStringSlice(key)
	}
	return splitList(v.GetString(key))
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
