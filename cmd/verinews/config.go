// cmd/verinews/config.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ProviderConfig describes one entry of the provider chain. Order in the
// YAML file is the priority order the aggregator honors.
type ProviderConfig struct {
	Name          string `yaml:"name"`
	Enabled       bool   `yaml:"enabled"`
	RatePerMinute int    `yaml:"rate_per_minute"`
}

// Config holds application configuration
type Config struct {
	// API keys
	NewsAPIKey     string
	GNewsAPIKey    string
	NewsDataAPIKey string
	GuardianAPIKey string
	GroqAPIKey     string

	// Server
	Port           int
	AllowedOrigins []string

	// Logging
	LogPath  string
	LogLevel LogLevel

	// Provider chain, priority order
	Providers []ProviderConfig
}

// LoadConfig reads .env (if present), environment variables and the
// provider chain YAML file.
func LoadConfig(configPath string) (*Config, error) {
	// Missing .env is fine, real deployments use actual env vars
	_ = godotenv.Load()

	cfg := &Config{
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		GNewsAPIKey:    os.Getenv("GNEWS_API_KEY"),
		NewsDataAPIKey: os.Getenv("NEWSDATA_API_KEY"),
		GuardianAPIKey: GetEnvOrDefault("GUARDIAN_API_KEY", "test"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		Port:           GetEnvIntOrDefault("PORT", DefaultAPIPort),
		LogPath:        GetEnvOrDefault("LOG_PATH", DefaultLogPath),
		LogLevel:       parseLogLevel(GetEnvOrDefault("LOG_LEVEL", "info")),
	}

	origins := GetEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	providers, err := loadProviderChain(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Providers = providers

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadProviderChain reads the provider priority list. A missing file
// falls back to the default chain so the service runs with zero setup.
func loadProviderChain(path string) ([]ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultProviderChain(), nil
		}
		return nil, NewConfigError(ErrConfigLoad, "failed to read provider config", err)
	}

	var file struct {
		Providers []ProviderConfig `yaml:"providers"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewConfigError(ErrConfigLoad, "failed to parse provider config", err)
	}
	if len(file.Providers) == 0 {
		return defaultProviderChain(), nil
	}
	return file.Providers, nil
}

// defaultProviderChain mirrors the priority order provider clients are
// tried in when no YAML override exists.
func defaultProviderChain() []ProviderConfig {
	return []ProviderConfig{
		{Name: "newsapi", Enabled: true, RatePerMinute: 30},
		{Name: "gnews", Enabled: true, RatePerMinute: 30},
		{Name: "newsdata", Enabled: true, RatePerMinute: 30},
		{Name: "guardian", Enabled: true, RatePerMinute: 30},
		{Name: "googlerss", Enabled: true, RatePerMinute: 30},
	}
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return NewConfigError(ErrConfigValidation, fmt.Sprintf("invalid port %d", c.Port), nil)
	}
	seen := make(map[string]bool)
	for _, p := range c.Providers {
		if p.Name == "" {
			return NewConfigError(ErrConfigValidation, "provider with empty name", nil)
		}
		if seen[p.Name] {
			return NewConfigError(ErrConfigValidation, "duplicate provider "+p.Name, nil)
		}
		seen[p.Name] = true
	}
	return nil
}

func parseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarning
	case "error":
		return LogError
	default:
		return LogInfo
	}
}
