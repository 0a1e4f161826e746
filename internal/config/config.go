package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Prefs     PrefsConfig     `yaml:"prefs"`
	Log       LogConfig       `yaml:"log"`
	Locales   LocalesConfig   `yaml:"locales"`
	Transport TransportConfig `yaml:"transport"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"TERMSTATE_API_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"TERMSTATE_API_TIMEOUT"`
	// ProviderRedirectURL is where identity providers return after sign in.
	ProviderRedirectURL string `yaml:"provider_redirect_url" env:"TERMSTATE_API_PROVIDER_REDIRECT_URL"`
}

type PrefsConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string `yaml:"driver" env:"TERMSTATE_PREFS_DRIVER"`
	Path   string `yaml:"path" env:"TERMSTATE_PREFS_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"TERMSTATE_LOG_LEVEL"`
	// Path enables a rotating log file instead of stderr.
	Path string `yaml:"path" env:"TERMSTATE_LOG_PATH"`
}

type LocalesConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"TERMSTATE_LOCALES_CACHE_TTL"`
}

type TransportConfig struct {
	// Mode is "stdio" or "http".
	Mode string `yaml:"mode" env:"TERMSTATE_TRANSPORT_MODE"`
	Host string `yaml:"host" env:"TERMSTATE_TRANSPORT_HOST"`
	Port int    `yaml:"port" env:"TERMSTATE_TRANSPORT_PORT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
		},
		Prefs: PrefsConfig{
			Driver: "sqlite",
			Path:   "termstate.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Locales: LocalesConfig{
			CacheTTL: time.Hour,
		},
		Transport: TransportConfig{
			Mode: "stdio",
			Host: "127.0.0.1",
			Port: 8080,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("TERMSTATE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot start with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	switch c.Prefs.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown prefs.driver %q", c.Prefs.Driver)
	}
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("unknown transport.mode %q", c.Transport.Mode)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
