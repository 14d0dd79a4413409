package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// core fitforge REST API (auth, generation, history, programs)
	CoreAPIBaseURL        string `toml:"core_api_base_url"`
	CoreAPITimeoutSeconds int    `toml:"core_api_timeout_seconds"`

	// redis - login sessions and rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics listener
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// wizard state is ephemeral, swept after this many minutes of inactivity
	WizardStateTTLMinutes int `toml:"wizard_state_ttl_minutes"`
	// program catalog / presets read cache
	CatalogCacheTTLMinutes int `toml:"catalog_cache_ttl_minutes"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}

	cfg.Environment = env
	if cfg.CoreAPIBaseURL == "" {
		return nil, fmt.Errorf("core_api_base_url not set for env %s", env)
	}
	if cfg.CoreAPITimeoutSeconds <= 0 {
		cfg.CoreAPITimeoutSeconds = 30
	}
	if cfg.LoginRateLimitAllowedPerMin <= 0 {
		cfg.LoginRateLimitAllowedPerMin = 15
	}
	if cfg.WizardStateTTLMinutes <= 0 {
		cfg.WizardStateTTLMinutes = 120
	}
	if cfg.CatalogCacheTTLMinutes <= 0 {
		cfg.CatalogCacheTTLMinutes = 15
	}

	return cfg, nil
}
