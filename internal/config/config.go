package config

import (
	"github.com/caarlos0/env/v11"

	"adsdesk/internal/config/configs"
)

// Config aggregates all configuration sections of the service. Fields are
// populated from environment variables by caarlos0/env; nested structs are
// parsed with their envPrefix.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used for notifications
	// (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Upstream configures the ads platform client (UPSTREAM_*).
	Upstream configs.Upstream `envPrefix:"UPSTREAM_"`

	// Cache bounds the read-model cache (CACHE_*).
	Cache configs.Cache `envPrefix:"CACHE_"`

	// Wizard configures the creation wizard (WIZARD_*).
	Wizard configs.Wizard `envPrefix:"WIZARD_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
