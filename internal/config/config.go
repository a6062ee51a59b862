package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"campaign-planner/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the Redis connection used by the redis settings
	// backend.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Planner holds the scheduling policy a fresh deployment starts with.
	Planner configs.Planner `envPrefix:"PLANNER_"`

	// Settings selects where the policy and the catalog live.
	Settings configs.Settings `envPrefix:"SETTINGS_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is read first when present; variables that
// are already set take precedence over it. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	// godotenv.Load does not override variables that are already set.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
