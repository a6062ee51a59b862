package configs

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Settings backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Catalog sources.
const (
	CatalogYAML     = "yaml"
	CatalogPostgres = "postgres"
)

// Settings selects where the scheduling policy is persisted and where the
// audience and template catalog is read from.
type Settings struct {
	// Backend is one of memory, postgres or redis.
	Backend string `env:"BACKEND" envDefault:"memory"`
	// RefreshSpec is a cron expression for re-reading the stored policy.
	// Empty disables the refresher.
	RefreshSpec string `env:"REFRESH_SPEC" envDefault:"@every 1m"`
	// Catalog is one of yaml or postgres.
	Catalog string `env:"CATALOG" envDefault:"yaml"`
	// CatalogPath points to a YAML catalog file. Empty uses the built-in
	// catalog.
	CatalogPath string `env:"CATALOG_PATH"`
}

// Validate normalises the enumerations and rejects unknown values.
func (s *Settings) Validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	s.Catalog = strings.ToLower(strings.TrimSpace(s.Catalog))
	switch s.Backend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return errors.Newf("unknown settings backend %q", s.Backend)
	}
	switch s.Catalog {
	case CatalogYAML, CatalogPostgres:
	default:
		return errors.Newf("unknown catalog source %q", s.Catalog)
	}
	return nil
}

// NeedsPostgres reports whether any selected component reads PostgreSQL.
func (s Settings) NeedsPostgres() bool {
	return s.Backend == BackendPostgres || s.Catalog == CatalogPostgres
}
