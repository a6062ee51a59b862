package configs

// Redis configures the client of the redis settings backend.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every key the planner writes.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"planner"`
}
