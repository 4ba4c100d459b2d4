package configs

import "time"

// Redis configures the promotion catalog cache. An empty Addr disables it.
type Redis struct {
	Addr       string        `env:"ADDRESS"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB" envDefault:"0"`
	CatalogTTL time.Duration `env:"CATALOG_TTL" envDefault:"5m"`
}
