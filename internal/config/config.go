package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"promo-orders/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP        `envPrefix:"HTTP_"`
	Log     configs.Logger      `envPrefix:"LOG_"`
	Psql    configs.Postgres    `envPrefix:"PSQL_"`
	Pricing configs.Pricing     `envPrefix:"PRICING_"`
	Orders  configs.Orders      `envPrefix:"ORDERS_"`
	Kafka   configs.Kafka       `envPrefix:"KAFKA_"`
	Redis   configs.Redis       `envPrefix:"REDIS_"`
	Ads     configs.AdPlatforms `envPrefix:"ADS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Pricing.TaxRate.IsNegative() {
		return fmt.Errorf("PRICING_TAX_RATE must not be negative")
	}
	if c.Orders.PaymentTTL <= 0 || c.Orders.DraftTTL <= 0 {
		return fmt.Errorf("ORDERS_DRAFT_TTL and ORDERS_PAYMENT_TTL must be positive")
	}
	if c.Orders.NodeID < 0 || c.Orders.NodeID > 1023 {
		return fmt.Errorf("ORDERS_NODE_ID must be in [0, 1023], got %d", c.Orders.NodeID)
	}
	return nil
}
