package configs

// Kafka configures the order event publisher. No brokers disables it.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"promotion-orders"`
}

// Enabled reports whether any broker is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
