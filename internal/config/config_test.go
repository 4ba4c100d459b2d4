package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "19", cfg.Pricing.TaxRate.String())
	assert.Equal(t, "15", cfg.Pricing.DefaultFeePercent.String())
	assert.Equal(t, "RON", cfg.Pricing.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Orders.DraftTTL)
	assert.Equal(t, 2*time.Hour, cfg.Orders.PaymentTTL)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRICING_TAX_RATE", "9.5")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ORDERS_PAYMENT_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9.5", cfg.Pricing.TaxRate.String())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 30*time.Minute, cfg.Orders.PaymentTTL)
}

func TestLoadRejectsBadNodeID(t *testing.T) {
	t.Setenv("ORDERS_NODE_ID", "4096")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORDERS_NODE_ID")
}
