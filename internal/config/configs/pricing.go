package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing configures how promotion orders are priced. TaxRate and
// DefaultFeePercent are percentages.
type Pricing struct {
	TaxRate           decimal.Decimal `env:"TAX_RATE" envDefault:"19"`
	Currency          string          `env:"CURRENCY" envDefault:"RON"`
	DefaultFeePercent decimal.Decimal `env:"DEFAULT_FEE_PERCENT" envDefault:"15"`
}

// Orders configures the order lifecycle.
type Orders struct {
	// DraftTTL is how long a freshly created order stays open.
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
	// PaymentTTL is the payment window after checkout starts. It is shorter
	// than DraftTTL.
	PaymentTTL time.Duration `env:"PAYMENT_TTL" envDefault:"2h"`
	// ExpirySweepInterval is how often unpaid expired orders are cancelled.
	// Zero disables the sweep.
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL" envDefault:"5m"`
	// NodeID identifies this instance in generated order numbers. Each
	// replica needs a distinct value in [0, 1023].
	NodeID int64 `env:"NODE_ID" envDefault:"1"`
}
