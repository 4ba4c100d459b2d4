package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places kept for currency amounts.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to MoneyPlaces, halves away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Percent returns base × rate / 100, unrounded.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// ItemCost is the priced form of one requested order line.
type ItemCost struct {
	PromotionTypeID   int64           `json:"promotion_type_id"`
	PromotionOptionID int64           `json:"promotion_option_id"`
	TypeName          string          `json:"type_name"`
	OptionName        string          `json:"option_name"`
	CostModel         CostModel       `json:"cost_model"`
	Quantity          int             `json:"quantity"`
	DurationDays      int             `json:"duration_days"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
}

// CostBreakdown is the full price of a set of order lines.
type CostBreakdown struct {
	Items          []ItemCost      `json:"items"`
	Currency       string          `json:"currency"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// Taxable is the subtotal after discount.
func (b CostBreakdown) Taxable() decimal.Decimal {
	return b.Subtotal.Sub(b.DiscountAmount)
}

// Recompute derives tax and total from subtotal, discount and tax rate.
// Tax and total are never stored independently of these inputs.
func (b *CostBreakdown) Recompute() {
	taxable := b.Taxable()
	b.TaxAmount = RoundMoney(Percent(taxable, b.TaxRate))
	b.Total = RoundMoney(taxable.Add(b.TaxAmount))
}

// DiscountKind says how a discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// DiscountCode is a redeemable promotion-order discount.
type DiscountCode struct {
	Code     string
	Kind     DiscountKind
	Value    decimal.Decimal
	IsActive bool
}

// AmountFor returns the discount granted on subtotal. Fixed discounts never
// exceed the subtotal.
func (d DiscountCode) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	switch d.Kind {
	case DiscountPercentage:
		return RoundMoney(Percent(subtotal, d.Value))
	case DiscountFixed:
		return RoundMoney(decimal.Min(d.Value, subtotal))
	default:
		return decimal.Zero
	}
}
