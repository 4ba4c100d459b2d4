package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

// PricingConfig holds the tariffs the pricing engine applies. Rates are
// percentages.
type PricingConfig struct {
	TaxRate           decimal.Decimal
	Currency          string
	DefaultFeePercent decimal.Decimal
}

// Pricing computes item and order costs from the catalog's pricing tiers.
type Pricing struct {
	catalog   port.CatalogUseCase
	discounts port.DiscountRepository
	cfg       PricingConfig

	now func() time.Time
}

// NewPricing creates a pricing engine.
func NewPricing(catalog port.CatalogUseCase, discounts port.DiscountRepository, cfg PricingConfig) *Pricing {
	return &Pricing{catalog: catalog, discounts: discounts, cfg: cfg, now: time.Now}
}

// CalculateItemCost prices one line. Quantity defaults to 1 and duration to
// the option's minimum duration.
func (p *Pricing) CalculateItemCost(ctx context.Context, in domain.OrderItemInput) (domain.ItemCost, error) {
	t, err := p.catalog.GetType(ctx, in.PromotionTypeID)
	if err != nil {
		return domain.ItemCost{}, err
	}
	o, err := p.catalog.GetOption(ctx, in.PromotionOptionID)
	if err != nil {
		return domain.ItemCost{}, err
	}
	if o.PromotionTypeID != t.ID {
		return domain.ItemCost{}, fmt.Errorf("option %d is not part of promotion type %d: %w", o.ID, t.ID, domain.ErrOptionTypeMismatch)
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	duration := in.DurationDays
	if duration <= 0 {
		duration = o.DefaultDuration()
	}

	now := p.now()
	var unit, total decimal.Decimal
	switch t.CostModel {
	case domain.CostModelFixed:
		tier, err := domain.EffectiveUnitPrice(o.Pricing, duration, now)
		if err != nil {
			return domain.ItemCost{}, fmt.Errorf("option %q for %d days: %w", o.Code, duration, err)
		}
		unit = tier.UnitPrice
		total = unit.Mul(decimal.NewFromInt(int64(duration)))
	case domain.CostModelPerUnit:
		tier, err := domain.EffectiveUnitPrice(o.Pricing, qty, now)
		if err != nil {
			return domain.ItemCost{}, fmt.Errorf("option %q: %w", o.Code, err)
		}
		unit = tier.UnitPrice
		total = unit.Mul(decimal.NewFromInt(int64(qty)))
	case domain.CostModelSubscription:
		tier, err := domain.EffectiveUnitPrice(o.Pricing, 1, now)
		if err != nil {
			return domain.ItemCost{}, fmt.Errorf("option %q: %w", o.Code, err)
		}
		unit = tier.UnitPrice
		total = unit.Mul(decimal.NewFromInt(int64(qty)))
	case domain.CostModelPercentage:
		unit, total, err = p.percentageCost(o, in.Configuration, now)
		if err != nil {
			return domain.ItemCost{}, err
		}
		qty = 1
	default:
		return domain.ItemCost{}, fmt.Errorf("%w %q on promotion type %q", domain.ErrUnknownCostModel, t.CostModel, t.Slug)
	}

	if t.CostModel != domain.CostModelPercentage {
		total = total.Mul(o.Modifier())
	}

	return domain.ItemCost{
		PromotionTypeID:   t.ID,
		PromotionOptionID: o.ID,
		TypeName:          t.Name,
		OptionName:        o.Name,
		CostModel:         t.CostModel,
		Quantity:          qty,
		DurationDays:      duration,
		UnitPrice:         domain.RoundMoney(unit),
		TotalPrice:        domain.RoundMoney(total),
	}, nil
}

// percentageCost is a setup fee plus a share of the ad budget the organizer
// configured on the line.
func (p *Pricing) percentageCost(o *domain.PromotionOption, cfg map[string]any, now time.Time) (setup, total decimal.Decimal, err error) {
	tier, err := domain.EffectiveUnitPrice(o.Pricing, 1, now)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("option %q setup fee: %w", o.Code, err)
	}
	budget, ok := domain.DecimalValue(cfg["budget"])
	if !ok || !budget.IsPositive() {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidBudget
	}
	fee, ok := o.MetadataDecimal("fee_percent")
	if !ok {
		fee = p.cfg.DefaultFeePercent
	}
	setup = tier.UnitPrice
	return setup, setup.Add(domain.Percent(budget, fee)), nil
}

// CalculateOrderCost prices every line and adds tax on the subtotal.
func (p *Pricing) CalculateOrderCost(ctx context.Context, items []domain.OrderItemInput) (domain.CostBreakdown, error) {
	if len(items) == 0 {
		return domain.CostBreakdown{}, domain.ErrEmptyOrder
	}
	b := domain.CostBreakdown{
		Items:          make([]domain.ItemCost, 0, len(items)),
		Currency:       p.cfg.Currency,
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxRate:        p.cfg.TaxRate,
	}
	for i, in := range items {
		c, err := p.CalculateItemCost(ctx, in)
		if err != nil {
			return domain.CostBreakdown{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		b.Items = append(b.Items, c)
		b.Subtotal = b.Subtotal.Add(c.TotalPrice)
	}
	b.Subtotal = domain.RoundMoney(b.Subtotal)
	b.Recompute()
	return b, nil
}

// ApplyDiscountCode discounts the subtotal and recomputes tax and total.
// Unknown or inactive codes leave the breakdown as it is.
func (p *Pricing) ApplyDiscountCode(ctx context.Context, b domain.CostBreakdown, code string) (domain.CostBreakdown, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return b, nil
	}
	d, err := p.discounts.FindDiscountCode(ctx, code)
	if err != nil {
		return b, err
	}
	if d == nil || !d.IsActive {
		return b, nil
	}
	b.DiscountCode = d.Code
	b.DiscountAmount = d.AmountFor(b.Subtotal)
	b.Recompute()
	return b, nil
}
