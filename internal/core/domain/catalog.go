package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CostModel determines how the price of a promotion type is computed.
type CostModel string

const (
	CostModelFixed        CostModel = "fixed"
	CostModelPerUnit      CostModel = "per_unit"
	CostModelSubscription CostModel = "subscription"
	CostModelPercentage   CostModel = "percentage"
)

// PromotionType is a category of purchasable promotion such as homepage
// featuring, ad creation, ad tracking or email marketing.
type PromotionType struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CostModel   CostModel `json:"cost_model"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Options []PromotionOption `json:"options"`
}

// Option returns the option of the type with the given id.
func (t *PromotionType) Option(id int64) (*PromotionOption, bool) {
	for i := range t.Options {
		if t.Options[i].ID == id {
			return &t.Options[i], true
		}
	}
	return nil, false
}

// Matches reports whether the query occurs in the name or description of the
// type or any of its options. Matching is case-insensitive.
func (t *PromotionType) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, o := range t.Options {
		if o.Matches(q) {
			return true
		}
	}
	return false
}

// PromotionOption is a purchasable variant within a promotion type, e.g. a
// 7-day homepage feature.
type PromotionOption struct {
	ID              int64           `json:"id"`
	PromotionTypeID int64           `json:"promotion_type_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	CostModifier    decimal.Decimal `json:"cost_modifier"`
	MinQuantity     int             `json:"min_quantity"`
	MaxQuantity     *int            `json:"max_quantity,omitempty"`
	MinDurationDays *int            `json:"min_duration_days,omitempty"`
	MaxDurationDays *int            `json:"max_duration_days,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	IsActive        bool            `json:"is_active"`
	SortOrder       int             `json:"sort_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Pricing []PromotionPricing `json:"pricing"`
}

// IsQuantityValid reports whether q lies within the option's quantity bounds.
func (o *PromotionOption) IsQuantityValid(q int) bool {
	if q < o.MinQuantity {
		return false
	}
	return o.MaxQuantity == nil || q <= *o.MaxQuantity
}

// IsDurationValid reports whether days lies within the option's duration
// bounds. Options without bounds accept any positive duration.
func (o *PromotionOption) IsDurationValid(days int) bool {
	if days <= 0 {
		return false
	}
	if o.MinDurationDays != nil && days < *o.MinDurationDays {
		return false
	}
	return o.MaxDurationDays == nil || days <= *o.MaxDurationDays
}

// DefaultDuration is the duration used when an order item does not specify one.
func (o *PromotionOption) DefaultDuration() int {
	if o.MinDurationDays != nil && *o.MinDurationDays > 0 {
		return *o.MinDurationDays
	}
	return 1
}

// Modifier returns the cost modifier, treating an unset modifier as 1.
func (o *PromotionOption) Modifier() decimal.Decimal {
	if o.CostModifier.IsZero() {
		return decimal.NewFromInt(1)
	}
	return o.CostModifier
}

// MetadataDecimal reads a numeric metadata value. Values may be stored as
// JSON numbers or numeric strings.
func (o *PromotionOption) MetadataDecimal(key string) (decimal.Decimal, bool) {
	v, ok := o.Metadata[key]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	return DecimalValue(v)
}

// Matches reports whether the lowercased query occurs in the option's name or
// description.
func (o *PromotionOption) Matches(q string) bool {
	return strings.Contains(strings.ToLower(o.Name), q) || strings.Contains(strings.ToLower(o.Description), q)
}

// PromotionPricing is a tiered price rule for an option.
type PromotionPricing struct {
	ID          int64           `json:"id"`
	OptionID    int64           `json:"option_id"`
	MinQuantity int             `json:"min_quantity"`
	MaxQuantity *int            `json:"max_quantity,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Currency    string          `json:"currency"`
	ValidFrom   *time.Time      `json:"valid_from,omitempty"`
	ValidUntil  *time.Time      `json:"valid_until,omitempty"`
}

// Contains reports whether q falls inside the tier bounds. A nil upper bound
// is unbounded.
func (p PromotionPricing) Contains(q int) bool {
	if q < p.MinQuantity {
		return false
	}
	return p.MaxQuantity == nil || q <= *p.MaxQuantity
}

// EffectiveAt reports whether the tier is in force at t.
func (p PromotionPricing) EffectiveAt(t time.Time) bool {
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	return p.ValidUntil == nil || !t.After(*p.ValidUntil)
}

func (p PromotionPricing) upper() int {
	if p.MaxQuantity == nil {
		return int(^uint(0) >> 1)
	}
	return *p.MaxQuantity
}

func (p PromotionPricing) overlapsInTime(o PromotionPricing) bool {
	if p.ValidUntil != nil && o.ValidFrom != nil && p.ValidUntil.Before(*o.ValidFrom) {
		return false
	}
	if o.ValidUntil != nil && p.ValidFrom != nil && o.ValidUntil.Before(*p.ValidFrom) {
		return false
	}
	return true
}

// ValidateTiers checks that no two tiers with intersecting validity windows
// share a quantity, and that every tier has sane bounds.
func ValidateTiers(tiers []PromotionPricing) error {
	sorted := make([]PromotionPricing, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinQuantity < sorted[j].MinQuantity })

	for i, t := range sorted {
		if t.MaxQuantity != nil && *t.MaxQuantity < t.MinQuantity {
			return fmt.Errorf("tier %d: max quantity %d below min quantity %d: %w", t.ID, *t.MaxQuantity, t.MinQuantity, ErrInvalidTier)
		}
		if t.UnitPrice.IsNegative() {
			return fmt.Errorf("tier %d: negative unit price: %w", t.ID, ErrInvalidTier)
		}
		for _, o := range sorted[i+1:] {
			if o.MinQuantity <= t.upper() && t.overlapsInTime(o) {
				return fmt.Errorf("tiers %d and %d share quantity %d: %w", t.ID, o.ID, o.MinQuantity, ErrOverlappingTiers)
			}
		}
	}
	return nil
}

// EffectiveUnitPrice selects the tier in force at `at` whose bounds contain q
// and returns it.
func EffectiveUnitPrice(tiers []PromotionPricing, q int, at time.Time) (PromotionPricing, error) {
	for _, t := range tiers {
		if t.EffectiveAt(at) && t.Contains(q) {
			return t, nil
		}
	}
	return PromotionPricing{}, fmt.Errorf("quantity %d: %w", q, ErrNoPricingTier)
}

// DecimalValue converts a JSON-decoded number or numeric string to a decimal.
func DecimalValue(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case int32:
		return decimal.NewFromInt32(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Zero, false
	}
}
