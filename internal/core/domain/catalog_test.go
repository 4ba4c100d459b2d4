package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveUnitPriceTierBounds(t *testing.T) {
	tiers := []PromotionPricing{
		{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: decimal.NewFromInt(5)},
		{ID: 2, MinQuantity: 11, UnitPrice: decimal.NewFromInt(4)},
	}
	at := day(time.March, 10)

	cases := []struct {
		qty  int
		tier int64
	}{
		{1, 1},
		{10, 1},
		{11, 2},
		{100000, 2},
	}
	for _, tc := range cases {
		got, err := EffectiveUnitPrice(tiers, tc.qty, at)
		require.NoError(t, err, tc.qty)
		assert.Equal(t, tc.tier, got.ID, "quantity %d", tc.qty)
	}

	_, err := EffectiveUnitPrice(tiers, 0, at)
	assert.ErrorIs(t, err, ErrNoPricingTier)
}

func TestEffectiveUnitPriceValidity(t *testing.T) {
	tiers := []PromotionPricing{
		{ID: 1, MinQuantity: 1, UnitPrice: decimal.NewFromInt(40), ValidUntil: timePtr(day(time.February, 28))},
		{ID: 2, MinQuantity: 1, UnitPrice: decimal.NewFromInt(50), ValidFrom: timePtr(day(time.March, 1))},
	}

	got, err := EffectiveUnitPrice(tiers, 1, day(time.February, 15))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	got, err = EffectiveUnitPrice(tiers, 1, day(time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID, "valid_until is inclusive")

	got, err = EffectiveUnitPrice(tiers, 1, day(time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	future := []PromotionPricing{{ID: 3, MinQuantity: 1, UnitPrice: decimal.NewFromInt(60), ValidFrom: timePtr(day(time.April, 1))}}
	_, err = EffectiveUnitPrice(future, 1, day(time.March, 10))
	assert.ErrorIs(t, err, ErrNoPricingTier)
}

func TestValidateTiers(t *testing.T) {
	cases := []struct {
		name  string
		tiers []PromotionPricing
		err   error
	}{
		{
			name: "adjacent",
			tiers: []PromotionPricing{
				{ID: 2, MinQuantity: 11},
				{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10)},
			},
		},
		{
			name: "shared quantity",
			tiers: []PromotionPricing{
				{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10)},
				{ID: 2, MinQuantity: 10, MaxQuantity: intPtr(20)},
			},
			err: ErrOverlappingTiers,
		},
		{
			name: "open tier swallows later tier",
			tiers: []PromotionPricing{
				{ID: 1, MinQuantity: 1},
				{ID: 2, MinQuantity: 50},
			},
			err: ErrOverlappingTiers,
		},
		{
			name: "disjoint validity windows",
			tiers: []PromotionPricing{
				{ID: 1, MinQuantity: 1, ValidUntil: timePtr(day(time.February, 28))},
				{ID: 2, MinQuantity: 1, ValidFrom: timePtr(day(time.March, 1))},
			},
		},
		{
			name: "windows touching on one instant",
			tiers: []PromotionPricing{
				{ID: 1, MinQuantity: 1, ValidUntil: timePtr(day(time.March, 1))},
				{ID: 2, MinQuantity: 1, ValidFrom: timePtr(day(time.March, 1))},
			},
			err: ErrOverlappingTiers,
		},
		{
			name:  "max below min",
			tiers: []PromotionPricing{{ID: 1, MinQuantity: 10, MaxQuantity: intPtr(5)}},
			err:   ErrInvalidTier,
		},
		{
			name:  "negative price",
			tiers: []PromotionPricing{{ID: 1, MinQuantity: 1, UnitPrice: decimal.NewFromInt(-1)}},
			err:   ErrInvalidTier,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTiers(tc.tiers)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestOptionBounds(t *testing.T) {
	o := PromotionOption{MinQuantity: 1, MaxQuantity: intPtr(5), MinDurationDays: intPtr(3), MaxDurationDays: intPtr(30)}

	assert.False(t, o.IsQuantityValid(0))
	assert.True(t, o.IsQuantityValid(5))
	assert.False(t, o.IsQuantityValid(6))

	assert.False(t, o.IsDurationValid(2))
	assert.True(t, o.IsDurationValid(30))
	assert.False(t, o.IsDurationValid(31))
	assert.Equal(t, 3, o.DefaultDuration())
	assert.True(t, o.Modifier().Equal(decimal.NewFromInt(1)))

	assert.True(t, (&PromotionOption{}).IsDurationValid(365))
	assert.False(t, (&PromotionOption{}).IsDurationValid(0))
}

func TestOrderItemInputSchedule(t *testing.T) {
	t.Run("end date inclusive", func(t *testing.T) {
		start := day(time.March, 1)
		_, end, duration := OrderItemInput{StartDate: &start, DurationDays: 7}.Schedule()
		require.NotNil(t, end)
		require.NotNil(t, duration)
		assert.Equal(t, day(time.March, 7), *end)
		assert.Equal(t, 7, *duration)
	})

	t.Run("single day", func(t *testing.T) {
		start := day(time.March, 1)
		_, end, _ := OrderItemInput{StartDate: &start, DurationDays: 1}.Schedule()
		require.NotNil(t, end)
		assert.Equal(t, start, *end)
	})

	t.Run("explicit end kept", func(t *testing.T) {
		start, until := day(time.March, 1), day(time.March, 20)
		_, end, _ := OrderItemInput{StartDate: &start, EndDate: &until, DurationDays: 7}.Schedule()
		assert.Equal(t, until, *end)
	})

	t.Run("no start", func(t *testing.T) {
		start, end, duration := OrderItemInput{DurationDays: 7}.Schedule()
		assert.Nil(t, start)
		assert.Nil(t, end)
		assert.Equal(t, 7, *duration)
	})
}
