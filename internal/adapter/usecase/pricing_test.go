package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port/mocks"
)

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func testPricingConfig() PricingConfig {
	return PricingConfig{TaxRate: dec("19"), Currency: "RON", DefaultFeePercent: dec("15")}
}

func newTestPricing(t *testing.T) (*Pricing, *mocks.MockCatalogRepository, *mocks.MockDiscountRepository) {
	catalog := mocks.NewMockCatalogRepository(t)
	discounts := mocks.NewMockDiscountRepository(t)
	return NewPricing(NewCatalogUseCase(catalog), discounts, testPricingConfig()), catalog, discounts
}

func expectCatalog(catalog *mocks.MockCatalogRepository, typ domain.PromotionType, opt domain.PromotionOption) {
	catalog.EXPECT().GetType(mock.Anything, typ.ID).Return(&typ, nil)
	catalog.EXPECT().GetOption(mock.Anything, opt.ID).Return(&opt, nil)
}

func homepageFeatured() (domain.PromotionType, domain.PromotionOption) {
	typ := domain.PromotionType{ID: 1, Slug: "homepage-featured", Name: "Homepage Featured", CostModel: domain.CostModelFixed}
	opt := domain.PromotionOption{
		ID:              10,
		PromotionTypeID: 1,
		Code:            "featured",
		Name:            "Featured slot",
		MinQuantity:     1,
		MinDurationDays: intPtr(1),
		MaxDurationDays: intPtr(30),
		Pricing: []domain.PromotionPricing{
			{ID: 100, OptionID: 10, MinQuantity: 1, MaxQuantity: intPtr(30), UnitPrice: dec("50"), Currency: "RON"},
		},
	}
	return typ, opt
}

func TestCalculateItemCostFixed(t *testing.T) {
	p, catalog, _ := newTestPricing(t)
	typ, opt := homepageFeatured()
	expectCatalog(catalog, typ, opt)

	cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{
		PromotionTypeID:   1,
		PromotionOptionID: 10,
		DurationDays:      7,
	})
	require.NoError(t, err)
	assertMoney(t, "50", cost.UnitPrice)
	assertMoney(t, "350", cost.TotalPrice)
	assert.Equal(t, 1, cost.Quantity)
	assert.Equal(t, 7, cost.DurationDays)
}

func TestCalculateItemCostDefaultsDuration(t *testing.T) {
	p, catalog, _ := newTestPricing(t)
	typ, opt := homepageFeatured()
	opt.MinDurationDays = intPtr(3)
	expectCatalog(catalog, typ, opt)

	cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 1, PromotionOptionID: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, cost.DurationDays)
	assertMoney(t, "150", cost.TotalPrice)
}

func TestCalculateItemCostPerUnitWithModifier(t *testing.T) {
	p, catalog, _ := newTestPricing(t)
	typ := domain.PromotionType{ID: 2, Slug: "sms-blast", CostModel: domain.CostModelPerUnit}
	opt := domain.PromotionOption{
		ID:              20,
		PromotionTypeID: 2,
		Code:            "priority",
		CostModifier:    dec("1.5"),
		Pricing: []domain.PromotionPricing{
			{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: dec("5")},
			{ID: 2, MinQuantity: 11, UnitPrice: dec("4")},
		},
	}
	expectCatalog(catalog, typ, opt)

	cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 2, PromotionOptionID: 20, Quantity: 20})
	require.NoError(t, err)
	assertMoney(t, "4", cost.UnitPrice)
	assertMoney(t, "120", cost.TotalPrice)
}

func TestCalculateItemCostTierBoundaries(t *testing.T) {
	typ := domain.PromotionType{ID: 2, Slug: "sms-blast", CostModel: domain.CostModelPerUnit}
	cases := []struct {
		name  string
		qty   int
		tiers []domain.PromotionPricing
		unit  string
		total string
	}{
		{
			name:  "last quantity of first tier",
			qty:   10,
			tiers: []domain.PromotionPricing{{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: dec("5")}, {ID: 2, MinQuantity: 11, UnitPrice: dec("4")}},
			unit:  "5", total: "75",
		},
		{
			name:  "first quantity of open tier",
			qty:   11,
			tiers: []domain.PromotionPricing{{ID: 1, MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: dec("5")}, {ID: 2, MinQuantity: 11, UnitPrice: dec("4")}},
			unit:  "4", total: "66",
		},
		{
			name:  "half cent rounds up",
			qty:   1,
			tiers: []domain.PromotionPricing{{ID: 1, MinQuantity: 1, UnitPrice: dec("3.33")}},
			unit:  "3.33", total: "5",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, catalog, _ := newTestPricing(t)
			opt := domain.PromotionOption{ID: 20, PromotionTypeID: 2, Code: "priority", CostModifier: dec("1.5"), Pricing: tc.tiers}
			expectCatalog(catalog, typ, opt)

			cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 2, PromotionOptionID: 20, Quantity: tc.qty})
			require.NoError(t, err)
			assertMoney(t, tc.unit, cost.UnitPrice)
			assertMoney(t, tc.total, cost.TotalPrice)
		})
	}
}

func TestCalculateItemCostSubscription(t *testing.T) {
	p, catalog, _ := newTestPricing(t)
	typ := domain.PromotionType{ID: 3, Slug: "ad-tracking", CostModel: domain.CostModelSubscription}
	opt := domain.PromotionOption{
		ID:              30,
		PromotionTypeID: 3,
		Code:            "monthly",
		Pricing:         []domain.PromotionPricing{{ID: 1, MinQuantity: 1, UnitPrice: dec("29.99")}},
	}
	expectCatalog(catalog, typ, opt)

	cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 3, PromotionOptionID: 30, Quantity: 3})
	require.NoError(t, err)
	assertMoney(t, "29.99", cost.UnitPrice)
	assertMoney(t, "89.97", cost.TotalPrice)
}

func TestCalculateItemCostPercentage(t *testing.T) {
	typ := domain.PromotionType{ID: 4, Slug: "ad-creation", CostModel: domain.CostModelPercentage}
	base := domain.PromotionOption{
		ID:              40,
		PromotionTypeID: 4,
		Code:            "managed",
		CostModifier:    dec("2"),
		Pricing:         []domain.PromotionPricing{{ID: 1, MinQuantity: 1, UnitPrice: dec("100")}},
	}

	t.Run("default fee", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		expectCatalog(catalog, typ, base)

		cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{
			PromotionTypeID:   4,
			PromotionOptionID: 40,
			Configuration:     map[string]any{"budget": float64(1000)},
		})
		require.NoError(t, err)
		assertMoney(t, "100", cost.UnitPrice)
		assertMoney(t, "250", cost.TotalPrice)
	})

	t.Run("fee from option metadata", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		opt := base
		opt.Metadata = map[string]any{"fee_percent": "20"}
		expectCatalog(catalog, typ, opt)

		cost, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{
			PromotionTypeID:   4,
			PromotionOptionID: 40,
			Configuration:     map[string]any{"budget": "500"},
		})
		require.NoError(t, err)
		assertMoney(t, "200", cost.TotalPrice)
	})

	t.Run("missing budget", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		expectCatalog(catalog, typ, base)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 4, PromotionOptionID: 40})
		require.ErrorIs(t, err, domain.ErrInvalidBudget)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCalculateItemCostErrors(t *testing.T) {
	t.Run("unknown cost model", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		typ, opt := homepageFeatured()
		typ.CostModel = "auction"
		expectCatalog(catalog, typ, opt)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 1, PromotionOptionID: 10})
		require.ErrorIs(t, err, domain.ErrUnknownCostModel)
	})

	t.Run("option of another type", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		typ, opt := homepageFeatured()
		opt.PromotionTypeID = 99
		expectCatalog(catalog, typ, opt)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 1, PromotionOptionID: 10})
		require.ErrorIs(t, err, domain.ErrOptionTypeMismatch)
	})

	t.Run("no tier for duration", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		typ, opt := homepageFeatured()
		expectCatalog(catalog, typ, opt)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 45})
		require.ErrorIs(t, err, domain.ErrNoPricingTier)
	})

	t.Run("overlapping tiers", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		typ, opt := homepageFeatured()
		opt.Pricing = append(opt.Pricing, domain.PromotionPricing{ID: 101, MinQuantity: 7, UnitPrice: dec("40")})
		expectCatalog(catalog, typ, opt)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7})
		require.ErrorIs(t, err, domain.ErrOverlappingTiers)
	})

	t.Run("unknown type", func(t *testing.T) {
		p, catalog, _ := newTestPricing(t)
		catalog.EXPECT().GetType(mock.Anything, int64(5)).Return(nil, nil)

		_, err := p.CalculateItemCost(context.Background(), domain.OrderItemInput{PromotionTypeID: 5, PromotionOptionID: 10})
		require.ErrorIs(t, err, domain.ErrTypeNotFound)
	})
}

func TestCalculateOrderCost(t *testing.T) {
	p, catalog, _ := newTestPricing(t)
	typ, opt := homepageFeatured()
	expectCatalog(catalog, typ, opt)

	b, err := p.CalculateOrderCost(context.Background(), []domain.OrderItemInput{
		{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7},
		{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 3},
	})
	require.NoError(t, err)
	require.Len(t, b.Items, 2)
	assert.Equal(t, "RON", b.Currency)
	assertMoney(t, "500", b.Subtotal)
	assertMoney(t, "0", b.DiscountAmount)
	assertMoney(t, "95", b.TaxAmount)
	assertMoney(t, "595", b.Total)
}

func TestCalculateOrderCostEmpty(t *testing.T) {
	p, _, _ := newTestPricing(t)

	_, err := p.CalculateOrderCost(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.EqualError(t, err, "Order must have at least one item")
}

func TestApplyDiscountCode(t *testing.T) {
	base := domain.CostBreakdown{Currency: "RON", Subtotal: dec("1000"), TaxRate: dec("19")}
	base.Recompute()

	t.Run("percentage", func(t *testing.T) {
		p, _, discounts := newTestPricing(t)
		discounts.EXPECT().FindDiscountCode(mock.Anything, "WELCOME10").
			Return(&domain.DiscountCode{Code: "WELCOME10", Kind: domain.DiscountPercentage, Value: dec("10"), IsActive: true}, nil)

		b, err := p.ApplyDiscountCode(context.Background(), base, " welcome10 ")
		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", b.DiscountCode)
		assertMoney(t, "1000", b.Subtotal)
		assertMoney(t, "100", b.DiscountAmount)
		assertMoney(t, "171", b.TaxAmount)
		assertMoney(t, "1071", b.Total)
	})

	t.Run("fixed capped at subtotal", func(t *testing.T) {
		p, _, discounts := newTestPricing(t)
		discounts.EXPECT().FindDiscountCode(mock.Anything, "BIG").
			Return(&domain.DiscountCode{Code: "BIG", Kind: domain.DiscountFixed, Value: dec("5000"), IsActive: true}, nil)

		b, err := p.ApplyDiscountCode(context.Background(), base, "BIG")
		require.NoError(t, err)
		assertMoney(t, "1000", b.DiscountAmount)
		assertMoney(t, "0", b.TaxAmount)
		assertMoney(t, "0", b.Total)
	})

	t.Run("unknown code", func(t *testing.T) {
		p, _, discounts := newTestPricing(t)
		discounts.EXPECT().FindDiscountCode(mock.Anything, "NOPE").Return(nil, nil)

		b, err := p.ApplyDiscountCode(context.Background(), base, "NOPE")
		require.NoError(t, err)
		assert.Equal(t, base, b)
	})

	t.Run("inactive code", func(t *testing.T) {
		p, _, discounts := newTestPricing(t)
		discounts.EXPECT().FindDiscountCode(mock.Anything, "OLD").
			Return(&domain.DiscountCode{Code: "OLD", Kind: domain.DiscountPercentage, Value: dec("50")}, nil)

		b, err := p.ApplyDiscountCode(context.Background(), base, "OLD")
		require.NoError(t, err)
		assertMoney(t, "1190", b.Total)
	})

	t.Run("empty code", func(t *testing.T) {
		p, _, _ := newTestPricing(t)

		b, err := p.ApplyDiscountCode(context.Background(), base, "")
		require.NoError(t, err)
		assert.Equal(t, base, b)
	})
}
