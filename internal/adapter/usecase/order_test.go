package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/core/port/mocks"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	svc       *OrderUseCase
	repo      *mocks.MockOrderRepository
	catalog   *mocks.MockCatalogRepository
	discounts *mocks.MockDiscountRepository
	events    *mocks.MockEventPublisher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	f := orderFixture{
		repo:      mocks.NewMockOrderRepository(t),
		catalog:   mocks.NewMockCatalogRepository(t),
		discounts: mocks.NewMockDiscountRepository(t),
		events:    mocks.NewMockEventPublisher(t),
	}
	catalog := NewCatalogUseCase(f.catalog)
	pricing := NewPricing(catalog, f.discounts, testPricingConfig())
	f.svc = NewOrderUseCase(f.repo, catalog, pricing, f.events, node,
		OrderConfig{DraftTTL: 24 * time.Hour, PaymentTTL: 2 * time.Hour}, discardLogger())
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f orderFixture) expectEvent(t domain.OrderEventType) {
	f.events.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool { return e.Type == t })).
		Return(nil).
		Once()
}

func storedOrder(status domain.OrderStatus) *domain.PromotionOrder {
	return &domain.PromotionOrder{
		ID:          7,
		OrderNumber: "PRO-ABC",
		OrganizerID: 42,
		Status:      status,
		Currency:    "RON",
		Subtotal:    dec("350"),
		TaxRate:     dec("19"),
		TaxAmount:   dec("66.5"),
		Total:       dec("416.5"),
		Items: []domain.PromotionOrderItem{
			{ID: 1, OrderID: 7, PromotionTypeID: 1, PromotionOptionID: 10, Quantity: 1, UnitPrice: dec("50"), TotalPrice: dec("350"), Status: domain.ItemStatusPending},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	typ, opt := homepageFeatured()
	expectCatalog(f.catalog, typ, opt)
	f.discounts.EXPECT().FindDiscountCode(mock.Anything, "WELCOME10").
		Return(&domain.DiscountCode{Code: "WELCOME10", Kind: domain.DiscountPercentage, Value: dec("10"), IsActive: true}, nil)

	f.repo.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("*domain.PromotionOrder")).
		RunAndReturn(func(_ context.Context, o *domain.PromotionOrder) error {
			o.ID = 7
			return nil
		})
	f.expectEvent(domain.OrderEventCreated)

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	notes := "spring campaign"
	order, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
		Items:        []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7, StartDate: &start}},
		DiscountCode: "WELCOME10",
		Notes:        &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), order.ID)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "PRO-"))
	assert.Equal(t, domain.OrderStatusDraft, order.Status)
	assert.Equal(t, int64(42), order.OrganizerID)
	require.NotNil(t, order.ExpiresAt)
	assert.Equal(t, testNow.Add(24*time.Hour), *order.ExpiresAt)
	require.NotNil(t, order.DiscountCode)
	assert.Equal(t, "WELCOME10", *order.DiscountCode)
	assertMoney(t, "350", order.Subtotal)
	assertMoney(t, "35", order.DiscountAmount)
	assertMoney(t, "59.85", order.TaxAmount)
	assertMoney(t, "374.85", order.Total)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, domain.ItemStatusPending, item.Status)
	assertMoney(t, "50", item.UnitPrice)
	assertMoney(t, "350", item.TotalPrice)
	require.NotNil(t, item.EndDate)
	assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), *item.EndDate)
}

func TestCreateOrderUniqueNumbers(t *testing.T) {
	f := newOrderFixture(t)
	seen := map[string]bool{}
	for range 50 {
		n := f.svc.orderNumber()
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestCreateOrderPublishFailureIsNotReturned(t *testing.T) {
	f := newOrderFixture(t)
	typ, opt := homepageFeatured()
	expectCatalog(f.catalog, typ, opt)
	f.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
		Items: []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7}},
	})
	require.NoError(t, err)
	assertMoney(t, "416.5", order.Total)
	assert.Nil(t, order.DiscountCode)
}

func TestCreateOrderWithoutPublisher(t *testing.T) {
	f := newOrderFixture(t)
	f.svc.events = nil
	typ, opt := homepageFeatured()
	expectCatalog(f.catalog, typ, opt)
	f.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
		Items: []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 10}},
	})
	require.NoError(t, err)
}

func TestCreateOrderValidation(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{})
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
		assert.EqualError(t, err, "Order must have at least one item")
	})

	t.Run("unknown type", func(t *testing.T) {
		f := newOrderFixture(t)
		f.catalog.EXPECT().GetType(mock.Anything, int64(5)).Return(nil, nil)

		_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
			Items: []domain.OrderItemInput{{PromotionTypeID: 5, PromotionOptionID: 10}},
		})
		require.ErrorIs(t, err, domain.ErrInvalidType)
		assert.EqualError(t, err, "invalid promotion type: 5")
	})

	t.Run("option of another type", func(t *testing.T) {
		f := newOrderFixture(t)
		typ, _ := homepageFeatured()
		f.catalog.EXPECT().GetType(mock.Anything, int64(1)).Return(&typ, nil)
		f.catalog.EXPECT().GetOption(mock.Anything, int64(11)).
			Return(&domain.PromotionOption{ID: 11, PromotionTypeID: 2}, nil)

		_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
			Items: []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 11}},
		})
		require.ErrorIs(t, err, domain.ErrOptionTypeMismatch)
	})

	t.Run("quantity above max", func(t *testing.T) {
		f := newOrderFixture(t)
		typ, opt := homepageFeatured()
		opt.MaxQuantity = intPtr(2)
		expectCatalog(f.catalog, typ, opt)

		_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
			Items: []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 10, Quantity: 5}},
		})
		require.ErrorIs(t, err, domain.ErrQuantityOutOfBounds)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "min 1, max 2")
	})

	t.Run("duration above max", func(t *testing.T) {
		f := newOrderFixture(t)
		typ, opt := homepageFeatured()
		expectCatalog(f.catalog, typ, opt)

		_, err := f.svc.CreateOrder(context.Background(), 42, port.CreateOrderInput{
			Items: []domain.OrderItemInput{{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 45}},
		})
		require.ErrorIs(t, err, domain.ErrDurationOutOfBounds)
		assert.Contains(t, err.Error(), "min 1, max 30")
	})
}

func TestGetOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)
	organizer := int64(42)
	f.repo.EXPECT().FindOrder(mock.Anything, int64(7), &organizer).Return(nil, nil)

	_, err := f.svc.GetOrder(context.Background(), 7, &organizer)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrdersClampsPage(t *testing.T) {
	f := newOrderFixture(t)
	f.repo.EXPECT().
		ListOrders(mock.Anything, int64(42), port.OrderFilter{Statuses: []domain.OrderStatus{domain.OrderStatusDraft}, Limit: 100, Offset: 0}).
		Return([]domain.PromotionOrder{*storedOrder(domain.OrderStatusDraft)}, int64(1), nil)

	orders, total, err := f.svc.ListOrders(context.Background(), 42, port.OrderFilter{
		Statuses: []domain.OrderStatus{domain.OrderStatusDraft},
		Limit:    500,
		Offset:   -3,
	})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(1), total)

	_, _, err = f.svc.ListOrders(context.Background(), 42, port.OrderFilter{Statuses: []domain.OrderStatus{"shipped"}})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteStoresNothing(t *testing.T) {
	f := newOrderFixture(t)
	typ, opt := homepageFeatured()
	expectCatalog(f.catalog, typ, opt)
	f.discounts.EXPECT().FindDiscountCode(mock.Anything, "WELCOME10").
		Return(&domain.DiscountCode{Code: "WELCOME10", Kind: domain.DiscountPercentage, Value: dec("10"), IsActive: true}, nil)

	b, err := f.svc.Quote(context.Background(), []domain.OrderItemInput{
		{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7},
	}, " welcome10 ")
	require.NoError(t, err)
	assertMoney(t, "350", b.Subtotal)
	assertMoney(t, "35", b.DiscountAmount)
	assertMoney(t, "374.85", b.Total)
	assert.Equal(t, "WELCOME10", b.DiscountCode)
}

func TestOrderStatistics(t *testing.T) {
	f := newOrderFixture(t)
	want := &domain.OrderStatistics{TotalOrders: 3, TotalSpent: dec("416.5"), ActivePromotions: 1}
	f.repo.EXPECT().OrderStatistics(mock.Anything, int64(42)).Return(want, nil)

	got, err := f.svc.OrderStatistics(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateOrder(t *testing.T) {
	t.Run("not modifiable", func(t *testing.T) {
		for _, status := range []domain.OrderStatus{domain.OrderStatusPendingPayment, domain.OrderStatusPaid, domain.OrderStatusCancelled} {
			f := newOrderFixture(t)
			f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(status), nil)

			notes := "x"
			_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{Notes: &notes})
			require.ErrorIs(t, err, domain.ErrOrderNotModifiable, status)
		}
	})

	t.Run("notes only", func(t *testing.T) {
		f := newOrderFixture(t)
		notes := "call me"
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusNeedsInfo), nil)
		f.repo.EXPECT().UpdateOrderNotes(mock.Anything, int64(7), &notes).Return(nil)
		f.expectEvent(domain.OrderEventUpdated)

		_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{Notes: &notes})
		require.NoError(t, err)
	})

	t.Run("replace items keeps discount", func(t *testing.T) {
		f := newOrderFixture(t)
		typ, opt := homepageFeatured()
		expectCatalog(f.catalog, typ, opt)

		current := storedOrder(domain.OrderStatusDraft)
		code := "WELCOME10"
		current.DiscountCode = &code
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(current, nil)
		f.discounts.EXPECT().FindDiscountCode(mock.Anything, "WELCOME10").
			Return(&domain.DiscountCode{Code: "WELCOME10", Kind: domain.DiscountPercentage, Value: dec("10"), IsActive: true}, nil)
		f.repo.EXPECT().
			ReplaceOrderItems(mock.Anything, mock.MatchedBy(func(o *domain.PromotionOrder) bool {
				return len(o.Items) == 2 && o.Subtotal.Equal(dec("500")) && o.DiscountAmount.Equal(dec("50")) &&
					o.Total.Equal(dec("535.5")) && *o.DiscountCode == "WELCOME10"
			})).
			Return(nil)
		f.expectEvent(domain.OrderEventUpdated)

		_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{
			Items: []domain.OrderItemInput{
				{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 7},
				{PromotionTypeID: 1, PromotionOptionID: 10, DurationDays: 3},
			},
		})
		require.NoError(t, err)
	})

	t.Run("discount only", func(t *testing.T) {
		cases := []struct {
			name     string
			code     string
			found    *domain.DiscountCode
			discount string
			tax      string
			total    string
		}{
			{
				name:     "known code",
				code:     "welcome10",
				found:    &domain.DiscountCode{Code: "WELCOME10", Kind: domain.DiscountPercentage, Value: dec("10"), IsActive: true},
				discount: "35", tax: "59.85", total: "374.85",
			},
			{name: "unknown code", code: "nope", discount: "0", tax: "66.5", total: "416.5"},
			{
				name:     "inactive code",
				code:     "OLD",
				found:    &domain.DiscountCode{Code: "OLD", Kind: domain.DiscountFixed, Value: dec("100"), IsActive: false},
				discount: "0", tax: "66.5", total: "416.5",
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newOrderFixture(t)
				f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusDraft), nil).Once()
				f.discounts.EXPECT().FindDiscountCode(mock.Anything, strings.ToUpper(tc.code)).Return(tc.found, nil)

				var saved domain.PromotionOrder
				f.repo.EXPECT().ReplaceOrderItems(mock.Anything, mock.AnythingOfType("*domain.PromotionOrder")).
					RunAndReturn(func(_ context.Context, o *domain.PromotionOrder) error {
						saved = *o
						return nil
					})
				f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusDraft), nil).Once()
				f.expectEvent(domain.OrderEventUpdated)

				_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{DiscountCode: tc.code})
				require.NoError(t, err)

				assert.True(t, saved.Subtotal.Equal(dec("350")), saved.Subtotal.String())
				assert.True(t, saved.DiscountAmount.Equal(dec(tc.discount)), saved.DiscountAmount.String())
				assert.True(t, saved.TaxAmount.Equal(dec(tc.tax)), saved.TaxAmount.String())
				assert.True(t, saved.Total.Equal(dec(tc.total)), saved.Total.String())
				assert.Len(t, saved.Items, 1)
				if tc.found != nil && tc.found.IsActive {
					require.NotNil(t, saved.DiscountCode)
					assert.Equal(t, "WELCOME10", *saved.DiscountCode)
				} else {
					assert.Nil(t, saved.DiscountCode)
				}
			})
		}
	})

	t.Run("unknown code keeps applied discount", func(t *testing.T) {
		f := newOrderFixture(t)
		current := storedOrder(domain.OrderStatusDraft)
		code := "WELCOME10"
		current.DiscountCode = &code
		current.DiscountAmount = dec("35")
		current.TaxAmount = dec("59.85")
		current.Total = dec("374.85")
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(current, nil)
		f.discounts.EXPECT().FindDiscountCode(mock.Anything, "NOPE").Return(nil, nil)
		f.repo.EXPECT().
			ReplaceOrderItems(mock.Anything, mock.MatchedBy(func(o *domain.PromotionOrder) bool {
				return o.DiscountAmount.Equal(dec("35")) && o.Total.Equal(dec("374.85")) && *o.DiscountCode == "WELCOME10"
			})).
			Return(nil)
		f.expectEvent(domain.OrderEventUpdated)

		_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{DiscountCode: "NOPE"})
		require.NoError(t, err)
	})

	t.Run("invalid items write nothing", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusDraft), nil)

		_, err := f.svc.UpdateOrder(context.Background(), 7, 42, port.UpdateOrderInput{Items: []domain.OrderItemInput{}})
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
	})
}

func TestCancelOrder(t *testing.T) {
	cases := []struct {
		status domain.OrderStatus
		err    error
	}{
		{domain.OrderStatusDraft, nil},
		{domain.OrderStatusPendingPayment, nil},
		{domain.OrderStatusNeedsInfo, domain.ErrOrderNotCancellable},
		{domain.OrderStatusPaid, domain.ErrOrderNotCancellable},
		{domain.OrderStatusActive, domain.ErrOrderNotCancellable},
		{domain.OrderStatusCancelled, domain.ErrOrderNotCancellable},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			f := newOrderFixture(t)
			f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(tc.status), nil).Once()
			if tc.err == nil {
				f.repo.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(nil)
				f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusCancelled), nil).Once()
				f.expectEvent(domain.OrderEventCancelled)
			}

			order, err := f.svc.CancelOrder(context.Background(), 7, 42)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, err, domain.ErrConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		})
	}
}

func TestInitiateCheckout(t *testing.T) {
	t.Run("draft", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusDraft), nil).Once()
		f.repo.EXPECT().StartCheckout(mock.Anything, int64(7), testNow.Add(2*time.Hour)).Return(nil)
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusPendingPayment), nil).Once()
		f.expectEvent(domain.OrderEventCheckout)

		order, err := f.svc.InitiateCheckout(context.Background(), 7, 42)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingPayment, order.Status)
	})

	t.Run("not draft", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(storedOrder(domain.OrderStatusPendingPayment), nil)

		_, err := f.svc.InitiateCheckout(context.Background(), 7, 42)
		require.ErrorIs(t, err, domain.ErrOrderNotDraft)
	})

	t.Run("no items", func(t *testing.T) {
		f := newOrderFixture(t)
		o := storedOrder(domain.OrderStatusDraft)
		o.Items = nil
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), mock.Anything).Return(o, nil)

		_, err := f.svc.InitiateCheckout(context.Background(), 7, 42)
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
	})
}

func TestMarkOrderAsPaid(t *testing.T) {
	payment := domain.PaymentDetails{PaymentID: "pi_1", PaymentProvider: "stripe", PaymentMethod: "card"}

	t.Run("pending payment", func(t *testing.T) {
		f := newOrderFixture(t)
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), (*int64)(nil)).Return(storedOrder(domain.OrderStatusPendingPayment), nil).Once()
		f.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(7), payment, testNow).Return(nil)
		paid := storedOrder(domain.OrderStatusPaid)
		paid.Items[0].Status = domain.ItemStatusActive
		f.repo.EXPECT().FindOrder(mock.Anything, int64(7), (*int64)(nil)).Return(paid, nil).Once()
		f.expectEvent(domain.OrderEventPaid)

		order, err := f.svc.MarkOrderAsPaid(context.Background(), 7, payment)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
		assert.Equal(t, domain.ItemStatusActive, order.Items[0].Status)
	})

	for _, status := range []domain.OrderStatus{domain.OrderStatusDraft, domain.OrderStatusPaid, domain.OrderStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newOrderFixture(t)
			f.repo.EXPECT().FindOrder(mock.Anything, int64(7), (*int64)(nil)).Return(storedOrder(status), nil)

			_, err := f.svc.MarkOrderAsPaid(context.Background(), 7, payment)
			require.ErrorIs(t, err, domain.ErrOrderNotPendingPayment)
		})
	}
}

func TestExpireOrders(t *testing.T) {
	f := newOrderFixture(t)
	past := testNow.Add(-time.Minute)
	future := testNow.Add(time.Hour)

	expired := storedOrder(domain.OrderStatusDraft)
	expired.ExpiresAt = &past
	raced := storedOrder(domain.OrderStatusPendingPayment)
	raced.ID, raced.ExpiresAt = 8, &past
	fresh := storedOrder(domain.OrderStatusDraft)
	fresh.ID, fresh.ExpiresAt = 9, &future

	f.repo.EXPECT().FindExpiredOrders(mock.Anything, testNow, expiryBatchSize).
		Return([]domain.PromotionOrder{*expired, *raced, *fresh}, nil)
	f.repo.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(nil)
	f.repo.EXPECT().CancelOrder(mock.Anything, int64(8)).Return(domain.ErrOrderNotCancellable)
	f.expectEvent(domain.OrderEventExpired)

	n, err := f.svc.ExpireOrders(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
