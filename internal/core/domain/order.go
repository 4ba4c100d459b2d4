package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a promotion order.
type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "draft"
	OrderStatusNeedsInfo      OrderStatus = "needs_info"
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusActive         OrderStatus = "active"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusNeedsInfo, OrderStatusPendingPayment, OrderStatusPaid,
		OrderStatusProcessing, OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of a single order line.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusActive    ItemStatus = "active"
	ItemStatusCompleted ItemStatus = "completed"
	ItemStatusCancelled ItemStatus = "cancelled"
)

// PromotionOrder is a purchase of one or more promotions by an organizer.
type PromotionOrder struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"order_number"`
	OrganizerID     int64           `json:"organizer_id"`
	EventID         *int64          `json:"event_id,omitempty"`
	Status          OrderStatus     `json:"status"`
	Currency        string          `json:"currency"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountCode    *string         `json:"discount_code,omitempty"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	PaymentID       *string         `json:"payment_id,omitempty"`
	PaymentProvider *string         `json:"payment_provider,omitempty"`
	PaymentMethod   *string         `json:"payment_method,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []PromotionOrderItem `json:"items"`
}

// CanBeModified reports whether items, discount and notes may still change.
func (o *PromotionOrder) CanBeModified() bool {
	return o.Status == OrderStatusDraft || o.Status == OrderStatusNeedsInfo
}

// CanBeCancelled reports whether the organizer may still cancel the order.
// Paid orders are never cancellable here; refunds are a separate flow.
func (o *PromotionOrder) CanBeCancelled() bool {
	return o.Status == OrderStatusDraft || o.Status == OrderStatusPendingPayment
}

// IsExpired reports whether an unpaid order has outlived its expiry.
func (o *PromotionOrder) IsExpired(now time.Time) bool {
	if o.ExpiresAt == nil || !o.CanBeCancelled() {
		return false
	}
	return now.After(*o.ExpiresAt)
}

// ApplyBreakdown copies the monetary fields of b onto the order.
func (o *PromotionOrder) ApplyBreakdown(b CostBreakdown) {
	o.Currency = b.Currency
	o.Subtotal = b.Subtotal
	o.DiscountAmount = b.DiscountAmount
	o.TaxRate = b.TaxRate
	o.TaxAmount = b.TaxAmount
	o.Total = b.Total
	if b.DiscountCode != "" {
		code := b.DiscountCode
		o.DiscountCode = &code
	}
}

// PromotionOrderItem is one line of a promotion order.
type PromotionOrderItem struct {
	ID                int64           `json:"id"`
	OrderID           int64           `json:"order_id"`
	PromotionTypeID   int64           `json:"promotion_type_id"`
	PromotionOptionID int64           `json:"promotion_option_id"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	EndDate           *time.Time      `json:"end_date,omitempty"`
	DurationDays      *int            `json:"duration_days,omitempty"`
	Status            ItemStatus      `json:"status"`
	Configuration     map[string]any  `json:"configuration,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Catalog details joined in on read.
	TypeName   string `json:"type_name"`
	TypeSlug   string `json:"type_slug"`
	OptionName string `json:"option_name"`
	OptionCode string `json:"option_code"`
}

// OrderItemInput is a requested order line before pricing.
type OrderItemInput struct {
	PromotionTypeID   int64          `json:"promotion_type_id" validate:"required,gt=0"`
	PromotionOptionID int64          `json:"promotion_option_id" validate:"required,gt=0"`
	Quantity          int            `json:"quantity,omitempty" validate:"gte=0"`
	DurationDays      int            `json:"duration_days,omitempty" validate:"gte=0"`
	StartDate         *time.Time     `json:"start_date,omitempty"`
	EndDate           *time.Time     `json:"end_date,omitempty"`
	Configuration     map[string]any `json:"configuration,omitempty"`
}

// Schedule returns the start, end and duration to persist for the line. When
// only a start and a duration are known, the end date is the last day of the
// run, inclusive.
func (in OrderItemInput) Schedule() (start, end *time.Time, duration *int) {
	start, end = in.StartDate, in.EndDate
	if in.DurationDays > 0 {
		d := in.DurationDays
		duration = &d
	}
	if start != nil && duration != nil && end == nil {
		e := start.AddDate(0, 0, *duration-1)
		end = &e
	}
	return start, end, duration
}

// NewOrderItem builds a pending order line from its input and priced cost.
func NewOrderItem(in OrderItemInput, cost ItemCost) PromotionOrderItem {
	start, end, duration := in.Schedule()
	cfg := in.Configuration
	if cfg == nil {
		cfg = map[string]any{}
	}
	return PromotionOrderItem{
		PromotionTypeID:   in.PromotionTypeID,
		PromotionOptionID: in.PromotionOptionID,
		Quantity:          cost.Quantity,
		UnitPrice:         cost.UnitPrice,
		TotalPrice:        cost.TotalPrice,
		StartDate:         start,
		EndDate:           end,
		DurationDays:      duration,
		Status:            ItemStatusPending,
		Configuration:     cfg,
	}
}

// PaymentDetails describes a settled payment reported by a provider.
type PaymentDetails struct {
	PaymentID       string `json:"payment_id" validate:"required"`
	PaymentProvider string `json:"payment_provider" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

// OrderStatistics summarises the orders of one organizer.
type OrderStatistics struct {
	TotalOrders         int64           `json:"total_orders"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	ActivePromotions    int64           `json:"active_promotions"`
	CompletedPromotions int64           `json:"completed_promotions"`
}

// OrderEventType names a lifecycle event published after a transition.
type OrderEventType string

const (
	OrderEventCreated   OrderEventType = "order.created"
	OrderEventUpdated   OrderEventType = "order.updated"
	OrderEventCheckout  OrderEventType = "order.checkout"
	OrderEventPaid      OrderEventType = "order.paid"
	OrderEventCancelled OrderEventType = "order.cancelled"
	OrderEventExpired   OrderEventType = "order.expired"
)

// OrderEvent is the message emitted for an order transition.
type OrderEvent struct {
	Type        OrderEventType  `json:"type"`
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	OrganizerID int64           `json:"organizer_id"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// NewOrderEvent snapshots o as an event of type t.
func NewOrderEvent(t OrderEventType, o *PromotionOrder, at time.Time) OrderEvent {
	return OrderEvent{
		Type:        t,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		OrganizerID: o.OrganizerID,
		Status:      o.Status,
		Total:       o.Total,
		Currency:    o.Currency,
		OccurredAt:  at,
	}
}
