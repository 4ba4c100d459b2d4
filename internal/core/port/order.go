package port

import (
	"context"
	"time"

	"promo-orders/internal/core/domain"
)

// OrderRepository persists promotion orders. Methods that touch more than
// one row run in a single transaction. Status-changing methods re-check the
// source status inside the transaction and return the matching domain
// conflict error when it no longer holds.
type OrderRepository interface {
	// CreateOrder inserts the order and its items, filling in ids and
	// timestamps.
	CreateOrder(ctx context.Context, order *domain.PromotionOrder) error
	// FindOrder returns the order with items, optionally scoped to an
	// organizer. It returns (nil, nil) when not found.
	FindOrder(ctx context.Context, id int64, organizerID *int64) (*domain.PromotionOrder, error)
	// FindOrderByNumber is FindOrder keyed by order number.
	FindOrderByNumber(ctx context.Context, number string, organizerID *int64) (*domain.PromotionOrder, error)
	// ListOrders returns a page of an organizer's orders, newest first, and
	// the total matching the filter.
	ListOrders(ctx context.Context, organizerID int64, filter OrderFilter) ([]domain.PromotionOrder, int64, error)
	// ReplaceOrderItems rewrites totals, discount, notes and the full item
	// list of a modifiable order.
	ReplaceOrderItems(ctx context.Context, order *domain.PromotionOrder) error
	// UpdateOrderNotes changes only the notes of a modifiable order.
	UpdateOrderNotes(ctx context.Context, id int64, notes *string) error
	// CancelOrder moves a cancellable order and all its items to cancelled.
	CancelOrder(ctx context.Context, id int64) error
	// StartCheckout moves a draft order to pending payment.
	StartCheckout(ctx context.Context, id int64, expiresAt time.Time) error
	// MarkOrderPaid records the payment and activates every item.
	MarkOrderPaid(ctx context.Context, id int64, payment domain.PaymentDetails, paidAt time.Time) error
	// OrderStatistics aggregates an organizer's orders.
	OrderStatistics(ctx context.Context, organizerID int64) (*domain.OrderStatistics, error)
	// FindExpiredOrders returns unpaid orders whose expiry is before now.
	FindExpiredOrders(ctx context.Context, now time.Time, limit int) ([]domain.PromotionOrder, error)
}

// EventPublisher delivers order lifecycle events to other services.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// OrderFilter narrows an order listing. Zero values do not filter.
type OrderFilter struct {
	Statuses []domain.OrderStatus
	Limit    int
	Offset   int
}

// CreateOrderInput is an organizer's request to buy promotions.
type CreateOrderInput struct {
	EventID      *int64                  `json:"event_id,omitempty"`
	Items        []domain.OrderItemInput `json:"items" validate:"dive"`
	DiscountCode string                  `json:"discount_code,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

// UpdateOrderInput changes a modifiable order. A nil Items leaves the lines
// untouched.
type UpdateOrderInput struct {
	Items        []domain.OrderItemInput `json:"items,omitempty" validate:"omitempty,dive"`
	DiscountCode string                  `json:"discount_code,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

// OrderUseCase is the promotion order lifecycle.
type OrderUseCase interface {
	// Quote prices items without persisting anything.
	Quote(ctx context.Context, items []domain.OrderItemInput, discountCode string) (domain.CostBreakdown, error)
	CreateOrder(ctx context.Context, organizerID int64, in CreateOrderInput) (*domain.PromotionOrder, error)
	GetOrder(ctx context.Context, id int64, organizerID *int64) (*domain.PromotionOrder, error)
	GetOrderByNumber(ctx context.Context, number string, organizerID *int64) (*domain.PromotionOrder, error)
	ListOrders(ctx context.Context, organizerID int64, filter OrderFilter) ([]domain.PromotionOrder, int64, error)
	UpdateOrder(ctx context.Context, id, organizerID int64, in UpdateOrderInput) (*domain.PromotionOrder, error)
	CancelOrder(ctx context.Context, id, organizerID int64) (*domain.PromotionOrder, error)
	InitiateCheckout(ctx context.Context, id, organizerID int64) (*domain.PromotionOrder, error)
	MarkOrderAsPaid(ctx context.Context, id int64, payment domain.PaymentDetails) (*domain.PromotionOrder, error)
	OrderStatistics(ctx context.Context, organizerID int64) (*domain.OrderStatistics, error)
	// ExpireOrders cancels unpaid orders past their expiry and returns how
	// many were cancelled.
	ExpireOrders(ctx context.Context, now time.Time) (int, error)
}
