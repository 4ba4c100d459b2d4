package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/metrics"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	expiryBatchSize = 100
)

// OrderConfig sets the order expiry windows.
type OrderConfig struct {
	DraftTTL   time.Duration
	PaymentTTL time.Duration
}

// OrderUseCase drives the promotion order state machine:
// draft -> pending_payment -> paid, with cancellation from draft and
// pending_payment. Every transition is persisted atomically by the repository
// and announced through the event publisher once committed.
type OrderUseCase struct {
	repo    port.OrderRepository
	catalog port.CatalogUseCase
	pricing port.PricingUseCase
	events  port.EventPublisher
	node    *snowflake.Node
	cfg     OrderConfig
	logger  *slog.Logger

	now func() time.Time
}

// NewOrderUseCase wires the order lifecycle. events may be nil, in which case
// transitions are only counted.
func NewOrderUseCase(
	repo port.OrderRepository,
	catalog port.CatalogUseCase,
	pricing port.PricingUseCase,
	events port.EventPublisher,
	node *snowflake.Node,
	cfg OrderConfig,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:    repo,
		catalog: catalog,
		pricing: pricing,
		events:  events,
		node:    node,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Quote prices items without storing anything.
func (u *OrderUseCase) Quote(ctx context.Context, items []domain.OrderItemInput, discountCode string) (domain.CostBreakdown, error) {
	return u.price(ctx, items, discountCode)
}

// CreateOrder validates and prices the items and stores a draft order that
// expires after the draft window.
func (u *OrderUseCase) CreateOrder(ctx context.Context, organizerID int64, in port.CreateOrderInput) (*domain.PromotionOrder, error) {
	b, err := u.price(ctx, in.Items, in.DiscountCode)
	if err != nil {
		return nil, err
	}

	expires := u.now().Add(u.cfg.DraftTTL)
	order := &domain.PromotionOrder{
		OrderNumber: u.orderNumber(),
		OrganizerID: organizerID,
		EventID:     in.EventID,
		Status:      domain.OrderStatusDraft,
		ExpiresAt:   &expires,
		Notes:       in.Notes,
		Metadata:    map[string]any{},
	}
	order.ApplyBreakdown(b)
	order.Items = orderItems(in.Items, b)

	if err = u.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	u.publish(ctx, domain.OrderEventCreated, order)
	return order, nil
}

// GetOrder returns an order with its items. A nil organizerID skips the
// ownership check.
func (u *OrderUseCase) GetOrder(ctx context.Context, id int64, organizerID *int64) (*domain.PromotionOrder, error) {
	o, err := u.repo.FindOrder(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// GetOrderByNumber looks an order up by its case-insensitive order number.
func (u *OrderUseCase) GetOrderByNumber(ctx context.Context, number string, organizerID *int64) (*domain.PromotionOrder, error) {
	o, err := u.repo.FindOrderByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)), organizerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// ListOrders pages an organizer's orders, optionally narrowed by status.
func (u *OrderUseCase) ListOrders(ctx context.Context, organizerID int64, filter port.OrderFilter) ([]domain.PromotionOrder, int64, error) {
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, 0, fmt.Errorf("unknown order status %q: %w", s, domain.ErrValidation)
		}
	}
	filter.Limit, filter.Offset = page(filter.Limit, filter.Offset)
	return u.repo.ListOrders(ctx, organizerID, filter)
}

// UpdateOrder replaces the items of a modifiable order and reprices it, or
// changes only the notes or discount when no items are given. A previously
// applied discount code is re-applied on repricing unless a new code is
// given.
func (u *OrderUseCase) UpdateOrder(ctx context.Context, id, organizerID int64, in port.UpdateOrderInput) (*domain.PromotionOrder, error) {
	order, err := u.GetOrder(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModified() {
		return nil, domain.ErrOrderNotModifiable
	}

	code := in.DiscountCode
	if code == "" && order.DiscountCode != nil {
		code = *order.DiscountCode
	}

	switch {
	case in.Items != nil:
		b, err := u.price(ctx, in.Items, code)
		if err != nil {
			return nil, err
		}
		order.DiscountCode = nil
		order.ApplyBreakdown(b)
		order.Items = orderItems(in.Items, b)
		if in.Notes != nil {
			order.Notes = in.Notes
		}
		err = u.repo.ReplaceOrderItems(ctx, order)
		if err != nil {
			return nil, err
		}
	case in.DiscountCode != "":
		b := domain.CostBreakdown{
			Currency:       order.Currency,
			Subtotal:       order.Subtotal,
			DiscountAmount: order.DiscountAmount,
			TaxRate:        order.TaxRate,
		}
		if order.DiscountCode != nil {
			b.DiscountCode = *order.DiscountCode
		}
		// An unknown code leaves b untouched, so its totals must already hold.
		b.Recompute()
		b, err = u.pricing.ApplyDiscountCode(ctx, b, in.DiscountCode)
		if err != nil {
			return nil, err
		}
		order.ApplyBreakdown(b)
		if in.Notes != nil {
			order.Notes = in.Notes
		}
		if err = u.repo.ReplaceOrderItems(ctx, order); err != nil {
			return nil, err
		}
	case in.Notes != nil:
		if err = u.repo.UpdateOrderNotes(ctx, id, in.Notes); err != nil {
			return nil, err
		}
	default:
		return order, nil
	}

	order, err = u.GetOrder(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, domain.OrderEventUpdated, order)
	return order, nil
}

// CancelOrder cancels a draft or pending-payment order together with its items.
func (u *OrderUseCase) CancelOrder(ctx context.Context, id, organizerID int64) (*domain.PromotionOrder, error) {
	order, err := u.GetOrder(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeCancelled() {
		return nil, domain.ErrOrderNotCancellable
	}
	if err = u.repo.CancelOrder(ctx, id); err != nil {
		return nil, err
	}
	return u.reload(ctx, id, &organizerID, domain.OrderEventCancelled)
}

// InitiateCheckout moves a draft order to pending payment. The payment window
// replaces the draft expiry.
func (u *OrderUseCase) InitiateCheckout(ctx context.Context, id, organizerID int64) (*domain.PromotionOrder, error) {
	order, err := u.GetOrder(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusDraft {
		return nil, domain.ErrOrderNotDraft
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if err = u.repo.StartCheckout(ctx, id, u.now().Add(u.cfg.PaymentTTL)); err != nil {
		return nil, err
	}
	return u.reload(ctx, id, &organizerID, domain.OrderEventCheckout)
}

// MarkOrderAsPaid records a settled payment and activates every item. It is
// called by payment callbacks, so it is not scoped to an organizer.
func (u *OrderUseCase) MarkOrderAsPaid(ctx context.Context, id int64, payment domain.PaymentDetails) (*domain.PromotionOrder, error) {
	order, err := u.GetOrder(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPendingPayment {
		return nil, domain.ErrOrderNotPendingPayment
	}
	if err = u.repo.MarkOrderPaid(ctx, id, payment, u.now()); err != nil {
		return nil, err
	}
	return u.reload(ctx, id, nil, domain.OrderEventPaid)
}

// OrderStatistics summarises an organizer's orders, spend and promotions.
func (u *OrderUseCase) OrderStatistics(ctx context.Context, organizerID int64) (*domain.OrderStatistics, error) {
	return u.repo.OrderStatistics(ctx, organizerID)
}

// ExpireOrders cancels unpaid orders whose expiry has passed. Orders paid or
// cancelled concurrently are skipped.
func (u *OrderUseCase) ExpireOrders(ctx context.Context, now time.Time) (int, error) {
	orders, err := u.repo.FindExpiredOrders(ctx, now, expiryBatchSize)
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range orders {
		o := &orders[i]
		if !o.IsExpired(now) {
			continue
		}
		err = u.repo.CancelOrder(ctx, o.ID)
		if errors.Is(err, domain.ErrOrderNotCancellable) {
			continue
		}
		if err != nil {
			return expired, fmt.Errorf("expire order %s: %w", o.OrderNumber, err)
		}
		o.Status = domain.OrderStatusCancelled
		u.publish(ctx, domain.OrderEventExpired, o)
		expired++
	}
	return expired, nil
}

func (u *OrderUseCase) reload(ctx context.Context, id int64, organizerID *int64, event domain.OrderEventType) (*domain.PromotionOrder, error) {
	order, err := u.GetOrder(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, event, order)
	return order, nil
}

// price validates the requested lines and prices them. Nothing is written.
func (u *OrderUseCase) price(ctx context.Context, items []domain.OrderItemInput, discountCode string) (domain.CostBreakdown, error) {
	if err := u.validateItems(ctx, items); err != nil {
		return domain.CostBreakdown{}, err
	}
	b, err := u.pricing.CalculateOrderCost(ctx, items)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	if discountCode == "" {
		return b, nil
	}
	return u.pricing.ApplyDiscountCode(ctx, b, discountCode)
}

func (u *OrderUseCase) validateItems(ctx context.Context, items []domain.OrderItemInput) error {
	if len(items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, it := range items {
		_, err := u.catalog.GetType(ctx, it.PromotionTypeID)
		if errors.Is(err, domain.ErrTypeNotFound) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidType, it.PromotionTypeID)
		}
		if err != nil {
			return err
		}

		ok, err := u.catalog.OptionBelongsToType(ctx, it.PromotionOptionID, it.PromotionTypeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: option %d, type %d", domain.ErrOptionTypeMismatch, it.PromotionOptionID, it.PromotionTypeID)
		}

		opt, err := u.catalog.GetOption(ctx, it.PromotionOptionID)
		if err != nil {
			return err
		}
		if it.Quantity > 0 && !opt.IsQuantityValid(it.Quantity) {
			return fmt.Errorf("%w: quantity %d is not valid for option %d, min %d, max %s",
				domain.ErrQuantityOutOfBounds, it.Quantity, opt.ID, opt.MinQuantity, bound(opt.MaxQuantity))
		}
		if it.DurationDays > 0 && !opt.IsDurationValid(it.DurationDays) {
			return fmt.Errorf("%w: duration %d is not valid for option %d, min %s, max %s",
				domain.ErrDurationOutOfBounds, it.DurationDays, opt.ID, bound(opt.MinDurationDays), bound(opt.MaxDurationDays))
		}
	}
	return nil
}

func (u *OrderUseCase) publish(ctx context.Context, t domain.OrderEventType, o *domain.PromotionOrder) {
	metrics.OrderEvents.WithLabelValues(string(t)).Inc()
	if u.events == nil {
		return
	}
	if err := u.events.PublishOrderEvent(ctx, domain.NewOrderEvent(t, o, u.now())); err != nil {
		metrics.EventPublishFailures.Inc()
		u.logger.Warn("publish order event",
			slog.String("event", string(t)),
			slog.String("order", o.OrderNumber),
			slog.Any("error", err))
	}
}

// orderNumber is unique across replicas as long as every replica runs with
// its own snowflake node id.
func (u *OrderUseCase) orderNumber() string {
	return "PRO-" + strings.ToUpper(u.node.Generate().Base36())
}

func orderItems(in []domain.OrderItemInput, b domain.CostBreakdown) []domain.PromotionOrderItem {
	items := make([]domain.PromotionOrderItem, len(in))
	for i := range in {
		items[i] = domain.NewOrderItem(in[i], b.Items[i])
	}
	return items
}

func bound(v *int) string {
	if v == nil {
		return "none"
	}
	return strconv.Itoa(*v)
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
