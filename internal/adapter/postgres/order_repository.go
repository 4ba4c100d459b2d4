package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

const orderColumns = `id, order_number, organizer_id, event_id, status, currency, subtotal,
        discount_amount, discount_code, tax_rate, tax_amount, total, expires_at, notes,
        payment_id, payment_provider, payment_method, paid_at, metadata, created_at, updated_at`

var unpaidStatuses = []string{string(domain.OrderStatusDraft), string(domain.OrderStatusPendingPayment)}

// OrderRepository implements port.OrderRepository. Every status change
// locks the order row and re-checks the source status before writing.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a new repository instance.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreateOrder inserts the order and its items in one transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.PromotionOrder) error {
	if o.Metadata == nil {
		o.Metadata = map[string]any{}
	}
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO promotion_orders
                (order_number, organizer_id, event_id, status, currency, subtotal, discount_amount,
                 discount_code, tax_rate, tax_amount, total, expires_at, notes, metadata)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
            RETURNING id, created_at, updated_at`,
			o.OrderNumber, o.OrganizerID, o.EventID, o.Status, o.Currency, o.Subtotal, o.DiscountAmount,
			o.DiscountCode, o.TaxRate, o.TaxAmount, o.Total, o.ExpiresAt, o.Notes, o.Metadata).
			Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}
		return insertItems(ctx, tx, o.ID, o.Items)
	})
}

func (r *OrderRepository) FindOrder(ctx context.Context, id int64, organizerID *int64) (*domain.PromotionOrder, error) {
	return r.findOrder(ctx, `id = $1`, id, organizerID)
}

func (r *OrderRepository) FindOrderByNumber(ctx context.Context, number string, organizerID *int64) (*domain.PromotionOrder, error) {
	return r.findOrder(ctx, `order_number = $1`, number, organizerID)
}

func (r *OrderRepository) findOrder(ctx context.Context, where string, key any, organizerID *int64) (*domain.PromotionOrder, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+`
        FROM promotion_orders
        WHERE `+where+` AND ($2::bigint IS NULL OR organizer_id = $2)`, key, organizerID)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	items, err := itemsOf(ctx, r.pool, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// ListOrders returns a page of orders without items and the filtered total.
func (r *OrderRepository) ListOrders(ctx context.Context, organizerID int64, filter port.OrderFilter) ([]domain.PromotionOrder, int64, error) {
	where := `organizer_id = @organizer`
	args := pgx.NamedArgs{"organizer": organizerID}
	if len(filter.Statuses) > 0 {
		where += ` AND status = ANY(@statuses)`
		args["statuses"] = textArray(filter.Statuses)
	}

	var (
		orders []domain.PromotionOrder
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page := pgx.NamedArgs{"limit": filter.Limit, "offset": filter.Offset}
		for k, v := range args {
			page[k] = v
		}
		rows, err := r.pool.Query(gctx, `SELECT `+orderColumns+`
            FROM promotion_orders
            WHERE `+where+`
            ORDER BY created_at DESC, id DESC
            LIMIT @limit OFFSET @offset`, page)
		if err != nil {
			return err
		}
		orders, err = pgx.CollectRows(rows, scanOrder)
		return err
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT count(*) FROM promotion_orders WHERE `+where, args).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ReplaceOrderItems rewrites the priced fields, notes and lines of a
// modifiable order.
func (r *OrderRepository) ReplaceOrderItems(ctx context.Context, o *domain.PromotionOrder) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockOrder(ctx, tx, o.ID, (*domain.PromotionOrder).CanBeModified, domain.ErrOrderNotModifiable); err != nil {
			return err
		}
		err := tx.QueryRow(ctx, `
            UPDATE promotion_orders
            SET currency = $2, subtotal = $3, discount_amount = $4, discount_code = $5, tax_rate = $6,
                tax_amount = $7, total = $8, notes = $9, updated_at = now()
            WHERE id = $1
            RETURNING updated_at`,
			o.ID, o.Currency, o.Subtotal, o.DiscountAmount, o.DiscountCode, o.TaxRate,
			o.TaxAmount, o.Total, o.Notes).
			Scan(&o.UpdatedAt)
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `DELETE FROM promotion_order_items WHERE order_id = $1`, o.ID); err != nil {
			return err
		}
		return insertItems(ctx, tx, o.ID, o.Items)
	})
}

func (r *OrderRepository) UpdateOrderNotes(ctx context.Context, id int64, notes *string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockOrder(ctx, tx, id, (*domain.PromotionOrder).CanBeModified, domain.ErrOrderNotModifiable); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE promotion_orders SET notes = $2, updated_at = now() WHERE id = $1`, id, notes)
		return err
	})
}

// CancelOrder cancels the order and every one of its items.
func (r *OrderRepository) CancelOrder(ctx context.Context, id int64) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockOrder(ctx, tx, id, (*domain.PromotionOrder).CanBeCancelled, domain.ErrOrderNotCancellable); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE promotion_orders SET status = $2, updated_at = now() WHERE id = $1`,
			id, domain.OrderStatusCancelled)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE promotion_order_items SET status = $2, updated_at = now() WHERE order_id = $1`,
			id, domain.ItemStatusCancelled)
		return err
	})
}

func (r *OrderRepository) StartCheckout(ctx context.Context, id int64, expiresAt time.Time) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		isDraft := func(o *domain.PromotionOrder) bool { return o.Status == domain.OrderStatusDraft }
		if err := lockOrder(ctx, tx, id, isDraft, domain.ErrOrderNotDraft); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            UPDATE promotion_orders SET status = $2, expires_at = $3, updated_at = now() WHERE id = $1`,
			id, domain.OrderStatusPendingPayment, expiresAt)
		return err
	})
}

// MarkOrderPaid records the payment and activates every item.
func (r *OrderRepository) MarkOrderPaid(ctx context.Context, id int64, p domain.PaymentDetails, paidAt time.Time) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		isPending := func(o *domain.PromotionOrder) bool { return o.Status == domain.OrderStatusPendingPayment }
		if err := lockOrder(ctx, tx, id, isPending, domain.ErrOrderNotPendingPayment); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            UPDATE promotion_orders
            SET status = $2, payment_id = $3, payment_provider = $4, payment_method = $5, paid_at = $6,
                updated_at = now()
            WHERE id = $1`,
			id, domain.OrderStatusPaid, p.PaymentID, p.PaymentProvider, p.PaymentMethod, paidAt)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE promotion_order_items SET status = $2, updated_at = now() WHERE order_id = $1`,
			id, domain.ItemStatusActive)
		return err
	})
}

func (r *OrderRepository) OrderStatistics(ctx context.Context, organizerID int64) (*domain.OrderStatistics, error) {
	var s domain.OrderStatistics
	err := r.pool.QueryRow(ctx, `
        SELECT
            count(*),
            COALESCE(sum(total) FILTER (WHERE status IN ('paid', 'processing', 'active', 'completed')), 0),
            count(*) FILTER (WHERE status = 'active'),
            count(*) FILTER (WHERE status = 'completed')
        FROM promotion_orders
        WHERE organizer_id = $1`, organizerID).
		Scan(&s.TotalOrders, &s.TotalSpent, &s.ActivePromotions, &s.CompletedPromotions)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *OrderRepository) FindExpiredOrders(ctx context.Context, now time.Time, limit int) ([]domain.PromotionOrder, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+`
        FROM promotion_orders
        WHERE status = ANY($1) AND expires_at < $2
        ORDER BY expires_at
        LIMIT $3`, unpaidStatuses, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOrder)
}

// lockOrder locks the order row and checks allowed against its current
// status, returning guard when the check fails.
func lockOrder(ctx context.Context, tx pgx.Tx, id int64, allowed func(*domain.PromotionOrder) bool, guard error) error {
	o := domain.PromotionOrder{ID: id}
	err := tx.QueryRow(ctx, `SELECT status FROM promotion_orders WHERE id = $1 FOR UPDATE`, id).Scan(&o.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if !allowed(&o) {
		return guard
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.PromotionOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range items {
		it := &items[i]
		it.OrderID = orderID
		if it.Configuration == nil {
			it.Configuration = map[string]any{}
		}
		batch.Queue(`
            INSERT INTO promotion_order_items
                (order_id, promotion_type_id, promotion_option_id, quantity, unit_price, total_price,
                 start_date, end_date, duration_days, status, configuration)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
            RETURNING id, created_at, updated_at`,
			orderID, it.PromotionTypeID, it.PromotionOptionID, it.Quantity, it.UnitPrice, it.TotalPrice,
			it.StartDate, it.EndDate, it.DurationDays, it.Status, it.Configuration).
			QueryRow(func(row pgx.Row) error {
				return row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
			})
	}
	return tx.SendBatch(ctx, batch).Close()
}

// itemsOf loads the items of the given orders with their catalog names,
// grouped by order id.
func itemsOf(ctx context.Context, pool *pgxpool.Pool, orderIDs []int64) (map[int64][]domain.PromotionOrderItem, error) {
	rows, err := pool.Query(ctx, `
        SELECT i.id, i.order_id, i.promotion_type_id, i.promotion_option_id, i.quantity, i.unit_price,
               i.total_price, i.start_date, i.end_date, i.duration_days, i.status, i.configuration,
               i.created_at, i.updated_at, t.name, t.slug, o.name, o.code
        FROM promotion_order_items i
        JOIN promotion_types t ON t.id = i.promotion_type_id
        JOIN promotion_options o ON o.id = i.promotion_option_id
        WHERE i.order_id = ANY($1)
        ORDER BY i.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PromotionOrderItem, error) {
		var it domain.PromotionOrderItem
		err := row.Scan(&it.ID, &it.OrderID, &it.PromotionTypeID, &it.PromotionOptionID, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.StartDate, &it.EndDate, &it.DurationDays, &it.Status,
			&it.Configuration, &it.CreatedAt, &it.UpdatedAt, &it.TypeName, &it.TypeSlug, &it.OptionName,
			&it.OptionCode)
		return it, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]domain.PromotionOrderItem, len(orderIDs))
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}

func scanOrder(row pgx.CollectableRow) (domain.PromotionOrder, error) {
	var o domain.PromotionOrder
	err := row.Scan(&o.ID, &o.OrderNumber, &o.OrganizerID, &o.EventID, &o.Status, &o.Currency, &o.Subtotal,
		&o.DiscountAmount, &o.DiscountCode, &o.TaxRate, &o.TaxAmount, &o.Total, &o.ExpiresAt, &o.Notes,
		&o.PaymentID, &o.PaymentProvider, &o.PaymentMethod, &o.PaidAt, &o.Metadata, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
