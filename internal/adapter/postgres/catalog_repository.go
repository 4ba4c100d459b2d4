package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-orders/internal/core/domain"
)

const (
	typeColumns = `t.id, t.slug, t.name, t.description, t.category, t.cost_model, t.icon,
        t.is_active, t.sort_order, t.created_at, t.updated_at`
	optionColumns = `o.id, o.promotion_type_id, o.code, o.name, o.description, o.cost_modifier,
        o.min_quantity, o.max_quantity, o.min_duration_days, o.max_duration_days, o.metadata,
        o.is_active, o.sort_order, o.created_at, o.updated_at`
)

// CatalogRepository implements port.CatalogRepository and
// port.DiscountRepository on top of the promotion catalog tables.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListActiveTypes(ctx context.Context) ([]domain.PromotionType, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+typeColumns+`
        FROM promotion_types t
        WHERE t.is_active
        ORDER BY t.sort_order, t.id`)
	if err != nil {
		return nil, err
	}
	types, err := pgx.CollectRows(rows, scanType)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return types, nil
	}

	ids := make([]int64, len(types))
	for i, t := range types {
		ids[i] = t.ID
	}
	options, err := r.optionsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range types {
		types[i].Options = options[types[i].ID]
	}
	return types, nil
}

func (r *CatalogRepository) GetType(ctx context.Context, id int64) (*domain.PromotionType, error) {
	return r.getType(ctx, `t.id = $1`, id)
}

func (r *CatalogRepository) GetTypeBySlug(ctx context.Context, slug string) (*domain.PromotionType, error) {
	return r.getType(ctx, `t.slug = $1`, slug)
}

func (r *CatalogRepository) getType(ctx context.Context, where string, arg any) (*domain.PromotionType, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+typeColumns+`
        FROM promotion_types t
        WHERE t.is_active AND `+where, arg)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	options, err := r.optionsOf(ctx, []int64{t.ID})
	if err != nil {
		return nil, err
	}
	t.Options = options[t.ID]
	return &t, nil
}

func (r *CatalogRepository) GetOption(ctx context.Context, id int64) (*domain.PromotionOption, error) {
	return r.getOption(ctx, `o.id = $1`, id)
}

func (r *CatalogRepository) GetOptionByCode(ctx context.Context, typeID int64, code string) (*domain.PromotionOption, error) {
	return r.getOption(ctx, `o.promotion_type_id = $1 AND o.code = $2`, typeID, code)
}

func (r *CatalogRepository) getOption(ctx context.Context, where string, args ...any) (*domain.PromotionOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+optionColumns+`
        FROM promotion_options o
        WHERE o.is_active AND `+where, args...)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOption)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tiers, err := r.tiersOf(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Pricing = tiers[o.ID]
	return &o, nil
}

// optionsOf loads the active options of the given types with their tiers,
// grouped by type id.
func (r *CatalogRepository) optionsOf(ctx context.Context, typeIDs []int64) (map[int64][]domain.PromotionOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+optionColumns+`
        FROM promotion_options o
        WHERE o.is_active AND o.promotion_type_id = ANY($1)
        ORDER BY o.sort_order, o.id`, typeIDs)
	if err != nil {
		return nil, err
	}
	options, err := pgx.CollectRows(rows, scanOption)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	tiers, err := r.tiersOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]domain.PromotionOption, len(typeIDs))
	for _, o := range options {
		o.Pricing = tiers[o.ID]
		out[o.PromotionTypeID] = append(out[o.PromotionTypeID], o)
	}
	return out, nil
}

func (r *CatalogRepository) tiersOf(ctx context.Context, optionIDs []int64) (map[int64][]domain.PromotionPricing, error) {
	out := make(map[int64][]domain.PromotionPricing, len(optionIDs))
	if len(optionIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, option_id, min_quantity, max_quantity, unit_price, currency, valid_from, valid_until
        FROM promotion_pricing
        WHERE option_id = ANY($1)
        ORDER BY option_id, min_quantity`, optionIDs)
	if err != nil {
		return nil, err
	}
	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PromotionPricing, error) {
		var p domain.PromotionPricing
		err := row.Scan(&p.ID, &p.OptionID, &p.MinQuantity, &p.MaxQuantity, &p.UnitPrice, &p.Currency, &p.ValidFrom, &p.ValidUntil)
		return p, err
	})
	if err != nil {
		return nil, err
	}
	for _, t := range tiers {
		out[t.OptionID] = append(out[t.OptionID], t)
	}
	return out, nil
}

// FindDiscountCode returns an active discount code, or (nil, nil).
func (r *CatalogRepository) FindDiscountCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	var d domain.DiscountCode
	err := r.pool.QueryRow(ctx, `
        SELECT code, kind, value, is_active
        FROM promotion_discount_codes
        WHERE code = $1 AND is_active`, code).
		Scan(&d.Code, &d.Kind, &d.Value, &d.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanType(row pgx.CollectableRow) (domain.PromotionType, error) {
	var t domain.PromotionType
	err := row.Scan(&t.ID, &t.Slug, &t.Name, &t.Description, &t.Category, &t.CostModel, &t.Icon,
		&t.IsActive, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanOption(row pgx.CollectableRow) (domain.PromotionOption, error) {
	var o domain.PromotionOption
	err := row.Scan(&o.ID, &o.PromotionTypeID, &o.Code, &o.Name, &o.Description, &o.CostModifier,
		&o.MinQuantity, &o.MaxQuantity, &o.MinDurationDays, &o.MaxDurationDays, &o.Metadata,
		&o.IsActive, &o.SortOrder, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
