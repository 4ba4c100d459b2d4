package postgres

import (
	"context"
	"errors"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

const adRequestColumns = `id, order_item_id, organizer_id, event_id, platforms, campaign_name,
        campaign_objective, target_audience, budget, budget_type, duration_days, start_date, end_date,
        creative_assets, ad_copy, landing_url, notes, status, assigned_to, reviewed_at, reviewed_by,
        rejection_reason, external_campaign_ids, created_at, updated_at`

// AdRequestRepository implements port.AdRequestRepository.
type AdRequestRepository struct {
	pool *pgxpool.Pool
}

// NewAdRequestRepository returns a new repository instance.
func NewAdRequestRepository(pool *pgxpool.Pool) *AdRequestRepository {
	return &AdRequestRepository{pool: pool}
}

func (r *AdRequestRepository) CreateAdRequest(ctx context.Context, req *domain.AdCampaignRequest) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO ad_campaign_requests
            (order_item_id, organizer_id, event_id, platforms, campaign_name, campaign_objective,
             target_audience, budget, budget_type, duration_days, start_date, end_date, creative_assets,
             ad_copy, landing_url, notes, status, external_campaign_ids)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        RETURNING id, created_at, updated_at`,
		req.OrderItemID, req.OrganizerID, req.EventID, textArray(req.Platforms), req.CampaignName,
		req.CampaignObjective, req.TargetAudience, req.Budget, req.BudgetType, req.DurationDays,
		req.StartDate, req.EndDate, req.CreativeAssets, req.AdCopy, req.LandingURL, req.Notes, req.Status,
		req.ExternalCampaignIDs).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *AdRequestRepository) FindAdRequest(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adRequestColumns+`
        FROM ad_campaign_requests
        WHERE id = $1 AND ($2::bigint IS NULL OR organizer_id = $2)`, id, organizerID)
	if err != nil {
		return nil, err
	}
	req, err := pgx.CollectExactlyOneRow(rows, scanAdRequest)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *AdRequestRepository) ListAdRequests(ctx context.Context, filter port.AdRequestFilter) ([]domain.AdCampaignRequest, int64, error) {
	where := `TRUE`
	args := pgx.NamedArgs{}
	if filter.OrganizerID != nil {
		where += ` AND organizer_id = @organizer`
		args["organizer"] = *filter.OrganizerID
	}
	if len(filter.Statuses) > 0 {
		where += ` AND status = ANY(@statuses)`
		args["statuses"] = textArray(filter.Statuses)
	}
	order := `created_at DESC, id DESC`
	if filter.OldestFirst {
		order = `created_at, id`
	}

	var (
		list  []domain.AdCampaignRequest
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page := pgx.NamedArgs{"limit": filter.Limit, "offset": filter.Offset}
		for k, v := range args {
			page[k] = v
		}
		rows, err := r.pool.Query(gctx, `SELECT `+adRequestColumns+`
            FROM ad_campaign_requests
            WHERE `+where+`
            ORDER BY `+order+`
            LIMIT @limit OFFSET @offset`, page)
		if err != nil {
			return err
		}
		list, err = pgx.CollectRows(rows, scanAdRequest)
		return err
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT count(*) FROM ad_campaign_requests WHERE `+where, args).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// PatchAdRequest applies the non-nil fields of patch while the request is
// still awaiting review.
func (r *AdRequestRepository) PatchAdRequest(ctx context.Context, id, organizerID int64, patch domain.AdRequestPatch) (*domain.AdCampaignRequest, error) {
	var out domain.AdCampaignRequest
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status domain.AdRequestStatus
		err := tx.QueryRow(ctx, `
            SELECT status FROM ad_campaign_requests WHERE id = $1 AND organizer_id = $2 FOR UPDATE`,
			id, organizerID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAdRequestNotFound
		}
		if err != nil {
			return err
		}
		if !(&domain.AdCampaignRequest{Status: status}).CanBeModified() {
			return domain.ErrAdRequestNotModifiable
		}

		var audience any
		if patch.TargetAudience != nil {
			audience = patch.TargetAudience
		}
		rows, err := tx.Query(ctx, `
            UPDATE ad_campaign_requests
            SET campaign_name      = COALESCE($2, campaign_name),
                campaign_objective = COALESCE($3, campaign_objective),
                target_audience    = COALESCE($4::jsonb, target_audience),
                budget             = COALESCE($5, budget),
                ad_copy            = COALESCE($6, ad_copy),
                landing_url        = COALESCE($7, landing_url),
                notes              = COALESCE($8, notes),
                updated_at         = now()
            WHERE id = $1
            RETURNING `+adRequestColumns,
			id, patch.CampaignName, patch.CampaignObjective, audience, patch.Budget, patch.AdCopy,
			patch.LandingURL, patch.Notes)
		if err != nil {
			return err
		}
		out, err = pgx.CollectExactlyOneRow(rows, scanAdRequest)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AdRequestRepository) SetCreativeAssets(ctx context.Context, id int64, assets []domain.CreativeAsset) error {
	if assets == nil {
		assets = []domain.CreativeAsset{}
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE ad_campaign_requests SET creative_assets = $2, updated_at = now() WHERE id = $1`, id, assets)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdRequestNotFound
	}
	return nil
}

// ChangeAdRequestStatus applies change when the locked row is in one of from.
func (r *AdRequestRepository) ChangeAdRequestStatus(ctx context.Context, id int64, from []domain.AdRequestStatus, change port.AdRequestStatusChange) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status domain.AdRequestStatus
		err := tx.QueryRow(ctx, `SELECT status FROM ad_campaign_requests WHERE id = $1 FOR UPDATE`, id).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAdRequestNotFound
		}
		if err != nil {
			return err
		}
		if !slices.Contains(from, status) {
			return domain.ErrAdRequestTransition
		}

		var external any
		if change.ExternalCampaignIDs != nil {
			external = change.ExternalCampaignIDs
		}
		_, err = tx.Exec(ctx, `
            UPDATE ad_campaign_requests
            SET status                = $2,
                assigned_to           = COALESCE($3, assigned_to),
                reviewed_by           = COALESCE($4, reviewed_by),
                reviewed_at           = CASE WHEN $5 THEN now() ELSE reviewed_at END,
                rejection_reason      = COALESCE($6, rejection_reason),
                external_campaign_ids = COALESCE($7::jsonb, external_campaign_ids),
                updated_at            = now()
            WHERE id = $1`,
			id, change.Status, change.AssignedTo, change.ReviewedBy, change.MarkReviewed,
			change.RejectionReason, external)
		return err
	})
}

func (r *AdRequestRepository) AdRequestStatistics(ctx context.Context) (*domain.AdRequestStatistics, error) {
	var s domain.AdRequestStatistics
	err := r.pool.QueryRow(ctx, `
        SELECT
            count(*) FILTER (WHERE status = 'pending_review'),
            count(*) FILTER (WHERE status = 'in_progress'),
            count(*) FILTER (WHERE status = 'needs_info'),
            count(*) FILTER (WHERE status = 'approved'),
            count(*) FILTER (WHERE status = 'live'),
            count(*) FILTER (WHERE status = 'completed'),
            count(*) FILTER (WHERE status = 'rejected')
        FROM ad_campaign_requests`).
		Scan(&s.Pending, &s.InProgress, &s.NeedsInfo, &s.Approved, &s.Live, &s.Completed, &s.Rejected)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanAdRequest(row pgx.CollectableRow) (domain.AdCampaignRequest, error) {
	var (
		req       domain.AdCampaignRequest
		platforms []string
	)
	err := row.Scan(&req.ID, &req.OrderItemID, &req.OrganizerID, &req.EventID, &platforms, &req.CampaignName,
		&req.CampaignObjective, &req.TargetAudience, &req.Budget, &req.BudgetType, &req.DurationDays,
		&req.StartDate, &req.EndDate, &req.CreativeAssets, &req.AdCopy, &req.LandingURL, &req.Notes,
		&req.Status, &req.AssignedTo, &req.ReviewedAt, &req.ReviewedBy, &req.RejectionReason,
		&req.ExternalCampaignIDs, &req.CreatedAt, &req.UpdatedAt)
	req.Platforms = make([]domain.AdPlatform, len(platforms))
	for i, p := range platforms {
		req.Platforms[i] = domain.AdPlatform(p)
	}
	return req, err
}
