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

const (
	connectionColumns = `id, organizer_id, platform, account_id, account_name, access_token, refresh_token,
        token_expires_at, is_active, connected_at, last_synced_at, metadata, created_at, updated_at`
	trackedColumns = `id, order_item_id, connection_id, organizer_id, platform, external_campaign_id,
        campaign_name, campaign_status, objective, budget, budget_type, start_date, end_date, impressions,
        reach, clicks, conversions, spend, cpc, cpm, ctr, conversion_rate, roas, last_synced_at,
        tracking_data, created_at, updated_at`
)

// TrackingRepository implements port.TrackingRepository.
type TrackingRepository struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository returns a new repository instance.
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

// UpsertConnection stores the connection keyed by organizer and platform,
// reactivating a previously disconnected one.
func (r *TrackingRepository) UpsertConnection(ctx context.Context, c *domain.AdTrackingConnection) error {
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}
	return r.pool.QueryRow(ctx, `
        INSERT INTO ad_tracking_connections
            (organizer_id, platform, account_id, account_name, access_token, refresh_token,
             token_expires_at, is_active, connected_at, metadata)
        VALUES ($1,$2,$3,$4,$5,$6,$7,true,$8,$9)
        ON CONFLICT (organizer_id, platform) DO UPDATE
        SET account_id       = EXCLUDED.account_id,
            account_name     = EXCLUDED.account_name,
            access_token     = EXCLUDED.access_token,
            refresh_token    = EXCLUDED.refresh_token,
            token_expires_at = EXCLUDED.token_expires_at,
            is_active        = true,
            connected_at     = EXCLUDED.connected_at,
            updated_at       = now()
        RETURNING id, created_at, updated_at`,
		c.OrganizerID, c.Platform, c.AccountID, c.AccountName, c.AccessToken, c.RefreshToken,
		c.TokenExpiresAt, c.ConnectedAt, c.Metadata).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *TrackingRepository) DeactivateConnection(ctx context.Context, organizerID int64, platform domain.AdPlatform) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE ad_tracking_connections SET is_active = false, updated_at = now()
        WHERE organizer_id = $1 AND platform = $2 AND is_active`, organizerID, platform)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConnectionNotFound
	}
	return nil
}

func (r *TrackingRepository) ActiveConnections(ctx context.Context, organizerID int64) ([]domain.AdTrackingConnection, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+connectionColumns+`
        FROM ad_tracking_connections
        WHERE organizer_id = $1 AND is_active
        ORDER BY platform`, organizerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanConnection)
}

func (r *TrackingRepository) ActiveConnection(ctx context.Context, organizerID int64, platform domain.AdPlatform) (*domain.AdTrackingConnection, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+connectionColumns+`
        FROM ad_tracking_connections
        WHERE organizer_id = $1 AND platform = $2 AND is_active`, organizerID, platform)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanConnection)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertTrackedCampaigns stores the synced campaigns and stamps the
// connection in one transaction.
func (r *TrackingRepository) UpsertTrackedCampaigns(ctx context.Context, connID int64, campaigns []domain.AdCampaignTracking, at time.Time) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range campaigns {
			batch.Queue(`
                INSERT INTO ad_campaign_tracking
                    (connection_id, organizer_id, platform, external_campaign_id, campaign_name,
                     campaign_status, objective, budget, budget_type, start_date, end_date, impressions,
                     reach, clicks, conversions, spend, cpc, cpm, ctr, conversion_rate, roas,
                     last_synced_at, tracking_data)
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
                ON CONFLICT (platform, external_campaign_id) DO UPDATE
                SET campaign_name   = EXCLUDED.campaign_name,
                    campaign_status = EXCLUDED.campaign_status,
                    objective       = EXCLUDED.objective,
                    budget          = EXCLUDED.budget,
                    budget_type     = EXCLUDED.budget_type,
                    start_date      = EXCLUDED.start_date,
                    end_date        = EXCLUDED.end_date,
                    impressions     = EXCLUDED.impressions,
                    reach           = EXCLUDED.reach,
                    clicks          = EXCLUDED.clicks,
                    conversions     = EXCLUDED.conversions,
                    spend           = EXCLUDED.spend,
                    cpc             = EXCLUDED.cpc,
                    cpm             = EXCLUDED.cpm,
                    ctr             = EXCLUDED.ctr,
                    conversion_rate = EXCLUDED.conversion_rate,
                    roas            = EXCLUDED.roas,
                    last_synced_at  = EXCLUDED.last_synced_at,
                    tracking_data   = EXCLUDED.tracking_data,
                    updated_at      = now()`,
				connID, c.OrganizerID, c.Platform, c.ExternalCampaignID, c.CampaignName, c.CampaignStatus,
				c.Objective, c.Budget, c.BudgetType, c.StartDate, c.EndDate, c.Impressions, c.Reach, c.Clicks,
				c.Conversions, c.Spend, c.CPC, c.CPM, c.CTR, c.ConversionRate, c.ROAS, at, c.TrackingData)
		}
		batch.Queue(`UPDATE ad_tracking_connections SET last_synced_at = $2, updated_at = now() WHERE id = $1`,
			connID, at)
		return tx.SendBatch(ctx, batch).Close()
	})
}

func (r *TrackingRepository) ListTrackedCampaigns(ctx context.Context, organizerID int64, filter port.TrackedCampaignFilter) ([]domain.AdCampaignTracking, int64, error) {
	where := `organizer_id = @organizer`
	args := pgx.NamedArgs{"organizer": organizerID}
	if filter.Platform != nil {
		where += ` AND platform = @platform`
		args["platform"] = string(*filter.Platform)
	}
	if filter.Status != "" {
		where += ` AND campaign_status = @status`
		args["status"] = filter.Status
	}

	var (
		list  []domain.AdCampaignTracking
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page := pgx.NamedArgs{"limit": filter.Limit, "offset": filter.Offset}
		for k, v := range args {
			page[k] = v
		}
		rows, err := r.pool.Query(gctx, `SELECT `+trackedColumns+`
            FROM ad_campaign_tracking
            WHERE `+where+`
            ORDER BY updated_at DESC, id DESC
            LIMIT @limit OFFSET @offset`, page)
		if err != nil {
			return err
		}
		list, err = pgx.CollectRows(rows, scanTracked)
		return err
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT count(*) FROM ad_campaign_tracking WHERE `+where, args).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *TrackingRepository) FindTrackedCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignTracking, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+trackedColumns+`
        FROM ad_campaign_tracking
        WHERE id = $1 AND ($2::bigint IS NULL OR organizer_id = $2)`, id, organizerID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanTracked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// PlatformTotals sums tracked campaign counters per platform.
func (r *TrackingRepository) PlatformTotals(ctx context.Context, organizerID int64, platform *domain.AdPlatform) ([]domain.PlatformAnalytics, error) {
	var p *string
	if platform != nil {
		s := string(*platform)
		p = &s
	}
	rows, err := r.pool.Query(ctx, `
        SELECT platform, COALESCE(sum(impressions), 0), COALESCE(sum(clicks), 0),
               COALESCE(sum(conversions), 0), COALESCE(sum(spend), 0)
        FROM ad_campaign_tracking
        WHERE organizer_id = $1 AND ($2::text IS NULL OR platform = $2)
        GROUP BY platform
        ORDER BY platform`, organizerID, p)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlatformAnalytics, error) {
		var a domain.PlatformAnalytics
		err := row.Scan(&a.Platform, &a.Impressions, &a.Clicks, &a.Conversions, &a.Spend)
		return a, err
	})
}

func scanConnection(row pgx.CollectableRow) (domain.AdTrackingConnection, error) {
	var c domain.AdTrackingConnection
	err := row.Scan(&c.ID, &c.OrganizerID, &c.Platform, &c.AccountID, &c.AccountName, &c.AccessToken,
		&c.RefreshToken, &c.TokenExpiresAt, &c.IsActive, &c.ConnectedAt, &c.LastSyncedAt, &c.Metadata,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanTracked(row pgx.CollectableRow) (domain.AdCampaignTracking, error) {
	var c domain.AdCampaignTracking
	err := row.Scan(&c.ID, &c.OrderItemID, &c.ConnectionID, &c.OrganizerID, &c.Platform,
		&c.ExternalCampaignID, &c.CampaignName, &c.CampaignStatus, &c.Objective, &c.Budget, &c.BudgetType,
		&c.StartDate, &c.EndDate, &c.Impressions, &c.Reach, &c.Clicks, &c.Conversions, &c.Spend, &c.CPC,
		&c.CPM, &c.CTR, &c.ConversionRate, &c.ROAS, &c.LastSyncedAt, &c.TrackingData, &c.CreatedAt,
		&c.UpdatedAt)
	return c, err
}
