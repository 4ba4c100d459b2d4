package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"promo-orders/internal/core/domain"
)

const emailCampaignColumns = `id, order_item_id, organizer_id, event_id, audience_type, audience_filters,
        subject, preview_text, template_id, html_content, plain_text_content, total_recipients, sent_count,
        delivered_count, opened_count, clicked_count, bounced_count, unsubscribed_count, scheduled_at,
        started_at, completed_at, status, created_at, updated_at`

const subscribedUser = `u.email_subscribed AND u.status = 'active' AND u.email IS NOT NULL`

// EmailRepository implements port.EmailRepository. Audiences are resolved
// against the platform users, events and tickets tables.
type EmailRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewEmailRepository returns a new repository instance.
func NewEmailRepository(pool *pgxpool.Pool) *EmailRepository {
	return &EmailRepository{pool: pool, now: time.Now}
}

// audienceQuery selects the distinct subscribed users of an audience.
func (r *EmailRepository) audienceQuery(organizerID int64, audience domain.AudienceType, f domain.AudienceFilters) (string, pgx.NamedArgs, error) {
	args := pgx.NamedArgs{}
	switch audience {
	case domain.AudienceWholeDatabase:
		return `SELECT u.id, u.email, u.first_name, u.last_name FROM users u WHERE ` + subscribedUser, args, nil

	case domain.AudienceFilteredDatabase:
		q := `SELECT u.id, u.email, u.first_name, u.last_name FROM users u WHERE ` + subscribedUser
		if len(f.Cities) > 0 {
			q += ` AND u.city = ANY(@cities)`
			args["cities"] = f.Cities
		}
		if len(f.Countries) > 0 {
			q += ` AND u.country = ANY(@countries)`
			args["countries"] = f.Countries
		}
		if f.AgeRange != nil {
			year := r.now().Year()
			q += ` AND EXTRACT(YEAR FROM u.birth_date) BETWEEN @min_birth_year AND @max_birth_year`
			args["min_birth_year"] = year - f.AgeRange.Max
			args["max_birth_year"] = year - f.AgeRange.Min
		}
		if len(f.Gender) > 0 {
			q += ` AND u.gender = ANY(@genders)`
			args["genders"] = f.Gender
		}
		if len(f.Interests) > 0 {
			q += ` AND u.interests && @interests::text[]`
			args["interests"] = f.Interests
		}
		if len(f.EventCategories) > 0 {
			q += ` AND EXISTS (
                SELECT 1 FROM tickets t JOIN events e ON e.id = t.event_id
                WHERE t.user_id = u.id AND e.category = ANY(@categories))`
			args["categories"] = f.EventCategories
		}
		if f.PurchasedInLastDays > 0 {
			q += ` AND EXISTS (
                SELECT 1 FROM tickets t
                WHERE t.user_id = u.id AND t.created_at >= now() - make_interval(days => @days))`
			args["days"] = f.PurchasedInLastDays
		}
		return q, args, nil

	case domain.AudiencePastClients:
		q := `SELECT DISTINCT u.id, u.email, u.first_name, u.last_name
            FROM users u
            JOIN tickets t ON t.user_id = u.id
            JOIN events e ON e.id = t.event_id
            WHERE e.organizer_id = @organizer AND ` + subscribedUser
		args["organizer"] = organizerID
		if len(f.EventIDs) > 0 {
			q += ` AND e.id = ANY(@event_ids)`
			args["event_ids"] = f.EventIDs
		}
		return q, args, nil
	}
	return "", nil, domain.ErrInvalidAudience
}

func (r *EmailRepository) CountAudience(ctx context.Context, organizerID int64, audience domain.AudienceType, f domain.AudienceFilters) (int64, error) {
	q, args, err := r.audienceQuery(organizerID, audience, f)
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.pool.QueryRow(ctx, `SELECT count(DISTINCT a.id) FROM (`+q+`) a`, args).Scan(&n)
	return n, err
}

func (r *EmailRepository) CreateEmailCampaign(ctx context.Context, c *domain.EmailCampaign) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO email_campaigns
            (order_item_id, organizer_id, event_id, audience_type, audience_filters, subject, preview_text,
             template_id, html_content, plain_text_content, total_recipients, scheduled_at, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`,
		c.OrderItemID, c.OrganizerID, c.EventID, c.AudienceType, c.AudienceFilters, c.Subject, c.PreviewText,
		c.TemplateID, c.HTMLContent, c.PlainTextContent, c.TotalRecipients, c.ScheduledAt, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *EmailRepository) FindEmailCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.EmailCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+emailCampaignColumns+`
        FROM email_campaigns
        WHERE id = $1 AND ($2::bigint IS NULL OR organizer_id = $2)`, id, organizerID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanEmailCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *EmailRepository) ListEmailCampaigns(ctx context.Context, organizerID int64, limit, offset int) ([]domain.EmailCampaign, int64, error) {
	var (
		list  []domain.EmailCampaign
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, `SELECT `+emailCampaignColumns+`
            FROM email_campaigns
            WHERE organizer_id = $1
            ORDER BY created_at DESC, id DESC
            LIMIT $2 OFFSET $3`, organizerID, limit, offset)
		if err != nil {
			return err
		}
		list, err = pgx.CollectRows(rows, scanEmailCampaign)
		return err
	})
	g.Go(func() error {
		return r.pool.QueryRow(gctx, `SELECT count(*) FROM email_campaigns WHERE organizer_id = $1`, organizerID).
			Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// LoadRecipients snapshots the audience into the recipient list, skipping
// users already on it, and refreshes the recipient total.
func (r *EmailRepository) LoadRecipients(ctx context.Context, c *domain.EmailCampaign) (int64, error) {
	q, args, err := r.audienceQuery(c.OrganizerID, c.AudienceType, c.AudienceFilters)
	if err != nil {
		return 0, err
	}
	args["campaign"] = c.ID

	var n int64
	err = inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO email_campaign_recipients (campaign_id, user_id, email, first_name, last_name, status)
            SELECT @campaign, a.id, a.email, a.first_name, a.last_name, 'pending'
            FROM (`+q+`) a
            ON CONFLICT (campaign_id, user_id) DO NOTHING`, args)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
            UPDATE email_campaigns
            SET total_recipients = (SELECT count(*) FROM email_campaign_recipients WHERE campaign_id = $1),
                updated_at = now()
            WHERE id = $1
            RETURNING total_recipients`, c.ID).Scan(&n)
	})
	return n, err
}

func (r *EmailRepository) StartSending(ctx context.Context, id int64, at time.Time) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status domain.EmailCampaignStatus
		err := tx.QueryRow(ctx, `SELECT status FROM email_campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEmailCampaignNotFound
		}
		if err != nil {
			return err
		}
		if !(&domain.EmailCampaign{Status: status}).CanBeSent() {
			return domain.ErrCampaignNotSendable
		}
		_, err = tx.Exec(ctx, `
            UPDATE email_campaigns SET status = $2, started_at = $3, updated_at = now() WHERE id = $1`,
			id, domain.EmailCampaignSending, at)
		return err
	})
}

func (r *EmailRepository) PendingRecipients(ctx context.Context, campaignID int64) ([]domain.Recipient, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, user_id, email, first_name, last_name, status, sent_at
        FROM email_campaign_recipients
        WHERE campaign_id = $1 AND status = 'pending'
        ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recipient, error) {
		var rc domain.Recipient
		err := row.Scan(&rc.ID, &rc.UserID, &rc.Email, &rc.FirstName, &rc.LastName, &rc.Status, &rc.SentAt)
		return rc, err
	})
}

func (r *EmailRepository) MarkRecipients(ctx context.Context, ids []int64, status domain.RecipientStatus, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE email_campaign_recipients
        SET status = $2::text,
            sent_at = CASE WHEN $2::text = 'sent' THEN $3 ELSE sent_at END
        WHERE id = ANY($1)`, ids, status, at)
	return err
}

func (r *EmailRepository) CompleteEmailCampaign(ctx context.Context, id int64, sent int64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE email_campaigns
        SET status = $2, sent_count = $3, completed_at = $4, updated_at = now()
        WHERE id = $1`, id, domain.EmailCampaignCompleted, sent, at)
	return err
}

func scanEmailCampaign(row pgx.CollectableRow) (domain.EmailCampaign, error) {
	var c domain.EmailCampaign
	err := row.Scan(&c.ID, &c.OrderItemID, &c.OrganizerID, &c.EventID, &c.AudienceType, &c.AudienceFilters,
		&c.Subject, &c.PreviewText, &c.TemplateID, &c.HTMLContent, &c.PlainTextContent, &c.TotalRecipients,
		&c.SentCount, &c.DeliveredCount, &c.OpenedCount, &c.ClickedCount, &c.BouncedCount,
		&c.UnsubscribedCount, &c.ScheduledAt, &c.StartedAt, &c.CompletedAt, &c.Status, &c.CreatedAt,
		&c.UpdatedAt)
	return c, err
}
