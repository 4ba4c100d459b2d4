package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/metrics"
)

const emailBatchSize = 100

// EmailUseCase sizes, prices and sends email marketing campaigns.
type EmailUseCase struct {
	repo     port.EmailRepository
	provider port.EmailProvider
	logger   *slog.Logger

	now func() time.Time
}

// NewEmailUseCase creates the service. Without a provider campaigns can be
// prepared but not sent.
func NewEmailUseCase(repo port.EmailRepository, provider port.EmailProvider, logger *slog.Logger) *EmailUseCase {
	return &EmailUseCase{repo: repo, provider: provider, logger: logger, now: time.Now}
}

// AudienceCount sizes an audience and prices it at the per-recipient rate of
// its size tier.
func (u *EmailUseCase) AudienceCount(ctx context.Context, organizerID int64, audience domain.AudienceType, filters *domain.AudienceFilters) (*domain.AudienceCount, error) {
	if !audience.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAudience, audience)
	}
	var f domain.AudienceFilters
	if filters != nil {
		f = *filters
	}
	count, err := u.repo.CountAudience(ctx, organizerID, audience, f)
	if err != nil {
		return nil, err
	}
	unit, err := domain.AudienceUnitPrice(audience, count)
	if err != nil {
		return nil, err
	}
	return &domain.AudienceCount{
		AudienceType:  audience,
		Count:         count,
		UnitPrice:     unit,
		EstimatedCost: domain.RoundMoney(unit.Mul(decimal.NewFromInt(count))),
		Filters:       filters,
	}, nil
}

func (u *EmailUseCase) CreateCampaign(ctx context.Context, orderItemID, organizerID int64, eventID *int64, in domain.EmailCampaignInput) (*domain.EmailCampaign, error) {
	audience, err := u.AudienceCount(ctx, organizerID, in.AudienceType, in.AudienceFilters)
	if err != nil {
		return nil, err
	}
	c := &domain.EmailCampaign{
		OrderItemID:      orderItemID,
		OrganizerID:      organizerID,
		EventID:          eventID,
		AudienceType:     in.AudienceType,
		Subject:          in.Subject,
		PreviewText:      in.PreviewText,
		HTMLContent:      in.HTMLContent,
		PlainTextContent: in.PlainTextContent,
		TotalRecipients:  audience.Count,
		ScheduledAt:      in.ScheduledAt,
		Status:           domain.EmailCampaignDraft,
	}
	if in.AudienceFilters != nil {
		c.AudienceFilters = *in.AudienceFilters
	}
	if in.ScheduledAt != nil {
		c.Status = domain.EmailCampaignScheduled
	}
	if err = u.repo.CreateEmailCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *EmailUseCase) GetCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.EmailCampaign, error) {
	c, err := u.repo.FindEmailCampaign(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrEmailCampaignNotFound
	}
	return c, nil
}

func (u *EmailUseCase) ListCampaigns(ctx context.Context, organizerID int64, limit, offset int) ([]domain.EmailCampaign, int64, error) {
	limit, offset = page(limit, offset)
	return u.repo.ListEmailCampaigns(ctx, organizerID, limit, offset)
}

// LoadRecipients snapshots the campaign audience into its recipient list.
// Running it again only adds users who joined the audience since.
func (u *EmailUseCase) LoadRecipients(ctx context.Context, id int64) (int64, error) {
	c, err := u.GetCampaign(ctx, id, nil)
	if err != nil {
		return 0, err
	}
	return u.repo.LoadRecipients(ctx, c)
}

// SendCampaign delivers the campaign to its pending recipients in batches.
// Recipients the provider did not accept are marked failed; the campaign
// completes either way.
func (u *EmailUseCase) SendCampaign(ctx context.Context, id int64) error {
	c, err := u.GetCampaign(ctx, id, nil)
	if err != nil {
		return err
	}
	if !c.CanBeSent() {
		return domain.ErrCampaignNotSendable
	}
	if u.provider == nil {
		return domain.ErrEmailProviderMissing
	}
	if err = u.repo.StartSending(ctx, id, u.now()); err != nil {
		return err
	}

	recipients, err := u.repo.PendingRecipients(ctx, id)
	if err != nil {
		return err
	}

	var sent int64
	for start := 0; start < len(recipients); start += emailBatchSize {
		batch := recipients[start:min(start+emailBatchSize, len(recipients))]
		res, err := u.provider.SendBulkEmail(ctx, batch, c.Subject, c.HTMLContent, c.PlainTextContent)
		if err != nil {
			u.logger.Warn("send email batch",
				slog.Int64("campaign_id", id),
				slog.Int("batch_start", start),
				slog.Any("error", err))
			res = domain.SendResult{Failed: len(batch)}
		}
		accepted := min(max(res.Sent, 0), len(batch))
		if err = u.mark(ctx, batch[:accepted], domain.RecipientSent); err != nil {
			return err
		}
		if err = u.mark(ctx, batch[accepted:], domain.RecipientFailed); err != nil {
			return err
		}
		sent += int64(accepted)
	}

	return u.repo.CompleteEmailCampaign(ctx, id, sent, u.now())
}

func (u *EmailUseCase) mark(ctx context.Context, rs []domain.Recipient, status domain.RecipientStatus) error {
	if len(rs) == 0 {
		return nil
	}
	ids := make([]int64, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	if err := u.repo.MarkRecipients(ctx, ids, status, u.now()); err != nil {
		return err
	}
	metrics.EmailsSent.WithLabelValues(string(status)).Add(float64(len(rs)))
	return nil
}

func (u *EmailUseCase) Analytics(ctx context.Context, id int64, organizerID *int64) (*domain.EmailAnalytics, error) {
	c, err := u.GetCampaign(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	a := c.Analytics()
	return &a, nil
}
