package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/metrics"
)

var reviewable = []domain.AdRequestStatus{
	domain.AdRequestPendingReview,
	domain.AdRequestInProgress,
	domain.AdRequestNeedsInfo,
}

// AdRequestUseCase handles ad campaign requests from organizers and their
// review by the platform team.
type AdRequestUseCase struct {
	repo     port.AdRequestRepository
	notifier port.Notifier
	logger   *slog.Logger

	now func() time.Time
}

// NewAdRequestUseCase creates the service. notifier may be nil.
func NewAdRequestUseCase(repo port.AdRequestRepository, notifier port.Notifier, logger *slog.Logger) *AdRequestUseCase {
	return &AdRequestUseCase{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

func (u *AdRequestUseCase) Create(ctx context.Context, orderItemID, organizerID int64, eventID *int64, in domain.AdRequestInput) (*domain.AdCampaignRequest, error) {
	if len(in.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}
	for _, p := range in.Platforms {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, p)
		}
	}
	if !in.Budget.IsPositive() {
		return nil, domain.ErrInvalidBudget
	}

	r := &domain.AdCampaignRequest{
		OrderItemID:         orderItemID,
		OrganizerID:         organizerID,
		EventID:             eventID,
		Platforms:           in.Platforms,
		CampaignName:        in.CampaignName,
		CampaignObjective:   in.CampaignObjective,
		Budget:              domain.RoundMoney(in.Budget),
		BudgetType:          in.BudgetType,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		CreativeAssets:      []domain.CreativeAsset{},
		AdCopy:              in.AdCopy,
		LandingURL:          in.LandingURL,
		Notes:               in.Notes,
		Status:              domain.AdRequestPendingReview,
		ExternalCampaignIDs: map[string]string{},
	}
	if r.BudgetType == "" {
		r.BudgetType = "total"
	}
	if in.TargetAudience != nil {
		r.TargetAudience = *in.TargetAudience
	}
	if in.DurationDays > 0 {
		d := in.DurationDays
		r.DurationDays = &d
		if r.StartDate != nil && r.EndDate == nil {
			end := r.StartDate.AddDate(0, 0, d-1)
			r.EndDate = &end
		}
	}

	if err := u.repo.CreateAdRequest(ctx, r); err != nil {
		return nil, err
	}
	metrics.AdRequestTransitions.WithLabelValues(string(r.Status)).Inc()

	if u.notifier != nil {
		err := u.notifier.NotifyTeam(ctx, "New Ad Campaign Request", map[string]any{
			"request_id":   r.ID,
			"organizer_id": organizerID,
			"event_id":     eventID,
			"platforms":    r.Platforms,
			"budget":       r.Budget.String(),
		})
		if err != nil {
			u.logger.Warn("notify team", slog.Int64("request_id", r.ID), slog.Any("error", err))
		}
	}
	return r, nil
}

func (u *AdRequestUseCase) Get(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignRequest, error) {
	r, err := u.repo.FindAdRequest(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrAdRequestNotFound
	}
	return r, nil
}

func (u *AdRequestUseCase) ListByOrganizer(ctx context.Context, organizerID int64, status domain.AdRequestStatus, limit, offset int) ([]domain.AdCampaignRequest, int64, error) {
	filter := port.AdRequestFilter{OrganizerID: &organizerID}
	if status != "" {
		filter.Statuses = []domain.AdRequestStatus{status}
	}
	filter.Limit, filter.Offset = page(limit, offset)
	return u.repo.ListAdRequests(ctx, filter)
}

// Update applies an organizer's edits while the request awaits review.
func (u *AdRequestUseCase) Update(ctx context.Context, id, organizerID int64, patch domain.AdRequestPatch) (*domain.AdCampaignRequest, error) {
	r, err := u.Get(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if !r.CanBeModified() {
		return nil, domain.ErrAdRequestNotModifiable
	}
	if patch.Empty() {
		return r, nil
	}
	if patch.Budget != nil {
		if !patch.Budget.IsPositive() {
			return nil, domain.ErrInvalidBudget
		}
		b := domain.RoundMoney(*patch.Budget)
		patch.Budget = &b
	}
	return u.repo.PatchAdRequest(ctx, id, organizerID, patch)
}

func (u *AdRequestUseCase) AddCreativeAsset(ctx context.Context, id, organizerID int64, asset domain.CreativeAsset) (*domain.AdCampaignRequest, error) {
	r, err := u.Get(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if asset.UploadedAt.IsZero() {
		asset.UploadedAt = u.now()
	}
	if err = u.repo.SetCreativeAssets(ctx, id, append(r.CreativeAssets, asset)); err != nil {
		return nil, err
	}
	return u.Get(ctx, id, &organizerID)
}

func (u *AdRequestUseCase) RemoveCreativeAsset(ctx context.Context, id, organizerID int64, url string) (*domain.AdCampaignRequest, error) {
	r, err := u.Get(ctx, id, &organizerID)
	if err != nil {
		return nil, err
	}
	if err = u.repo.SetCreativeAssets(ctx, id, domain.WithoutAsset(r.CreativeAssets, url)); err != nil {
		return nil, err
	}
	return u.Get(ctx, id, &organizerID)
}

// ListPending returns requests awaiting the team, oldest first.
func (u *AdRequestUseCase) ListPending(ctx context.Context, limit, offset int) ([]domain.AdCampaignRequest, int64, error) {
	limit, offset = page(limit, offset)
	return u.repo.ListAdRequests(ctx, port.AdRequestFilter{
		Statuses:    []domain.AdRequestStatus{domain.AdRequestPendingReview, domain.AdRequestNeedsInfo},
		OldestFirst: true,
		Limit:       limit,
		Offset:      offset,
	})
}

func (u *AdRequestUseCase) Assign(ctx context.Context, id, assignee int64) (*domain.AdCampaignRequest, error) {
	return u.transition(ctx, id, reviewable, port.AdRequestStatusChange{
		Status:     domain.AdRequestInProgress,
		AssignedTo: &assignee,
	}, nil)
}

func (u *AdRequestUseCase) Approve(ctx context.Context, id, reviewer int64) (*domain.AdCampaignRequest, error) {
	return u.transition(ctx, id, reviewable, port.AdRequestStatusChange{
		Status:       domain.AdRequestApproved,
		ReviewedBy:   &reviewer,
		MarkReviewed: true,
	}, func(r *domain.AdCampaignRequest) (string, string) {
		return "Ad Campaign Request Approved", fmt.Sprintf(
			"Your ad campaign request for %s has been approved. We will begin creating your campaigns shortly.",
			platformList(r.Platforms))
	})
}

func (u *AdRequestUseCase) Reject(ctx context.Context, id, reviewer int64, reason string) (*domain.AdCampaignRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", domain.ErrValidation)
	}
	return u.transition(ctx, id, reviewable, port.AdRequestStatusChange{
		Status:          domain.AdRequestRejected,
		ReviewedBy:      &reviewer,
		MarkReviewed:    true,
		RejectionReason: &reason,
	}, func(*domain.AdCampaignRequest) (string, string) {
		return "Ad Campaign Request Update", fmt.Sprintf(
			"Your ad campaign request requires changes: %s. Please update your request and resubmit.", reason)
	})
}

func (u *AdRequestUseCase) RequestMoreInfo(ctx context.Context, id, reviewer int64, message string) (*domain.AdCampaignRequest, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required: %w", domain.ErrValidation)
	}
	return u.transition(ctx, id, reviewable, port.AdRequestStatusChange{
		Status:          domain.AdRequestNeedsInfo,
		ReviewedBy:      &reviewer,
		RejectionReason: &message,
	}, func(*domain.AdCampaignRequest) (string, string) {
		return "More Information Needed for Ad Campaign",
			"We need more information for your ad campaign request: " + message
	})
}

// MarkLive records the platform campaign ids of an approved request.
func (u *AdRequestUseCase) MarkLive(ctx context.Context, id int64, externalIDs map[string]string) (*domain.AdCampaignRequest, error) {
	if externalIDs == nil {
		externalIDs = map[string]string{}
	}
	return u.transition(ctx, id, []domain.AdRequestStatus{domain.AdRequestApproved}, port.AdRequestStatusChange{
		Status:              domain.AdRequestLive,
		ExternalCampaignIDs: externalIDs,
	}, func(r *domain.AdCampaignRequest) (string, string) {
		return "Your Ad Campaigns Are Now Live!", fmt.Sprintf(
			"Your ad campaigns on %s are now live! You can track their performance in your dashboard.",
			platformList(r.Platforms))
	})
}

func (u *AdRequestUseCase) Complete(ctx context.Context, id int64) (*domain.AdCampaignRequest, error) {
	return u.transition(ctx, id, []domain.AdRequestStatus{domain.AdRequestLive}, port.AdRequestStatusChange{
		Status: domain.AdRequestCompleted,
	}, nil)
}

func (u *AdRequestUseCase) Statistics(ctx context.Context) (*domain.AdRequestStatistics, error) {
	return u.repo.AdRequestStatistics(ctx)
}

// transition applies change when the request is in one of from, then tells
// the organizer when message is set.
func (u *AdRequestUseCase) transition(
	ctx context.Context,
	id int64,
	from []domain.AdRequestStatus,
	change port.AdRequestStatusChange,
	message func(*domain.AdCampaignRequest) (string, string),
) (*domain.AdCampaignRequest, error) {
	if _, err := u.Get(ctx, id, nil); err != nil {
		return nil, err
	}
	if err := u.repo.ChangeAdRequestStatus(ctx, id, from, change); err != nil {
		return nil, err
	}
	metrics.AdRequestTransitions.WithLabelValues(string(change.Status)).Inc()

	r, err := u.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if message != nil && u.notifier != nil {
		subject, body := message(r)
		if err = u.notifier.NotifyOrganizer(ctx, r.OrganizerID, subject, body); err != nil {
			u.logger.Warn("notify organizer",
				slog.Int64("request_id", id),
				slog.String("status", string(change.Status)),
				slog.Any("error", err))
		}
	}
	return r, nil
}

func platformList(ps []domain.AdPlatform) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
