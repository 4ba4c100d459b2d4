package port

import (
	"context"
	"time"

	"promo-orders/internal/core/domain"
)

// Notifier alerts the platform team and organizers about request changes.
type Notifier interface {
	NotifyTeam(ctx context.Context, subject string, data map[string]any) error
	NotifyOrganizer(ctx context.Context, organizerID int64, subject, message string) error
}

// AdRequestRepository persists ad campaign requests. Lookups return
// (nil, nil) when nothing matches.
type AdRequestRepository interface {
	CreateAdRequest(ctx context.Context, r *domain.AdCampaignRequest) error
	FindAdRequest(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignRequest, error)
	ListAdRequests(ctx context.Context, filter AdRequestFilter) ([]domain.AdCampaignRequest, int64, error)
	// PatchAdRequest applies the non-nil fields of patch to a request that is
	// still modifiable and returns the stored row.
	PatchAdRequest(ctx context.Context, id, organizerID int64, patch domain.AdRequestPatch) (*domain.AdCampaignRequest, error)
	SetCreativeAssets(ctx context.Context, id int64, assets []domain.CreativeAsset) error
	// ChangeAdRequestStatus applies change when the current status is one of
	// from. It returns domain.ErrAdRequestTransition otherwise.
	ChangeAdRequestStatus(ctx context.Context, id int64, from []domain.AdRequestStatus, change AdRequestStatusChange) error
	AdRequestStatistics(ctx context.Context) (*domain.AdRequestStatistics, error)
}

// AdRequestFilter narrows request listings. A nil organizer lists across
// organizers.
type AdRequestFilter struct {
	OrganizerID *int64
	Statuses    []domain.AdRequestStatus
	OldestFirst bool
	Limit       int
	Offset      int
}

// AdRequestStatusChange is a reviewed transition of a request.
type AdRequestStatusChange struct {
	Status              domain.AdRequestStatus
	AssignedTo          *int64
	ReviewedBy          *int64
	MarkReviewed        bool
	RejectionReason     *string
	ExternalCampaignIDs map[string]string
}

// AdRequestUseCase manages ad campaign requests for organizers and the
// platform team.
type AdRequestUseCase interface {
	Create(ctx context.Context, orderItemID, organizerID int64, eventID *int64, in domain.AdRequestInput) (*domain.AdCampaignRequest, error)
	Get(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignRequest, error)
	ListByOrganizer(ctx context.Context, organizerID int64, status domain.AdRequestStatus, limit, offset int) ([]domain.AdCampaignRequest, int64, error)
	Update(ctx context.Context, id, organizerID int64, patch domain.AdRequestPatch) (*domain.AdCampaignRequest, error)
	AddCreativeAsset(ctx context.Context, id, organizerID int64, asset domain.CreativeAsset) (*domain.AdCampaignRequest, error)
	RemoveCreativeAsset(ctx context.Context, id, organizerID int64, url string) (*domain.AdCampaignRequest, error)
	ListPending(ctx context.Context, limit, offset int) ([]domain.AdCampaignRequest, int64, error)
	Assign(ctx context.Context, id, assignee int64) (*domain.AdCampaignRequest, error)
	Approve(ctx context.Context, id, reviewer int64) (*domain.AdCampaignRequest, error)
	Reject(ctx context.Context, id, reviewer int64, reason string) (*domain.AdCampaignRequest, error)
	RequestMoreInfo(ctx context.Context, id, reviewer int64, message string) (*domain.AdCampaignRequest, error)
	MarkLive(ctx context.Context, id int64, externalIDs map[string]string) (*domain.AdCampaignRequest, error)
	Complete(ctx context.Context, id int64) (*domain.AdCampaignRequest, error)
	Statistics(ctx context.Context) (*domain.AdRequestStatistics, error)
}

// AdPlatformClient talks to one ad platform's OAuth and reporting APIs.
type AdPlatformClient interface {
	AccessToken(ctx context.Context, authCode string) (domain.PlatformToken, error)
	AccountInfo(ctx context.Context, accessToken string) (domain.PlatformAccount, error)
	Campaigns(ctx context.Context, accessToken, accountID string) ([]domain.PlatformCampaign, error)
	CampaignMetrics(ctx context.Context, accessToken, campaignID string) (domain.PlatformCampaign, error)
}

// TrackingRepository persists platform connections and mirrored campaigns.
type TrackingRepository interface {
	// UpsertConnection stores conn keyed by (organizer, platform) and marks it
	// active.
	UpsertConnection(ctx context.Context, conn *domain.AdTrackingConnection) error
	DeactivateConnection(ctx context.Context, organizerID int64, platform domain.AdPlatform) error
	ActiveConnections(ctx context.Context, organizerID int64) ([]domain.AdTrackingConnection, error)
	ActiveConnection(ctx context.Context, organizerID int64, platform domain.AdPlatform) (*domain.AdTrackingConnection, error)
	// UpsertTrackedCampaigns stores campaigns keyed by (platform, external id)
	// and stamps the connection as synced, in one transaction.
	UpsertTrackedCampaigns(ctx context.Context, connID int64, campaigns []domain.AdCampaignTracking, at time.Time) error
	ListTrackedCampaigns(ctx context.Context, organizerID int64, filter TrackedCampaignFilter) ([]domain.AdCampaignTracking, int64, error)
	FindTrackedCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignTracking, error)
	PlatformTotals(ctx context.Context, organizerID int64, platform *domain.AdPlatform) ([]domain.PlatformAnalytics, error)
}

// TrackedCampaignFilter narrows tracked campaign listings.
type TrackedCampaignFilter struct {
	Platform *domain.AdPlatform
	Status   string
	Limit    int
	Offset   int
}

// TrackingUseCase links organizer ad accounts and mirrors their campaigns.
type TrackingUseCase interface {
	OAuthURL(platform domain.AdPlatform, redirectURI, state string) (string, string, error)
	Connect(ctx context.Context, organizerID int64, platform domain.AdPlatform, authCode string) (*domain.AdTrackingConnection, error)
	Disconnect(ctx context.Context, organizerID int64, platform domain.AdPlatform) error
	Connections(ctx context.Context, organizerID int64) ([]domain.AdTrackingConnection, error)
	Connection(ctx context.Context, organizerID int64, platform domain.AdPlatform) (*domain.AdTrackingConnection, error)
	// Sync pulls campaigns from the organizer's connected platforms, or only
	// from platform when given, and returns how many were stored.
	Sync(ctx context.Context, organizerID int64, platform *domain.AdPlatform) (int, error)
	Campaigns(ctx context.Context, organizerID int64, filter TrackedCampaignFilter) ([]domain.AdCampaignTracking, int64, error)
	Campaign(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignTracking, error)
	Analytics(ctx context.Context, organizerID int64, platform *domain.AdPlatform) (*domain.TrackingAnalytics, error)
}

// EmailProvider sends bulk email.
type EmailProvider interface {
	SendBulkEmail(ctx context.Context, recipients []domain.Recipient, subject, html string, plainText *string) (domain.SendResult, error)
}

// EmailRepository persists email campaigns and their recipients.
type EmailRepository interface {
	CountAudience(ctx context.Context, organizerID int64, audience domain.AudienceType, filters domain.AudienceFilters) (int64, error)
	CreateEmailCampaign(ctx context.Context, c *domain.EmailCampaign) error
	FindEmailCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.EmailCampaign, error)
	ListEmailCampaigns(ctx context.Context, organizerID int64, limit, offset int) ([]domain.EmailCampaign, int64, error)
	// LoadRecipients snapshots the campaign audience into its recipient list
	// and returns the resulting recipient count.
	LoadRecipients(ctx context.Context, c *domain.EmailCampaign) (int64, error)
	// StartSending moves a draft or scheduled campaign to sending. It returns
	// domain.ErrCampaignNotSendable otherwise.
	StartSending(ctx context.Context, id int64, at time.Time) error
	PendingRecipients(ctx context.Context, campaignID int64) ([]domain.Recipient, error)
	MarkRecipients(ctx context.Context, ids []int64, status domain.RecipientStatus, at time.Time) error
	CompleteEmailCampaign(ctx context.Context, id int64, sent int64, at time.Time) error
}

// EmailUseCase runs email marketing campaigns.
type EmailUseCase interface {
	AudienceCount(ctx context.Context, organizerID int64, audience domain.AudienceType, filters *domain.AudienceFilters) (*domain.AudienceCount, error)
	CreateCampaign(ctx context.Context, orderItemID, organizerID int64, eventID *int64, in domain.EmailCampaignInput) (*domain.EmailCampaign, error)
	GetCampaign(ctx context.Context, id int64, organizerID *int64) (*domain.EmailCampaign, error)
	ListCampaigns(ctx context.Context, organizerID int64, limit, offset int) ([]domain.EmailCampaign, int64, error)
	LoadRecipients(ctx context.Context, id int64) (int64, error)
	SendCampaign(ctx context.Context, id int64) error
	Analytics(ctx context.Context, id int64, organizerID *int64) (*domain.EmailAnalytics, error)
}
