package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/metrics"
)

type oauthEndpoint struct {
	baseURL string
	scopes  []string
}

var oauthEndpoints = map[domain.AdPlatform]oauthEndpoint{
	domain.AdPlatformFacebook: {
		baseURL: "https://www.facebook.com/v18.0/dialog/oauth",
		scopes:  []string{"ads_read", "ads_management", "business_management"},
	},
	domain.AdPlatformGoogle: {
		baseURL: "https://accounts.google.com/o/oauth2/v2/auth",
		scopes:  []string{"https://www.googleapis.com/auth/adwords"},
	},
	domain.AdPlatformTikTok: {
		baseURL: "https://ads.tiktok.com/marketing_api/auth",
		scopes:  []string{"ad_account_info", "campaign_read"},
	},
}

// TrackingUseCase links organizers' ad accounts and mirrors their campaign
// metrics. Platforms without a client can still produce OAuth URLs but
// cannot be connected or synced.
type TrackingUseCase struct {
	repo      port.TrackingRepository
	clients   map[domain.AdPlatform]port.AdPlatformClient
	clientIDs map[domain.AdPlatform]string
	logger    *slog.Logger

	now func() time.Time
}

// NewTrackingUseCase creates the service. clientIDs are the OAuth application
// ids per platform.
func NewTrackingUseCase(
	repo port.TrackingRepository,
	clients map[domain.AdPlatform]port.AdPlatformClient,
	clientIDs map[domain.AdPlatform]string,
	logger *slog.Logger,
) *TrackingUseCase {
	if clients == nil {
		clients = map[domain.AdPlatform]port.AdPlatformClient{}
	}
	return &TrackingUseCase{repo: repo, clients: clients, clientIDs: clientIDs, logger: logger, now: time.Now}
}

// OAuthURL builds the platform consent URL. An empty state is replaced by a
// random one, which is returned so the caller can verify the callback.
func (u *TrackingUseCase) OAuthURL(platform domain.AdPlatform, redirectURI, state string) (string, string, error) {
	ep, ok := oauthEndpoints[platform]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	if state == "" {
		state = uuid.NewString()
	}
	q := url.Values{}
	q.Set("client_id", u.clientIDs[platform])
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	q.Set("scope", strings.Join(ep.scopes, " "))
	q.Set("response_type", "code")
	return ep.baseURL + "?" + q.Encode(), state, nil
}

// Connect exchanges an authorization code and stores the resulting
// connection, replacing any earlier one for the same platform.
func (u *TrackingUseCase) Connect(ctx context.Context, organizerID int64, platform domain.AdPlatform, authCode string) (*domain.AdTrackingConnection, error) {
	client, err := u.client(platform)
	if err != nil {
		return nil, err
	}
	token, err := client.AccessToken(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("%s access token: %w", platform, err)
	}
	account, err := client.AccountInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%s account info: %w", platform, err)
	}

	now := u.now()
	conn := &domain.AdTrackingConnection{
		OrganizerID:  organizerID,
		Platform:     platform,
		AccountID:    account.AccountID,
		AccountName:  account.AccountName,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		IsActive:     true,
		ConnectedAt:  now,
		Metadata:     map[string]any{},
	}
	if token.ExpiresIn > 0 {
		exp := now.Add(token.ExpiresIn)
		conn.TokenExpiresAt = &exp
	}
	if err = u.repo.UpsertConnection(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (u *TrackingUseCase) Disconnect(ctx context.Context, organizerID int64, platform domain.AdPlatform) error {
	if !platform.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	return u.repo.DeactivateConnection(ctx, organizerID, platform)
}

func (u *TrackingUseCase) Connections(ctx context.Context, organizerID int64) ([]domain.AdTrackingConnection, error) {
	return u.repo.ActiveConnections(ctx, organizerID)
}

func (u *TrackingUseCase) Connection(ctx context.Context, organizerID int64, platform domain.AdPlatform) (*domain.AdTrackingConnection, error) {
	c, err := u.repo.ActiveConnection(ctx, organizerID, platform)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrConnectionNotFound
	}
	return c, nil
}

// Sync pulls campaigns of every active connection concurrently. A platform
// API failure only zeroes that connection's count; storage failures abort
// the sync.
func (u *TrackingUseCase) Sync(ctx context.Context, organizerID int64, platform *domain.AdPlatform) (int, error) {
	var conns []domain.AdTrackingConnection
	if platform != nil {
		c, err := u.repo.ActiveConnection(ctx, organizerID, *platform)
		if err != nil {
			return 0, err
		}
		if c != nil {
			conns = append(conns, *c)
		}
	} else {
		var err error
		if conns, err = u.repo.ActiveConnections(ctx, organizerID); err != nil {
			return 0, err
		}
	}

	counts := make([]int, len(conns))
	g, gctx := errgroup.WithContext(ctx)
	for i := range conns {
		g.Go(func() error {
			n, err := u.syncConnection(gctx, conns[i])
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

func (u *TrackingUseCase) syncConnection(ctx context.Context, conn domain.AdTrackingConnection) (int, error) {
	if conn.AccessToken == "" || conn.AccountID == "" {
		return 0, nil
	}
	client, ok := u.clients[conn.Platform]
	if !ok || client == nil {
		return 0, nil
	}

	campaigns, err := client.Campaigns(ctx, conn.AccessToken, conn.AccountID)
	if err != nil {
		metrics.PlatformSyncs.WithLabelValues(string(conn.Platform), "failed").Inc()
		u.logger.Warn("sync platform campaigns",
			slog.String("platform", string(conn.Platform)),
			slog.Int64("connection_id", conn.ID),
			slog.Any("error", err))
		return 0, nil
	}

	rows := make([]domain.AdCampaignTracking, len(campaigns))
	for i, c := range campaigns {
		rows[i] = c.Tracking(conn)
	}
	if err = u.repo.UpsertTrackedCampaigns(ctx, conn.ID, rows, u.now()); err != nil {
		return 0, err
	}
	metrics.PlatformSyncs.WithLabelValues(string(conn.Platform), "ok").Inc()
	return len(rows), nil
}

func (u *TrackingUseCase) Campaigns(ctx context.Context, organizerID int64, filter port.TrackedCampaignFilter) ([]domain.AdCampaignTracking, int64, error) {
	filter.Limit, filter.Offset = page(filter.Limit, filter.Offset)
	return u.repo.ListTrackedCampaigns(ctx, organizerID, filter)
}

func (u *TrackingUseCase) Campaign(ctx context.Context, id int64, organizerID *int64) (*domain.AdCampaignTracking, error) {
	c, err := u.repo.FindTrackedCampaign(ctx, id, organizerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrTrackedNotFound
	}
	return c, nil
}

func (u *TrackingUseCase) Analytics(ctx context.Context, organizerID int64, platform *domain.AdPlatform) (*domain.TrackingAnalytics, error) {
	rows, err := u.repo.PlatformTotals(ctx, organizerID, platform)
	if err != nil {
		return nil, err
	}
	a := domain.NewTrackingAnalytics(rows)
	return &a, nil
}

func (u *TrackingUseCase) client(platform domain.AdPlatform) (port.AdPlatformClient, error) {
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	c, ok := u.clients[platform]
	if !ok || c == nil {
		return nil, fmt.Errorf("%s: %w", platform, domain.ErrPlatformNotConfigured)
	}
	return c, nil
}
