package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/core/port/mocks"
)

type trackingFixture struct {
	svc      *TrackingUseCase
	repo     *mocks.MockTrackingRepository
	facebook *mocks.MockAdPlatformClient
	google   *mocks.MockAdPlatformClient
}

func newTrackingFixture(t *testing.T) trackingFixture {
	f := trackingFixture{
		repo:     mocks.NewMockTrackingRepository(t),
		facebook: mocks.NewMockAdPlatformClient(t),
		google:   mocks.NewMockAdPlatformClient(t),
	}
	f.svc = NewTrackingUseCase(f.repo,
		map[domain.AdPlatform]port.AdPlatformClient{
			domain.AdPlatformFacebook: f.facebook,
			domain.AdPlatformGoogle:   f.google,
		},
		map[domain.AdPlatform]string{domain.AdPlatformFacebook: "fb-app"},
		discardLogger())
	f.svc.now = func() time.Time { return testNow }
	return f
}

func TestOAuthURL(t *testing.T) {
	f := newTrackingFixture(t)

	raw, state, err := f.svc.OAuthURL(domain.AdPlatformFacebook, "https://app.example.com/cb", "")
	require.NoError(t, err)
	_, err = uuid.Parse(state)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, "/v18.0/dialog/oauth", u.Path)
	q := u.Query()
	assert.Equal(t, "fb-app", q.Get("client_id"))
	assert.Equal(t, "https://app.example.com/cb", q.Get("redirect_uri"))
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "ads_read ads_management business_management", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))

	_, kept, err := f.svc.OAuthURL(domain.AdPlatformTikTok, "https://app.example.com/cb", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", kept)

	_, _, err = f.svc.OAuthURL("snapchat", "https://app.example.com/cb", "")
	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestConnect(t *testing.T) {
	f := newTrackingFixture(t)
	f.facebook.EXPECT().AccessToken(mock.Anything, "code-1").
		Return(domain.PlatformToken{AccessToken: "at", RefreshToken: "rt", ExpiresIn: time.Hour}, nil)
	f.facebook.EXPECT().AccountInfo(mock.Anything, "at").
		Return(domain.PlatformAccount{AccountID: "act_1", AccountName: "Fest Ads"}, nil)
	f.repo.EXPECT().
		UpsertConnection(mock.Anything, mock.MatchedBy(func(c *domain.AdTrackingConnection) bool {
			return c.OrganizerID == 42 && c.AccountID == "act_1" && c.IsActive &&
				c.TokenExpiresAt != nil && c.TokenExpiresAt.Equal(testNow.Add(time.Hour))
		})).
		Return(nil)

	conn, err := f.svc.Connect(context.Background(), 42, domain.AdPlatformFacebook, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "Fest Ads", conn.AccountName)
}

func TestConnectUnconfiguredPlatform(t *testing.T) {
	f := newTrackingFixture(t)

	_, err := f.svc.Connect(context.Background(), 42, domain.AdPlatformTikTok, "code")
	require.ErrorIs(t, err, domain.ErrPlatformNotConfigured)
}

func TestSyncDegradesOnPlatformFailure(t *testing.T) {
	f := newTrackingFixture(t)
	conns := []domain.AdTrackingConnection{
		{ID: 1, OrganizerID: 42, Platform: domain.AdPlatformFacebook, AccountID: "act_1", AccessToken: "fb"},
		{ID: 2, OrganizerID: 42, Platform: domain.AdPlatformGoogle, AccountID: "cust_1", AccessToken: "gg"},
		{ID: 3, OrganizerID: 42, Platform: domain.AdPlatformTikTok, AccountID: "adv_1", AccessToken: "tt"},
	}
	f.repo.EXPECT().ActiveConnections(mock.Anything, int64(42)).Return(conns, nil)
	f.facebook.EXPECT().Campaigns(mock.Anything, "fb", "act_1").Return(nil, errors.New("rate limited"))
	f.google.EXPECT().Campaigns(mock.Anything, "gg", "cust_1").Return([]domain.PlatformCampaign{
		{ID: "g1", Name: "Launch", Impressions: 1000, Clicks: 50, Spend: dec("25"), Revenue: dec("100")},
		{ID: "g2", Name: "Retarget"},
	}, nil)
	f.repo.EXPECT().
		UpsertTrackedCampaigns(mock.Anything, int64(2), mock.MatchedBy(func(rows []domain.AdCampaignTracking) bool {
			return len(rows) == 2 && rows[0].CPC.Valid && rows[0].CPC.Decimal.Equal(dec("0.5")) && !rows[1].CTR.Valid
		}), testNow).
		Return(nil)

	n, err := f.svc.Sync(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSyncSinglePlatform(t *testing.T) {
	f := newTrackingFixture(t)
	google := domain.AdPlatformGoogle
	f.repo.EXPECT().ActiveConnection(mock.Anything, int64(42), google).Return(nil, nil)

	n, err := f.svc.Sync(context.Background(), 42, &google)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSyncStorageFailure(t *testing.T) {
	f := newTrackingFixture(t)
	conn := domain.AdTrackingConnection{ID: 2, OrganizerID: 42, Platform: domain.AdPlatformGoogle, AccountID: "c", AccessToken: "gg"}
	google := domain.AdPlatformGoogle
	f.repo.EXPECT().ActiveConnection(mock.Anything, int64(42), google).Return(&conn, nil)
	f.google.EXPECT().Campaigns(mock.Anything, "gg", "c").Return([]domain.PlatformCampaign{{ID: "g1"}}, nil)
	f.repo.EXPECT().UpsertTrackedCampaigns(mock.Anything, int64(2), mock.Anything, testNow).Return(errors.New("conn reset"))

	_, err := f.svc.Sync(context.Background(), 42, &google)
	require.EqualError(t, err, "conn reset")
}

func TestTrackingAnalytics(t *testing.T) {
	f := newTrackingFixture(t)
	f.repo.EXPECT().PlatformTotals(mock.Anything, int64(42), (*domain.AdPlatform)(nil)).Return([]domain.PlatformAnalytics{
		{Platform: domain.AdPlatformFacebook, Impressions: 2000, Clicks: 40, Spend: dec("20")},
		{Platform: domain.AdPlatformGoogle, Impressions: 0, Clicks: 0, Spend: dec("0")},
	}, nil)

	a, err := f.svc.Analytics(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), a.TotalImpressions)
	assertMoney(t, "20", a.TotalSpend)
	assertMoney(t, "0.5", a.Platforms[0].CPC)
	assertMoney(t, "2", a.Platforms[0].CTR)
	assertMoney(t, "0", a.Platforms[1].CPC)
}

func TestTrackedCampaignNotFound(t *testing.T) {
	f := newTrackingFixture(t)
	f.repo.EXPECT().FindTrackedCampaign(mock.Anything, int64(5), (*int64)(nil)).Return(nil, nil)

	_, err := f.svc.Campaign(context.Background(), 5, nil)
	require.ErrorIs(t, err, domain.ErrTrackedNotFound)
}
