package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port/mocks"
)

func newEmailFixture(t *testing.T) (*EmailUseCase, *mocks.MockEmailRepository, *mocks.MockEmailProvider) {
	repo := mocks.NewMockEmailRepository(t)
	provider := mocks.NewMockEmailProvider(t)
	svc := NewEmailUseCase(repo, provider, discardLogger())
	svc.now = func() time.Time { return testNow }
	return svc, repo, provider
}

func emailCampaign(status domain.EmailCampaignStatus) *domain.EmailCampaign {
	return &domain.EmailCampaign{
		ID:           4,
		OrderItemID:  12,
		OrganizerID:  42,
		AudienceType: domain.AudiencePastClients,
		Subject:      "Doors open at 8",
		HTMLContent:  "<p>See you there</p>",
		Status:       status,
	}
}

func recipients(n int) []domain.Recipient {
	rs := make([]domain.Recipient, n)
	for i := range rs {
		rs[i] = domain.Recipient{ID: int64(i + 1), Email: "fan@example.com", Status: domain.RecipientPending}
	}
	return rs
}

func TestAudienceCount(t *testing.T) {
	cases := map[string]struct {
		audience domain.AudienceType
		count    int64
		unit     string
		cost     string
	}{
		"small past clients":  {domain.AudiencePastClients, 400, "0.05", "20"},
		"filtered second tier": {domain.AudienceFilteredDatabase, 1500, "0.08", "120"},
		"whole database bulk": {domain.AudienceWholeDatabase, 200000, "0.03", "6000"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo, _ := newEmailFixture(t)
			repo.EXPECT().CountAudience(mock.Anything, int64(42), tc.audience, domain.AudienceFilters{}).Return(tc.count, nil)

			a, err := svc.AudienceCount(context.Background(), 42, tc.audience, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.count, a.Count)
			assertMoney(t, tc.unit, a.UnitPrice)
			assertMoney(t, tc.cost, a.EstimatedCost)
		})
	}

	t.Run("unknown audience", func(t *testing.T) {
		svc, _, _ := newEmailFixture(t)

		_, err := svc.AudienceCount(context.Background(), 42, "everyone", nil)
		require.ErrorIs(t, err, domain.ErrInvalidAudience)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCreateEmailCampaign(t *testing.T) {
	svc, repo, _ := newEmailFixture(t)
	filters := &domain.AudienceFilters{Cities: []string{"Cluj-Napoca"}}
	at := testNow.Add(48 * time.Hour)
	repo.EXPECT().CountAudience(mock.Anything, int64(42), domain.AudienceFilteredDatabase, *filters).Return(int64(800), nil)
	repo.EXPECT().
		CreateEmailCampaign(mock.Anything, mock.MatchedBy(func(c *domain.EmailCampaign) bool {
			return c.Status == domain.EmailCampaignScheduled && c.TotalRecipients == 800 &&
				len(c.AudienceFilters.Cities) == 1
		})).
		Return(nil)

	c, err := svc.CreateCampaign(context.Background(), 12, 42, nil, domain.EmailCampaignInput{
		AudienceType:    domain.AudienceFilteredDatabase,
		AudienceFilters: filters,
		Subject:         "Early bird tickets",
		HTMLContent:     "<p>Hi</p>",
		ScheduledAt:     &at,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EmailCampaignScheduled, c.Status)
}

func TestSendCampaignInBatches(t *testing.T) {
	svc, repo, provider := newEmailFixture(t)
	repo.EXPECT().FindEmailCampaign(mock.Anything, int64(4), (*int64)(nil)).Return(emailCampaign(domain.EmailCampaignDraft), nil)
	repo.EXPECT().StartSending(mock.Anything, int64(4), testNow).Return(nil)
	repo.EXPECT().PendingRecipients(mock.Anything, int64(4)).Return(recipients(250), nil)

	calls := 0
	provider.EXPECT().
		SendBulkEmail(mock.Anything, mock.Anything, "Doors open at 8", "<p>See you there</p>", (*string)(nil)).
		RunAndReturn(func(_ context.Context, batch []domain.Recipient, _, _ string, _ *string) (domain.SendResult, error) {
			calls++
			switch calls {
			case 1:
				return domain.SendResult{Sent: len(batch)}, nil
			case 2:
				return domain.SendResult{Sent: 70, Failed: 30}, nil
			default:
				return domain.SendResult{}, errors.New("provider timeout")
			}
		}).
		Times(3)

	sized := func(n int) any {
		return mock.MatchedBy(func(ids []int64) bool { return len(ids) == n })
	}
	repo.EXPECT().MarkRecipients(mock.Anything, sized(100), domain.RecipientSent, testNow).Return(nil).Once()
	repo.EXPECT().MarkRecipients(mock.Anything, sized(70), domain.RecipientSent, testNow).Return(nil).Once()
	repo.EXPECT().MarkRecipients(mock.Anything, sized(30), domain.RecipientFailed, testNow).Return(nil).Once()
	repo.EXPECT().MarkRecipients(mock.Anything, sized(50), domain.RecipientFailed, testNow).Return(nil).Once()
	repo.EXPECT().CompleteEmailCampaign(mock.Anything, int64(4), int64(170), testNow).Return(nil)

	require.NoError(t, svc.SendCampaign(context.Background(), 4))
}

func TestSendCampaignGuards(t *testing.T) {
	t.Run("already sent", func(t *testing.T) {
		svc, repo, _ := newEmailFixture(t)
		repo.EXPECT().FindEmailCampaign(mock.Anything, int64(4), (*int64)(nil)).Return(emailCampaign(domain.EmailCampaignCompleted), nil)

		err := svc.SendCampaign(context.Background(), 4)
		require.ErrorIs(t, err, domain.ErrCampaignNotSendable)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("no provider", func(t *testing.T) {
		repo := mocks.NewMockEmailRepository(t)
		svc := NewEmailUseCase(repo, nil, discardLogger())
		repo.EXPECT().FindEmailCampaign(mock.Anything, int64(4), (*int64)(nil)).Return(emailCampaign(domain.EmailCampaignDraft), nil)

		err := svc.SendCampaign(context.Background(), 4)
		require.ErrorIs(t, err, domain.ErrEmailProviderMissing)
	})

	t.Run("missing campaign", func(t *testing.T) {
		svc, repo, _ := newEmailFixture(t)
		repo.EXPECT().FindEmailCampaign(mock.Anything, int64(4), (*int64)(nil)).Return(nil, nil)

		err := svc.SendCampaign(context.Background(), 4)
		require.ErrorIs(t, err, domain.ErrEmailCampaignNotFound)
	})
}

func TestEmailAnalytics(t *testing.T) {
	svc, repo, _ := newEmailFixture(t)
	organizer := int64(42)
	c := emailCampaign(domain.EmailCampaignCompleted)
	c.SentCount, c.OpenedCount, c.ClickedCount, c.BouncedCount = 200, 50, 10, 4
	repo.EXPECT().FindEmailCampaign(mock.Anything, int64(4), &organizer).Return(c, nil)

	a, err := svc.Analytics(context.Background(), 4, &organizer)
	require.NoError(t, err)
	assertMoney(t, "25", a.OpenRate)
	assertMoney(t, "20", a.ClickRate)
	assertMoney(t, "2", a.BounceRate)
}
