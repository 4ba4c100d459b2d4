package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/core/port/mocks"
)

func newAdRequestFixture(t *testing.T) (*AdRequestUseCase, *mocks.MockAdRequestRepository, *mocks.MockNotifier) {
	repo := mocks.NewMockAdRequestRepository(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAdRequestUseCase(repo, notifier, discardLogger())
	svc.now = func() time.Time { return testNow }
	return svc, repo, notifier
}

func adRequest(status domain.AdRequestStatus) *domain.AdCampaignRequest {
	return &domain.AdCampaignRequest{
		ID:          3,
		OrderItemID: 11,
		OrganizerID: 42,
		Platforms:   []domain.AdPlatform{domain.AdPlatformFacebook, domain.AdPlatformTikTok},
		Budget:      dec("1500"),
		BudgetType:  "total",
		Status:      status,
		CreativeAssets: []domain.CreativeAsset{
			{Type: "image", URL: "https://cdn.example.com/a.png"},
			{Type: "video", URL: "https://cdn.example.com/b.mp4"},
		},
	}
}

func TestCreateAdRequest(t *testing.T) {
	svc, repo, notifier := newAdRequestFixture(t)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateAdRequest(mock.Anything, mock.MatchedBy(func(r *domain.AdCampaignRequest) bool {
			return r.Status == domain.AdRequestPendingReview && r.BudgetType == "total" &&
				r.EndDate != nil && r.EndDate.Equal(time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC))
		})).
		RunAndReturn(func(_ context.Context, r *domain.AdCampaignRequest) error {
			r.ID = 3
			return nil
		})
	notifier.EXPECT().
		NotifyTeam(mock.Anything, "New Ad Campaign Request", mock.MatchedBy(func(d map[string]any) bool {
			return d["request_id"] == int64(3) && d["budget"] == "1500"
		})).
		Return(errors.New("smtp down"))

	r, err := svc.Create(context.Background(), 11, 42, nil, domain.AdRequestInput{
		Platforms:    []domain.AdPlatform{domain.AdPlatformFacebook},
		Budget:       dec("1500"),
		DurationDays: 14,
		StartDate:    &start,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.ID)
	require.NotNil(t, r.DurationDays)
	assert.Equal(t, 14, *r.DurationDays)
}

func TestCreateAdRequestValidation(t *testing.T) {
	cases := map[string]struct {
		in  domain.AdRequestInput
		err error
	}{
		"no platforms": {domain.AdRequestInput{Budget: dec("10")}, domain.ErrNoPlatforms},
		"unknown platform": {
			domain.AdRequestInput{Platforms: []domain.AdPlatform{"myspace"}, Budget: dec("10")},
			domain.ErrUnsupportedPlatform,
		},
		"zero budget": {
			domain.AdRequestInput{Platforms: []domain.AdPlatform{domain.AdPlatformGoogle}, Budget: decimal.Zero},
			domain.ErrInvalidBudget,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _, _ := newAdRequestFixture(t)

			_, err := svc.Create(context.Background(), 11, 42, nil, tc.in)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUpdateAdRequest(t *testing.T) {
	name := "Summer fest"

	t.Run("pending", func(t *testing.T) {
		svc, repo, _ := newAdRequestFixture(t)
		organizer := int64(42)
		repo.EXPECT().FindAdRequest(mock.Anything, int64(3), &organizer).Return(adRequest(domain.AdRequestNeedsInfo), nil)
		updated := adRequest(domain.AdRequestNeedsInfo)
		updated.CampaignName = &name
		repo.EXPECT().PatchAdRequest(mock.Anything, int64(3), int64(42), domain.AdRequestPatch{CampaignName: &name}).Return(updated, nil)

		r, err := svc.Update(context.Background(), 3, 42, domain.AdRequestPatch{CampaignName: &name})
		require.NoError(t, err)
		assert.Equal(t, name, *r.CampaignName)
	})

	for _, status := range []domain.AdRequestStatus{domain.AdRequestInProgress, domain.AdRequestApproved, domain.AdRequestLive} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo, _ := newAdRequestFixture(t)
			repo.EXPECT().FindAdRequest(mock.Anything, int64(3), mock.Anything).Return(adRequest(status), nil)

			_, err := svc.Update(context.Background(), 3, 42, domain.AdRequestPatch{CampaignName: &name})
			require.ErrorIs(t, err, domain.ErrAdRequestNotModifiable)
		})
	}
}

func TestCreativeAssets(t *testing.T) {
	svc, repo, _ := newAdRequestFixture(t)
	repo.EXPECT().FindAdRequest(mock.Anything, int64(3), mock.Anything).Return(adRequest(domain.AdRequestPendingReview), nil)

	repo.EXPECT().
		SetCreativeAssets(mock.Anything, int64(3), mock.MatchedBy(func(a []domain.CreativeAsset) bool {
			return len(a) == 3 && a[2].URL == "https://cdn.example.com/c.png" && a[2].UploadedAt.Equal(testNow)
		})).
		Return(nil).Once()
	_, err := svc.AddCreativeAsset(context.Background(), 3, 42, domain.CreativeAsset{Type: "image", URL: "https://cdn.example.com/c.png"})
	require.NoError(t, err)

	repo.EXPECT().
		SetCreativeAssets(mock.Anything, int64(3), mock.MatchedBy(func(a []domain.CreativeAsset) bool {
			return len(a) == 1 && a[0].URL == "https://cdn.example.com/b.mp4"
		})).
		Return(nil).Once()
	_, err = svc.RemoveCreativeAsset(context.Background(), 3, 42, "https://cdn.example.com/a.png")
	require.NoError(t, err)
}

func TestListPendingOldestFirst(t *testing.T) {
	svc, repo, _ := newAdRequestFixture(t)
	repo.EXPECT().ListAdRequests(mock.Anything, port.AdRequestFilter{
		Statuses:    []domain.AdRequestStatus{domain.AdRequestPendingReview, domain.AdRequestNeedsInfo},
		OldestFirst: true,
		Limit:       20,
	}).Return(nil, int64(0), nil)

	_, total, err := svc.ListPending(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestApproveNotifiesOrganizer(t *testing.T) {
	svc, repo, notifier := newAdRequestFixture(t)
	repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(adRequest(domain.AdRequestPendingReview), nil).Once()
	repo.EXPECT().
		ChangeAdRequestStatus(mock.Anything, int64(3), reviewable, mock.MatchedBy(func(c port.AdRequestStatusChange) bool {
			return c.Status == domain.AdRequestApproved && c.MarkReviewed && *c.ReviewedBy == 9
		})).
		Return(nil)
	repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(adRequest(domain.AdRequestApproved), nil).Once()
	notifier.EXPECT().
		NotifyOrganizer(mock.Anything, int64(42), "Ad Campaign Request Approved",
			"Your ad campaign request for facebook, tiktok has been approved. We will begin creating your campaigns shortly.").
		Return(nil)

	r, err := svc.Approve(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.AdRequestApproved, r.Status)
}

func TestAdRequestTransitionGuards(t *testing.T) {
	t.Run("mark live requires approval", func(t *testing.T) {
		svc, repo, _ := newAdRequestFixture(t)
		repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(adRequest(domain.AdRequestPendingReview), nil)
		repo.EXPECT().
			ChangeAdRequestStatus(mock.Anything, int64(3), []domain.AdRequestStatus{domain.AdRequestApproved}, mock.Anything).
			Return(domain.ErrAdRequestTransition)

		_, err := svc.MarkLive(context.Background(), 3, map[string]string{"facebook": "fb-1"})
		require.ErrorIs(t, err, domain.ErrAdRequestTransition)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("complete requires live", func(t *testing.T) {
		svc, repo, _ := newAdRequestFixture(t)
		repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(adRequest(domain.AdRequestApproved), nil)
		repo.EXPECT().
			ChangeAdRequestStatus(mock.Anything, int64(3), []domain.AdRequestStatus{domain.AdRequestLive}, port.AdRequestStatusChange{Status: domain.AdRequestCompleted}).
			Return(domain.ErrAdRequestTransition)

		_, err := svc.Complete(context.Background(), 3)
		require.ErrorIs(t, err, domain.ErrAdRequestTransition)
	})

	t.Run("reject needs a reason", func(t *testing.T) {
		svc, _, _ := newAdRequestFixture(t)

		_, err := svc.Reject(context.Background(), 3, 9, "  ")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing request", func(t *testing.T) {
		svc, repo, _ := newAdRequestFixture(t)
		repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(nil, nil)

		_, err := svc.Assign(context.Background(), 3, 5)
		require.ErrorIs(t, err, domain.ErrAdRequestNotFound)
	})
}

func TestRequestMoreInfoWithoutNotifier(t *testing.T) {
	repo := mocks.NewMockAdRequestRepository(t)
	svc := NewAdRequestUseCase(repo, nil, discardLogger())
	repo.EXPECT().FindAdRequest(mock.Anything, int64(3), (*int64)(nil)).Return(adRequest(domain.AdRequestInProgress), nil)
	repo.EXPECT().
		ChangeAdRequestStatus(mock.Anything, int64(3), reviewable, mock.MatchedBy(func(c port.AdRequestStatusChange) bool {
			return c.Status == domain.AdRequestNeedsInfo && !c.MarkReviewed && *c.RejectionReason == "Need logo"
		})).
		Return(nil)

	_, err := svc.RequestMoreInfo(context.Background(), 3, 9, "Need logo")
	require.NoError(t, err)
}
