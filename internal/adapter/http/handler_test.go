package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/core/port/mocks"
)

type fixture struct {
	orders   *mocks.MockOrderUseCase
	catalog  *mocks.MockCatalogUseCase
	ads      *mocks.MockAdRequestUseCase
	tracking *mocks.MockTrackingUseCase
	email    *mocks.MockEmailUseCase
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		orders:   mocks.NewMockOrderUseCase(t),
		catalog:  mocks.NewMockCatalogUseCase(t),
		ads:      mocks.NewMockAdRequestUseCase(t),
		tracking: mocks.NewMockTrackingUseCase(t),
		email:    mocks.NewMockEmailUseCase(t),
	}
	h := NewHandler(Services{
		Orders:   f.orders,
		Catalog:  f.catalog,
		Ads:      f.ads,
		Tracking: f.tracking,
		Email:    f.email,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.router = h.Router()
	return f
}

// do sends a request; headers are given as name, value pairs.
func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func organizer(id string) []string { return []string{"X-Organizer-ID", id} }

func scopedTo(id int64) any {
	return mock.MatchedBy(func(p *int64) bool { return p != nil && *p == id })
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestOrganizerRoutesRequireIdentity(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{"", "abc", "0", "-3"} {
		rec := f.do(http.MethodGet, "/api/v1/orders", "", organizer(id)...)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", id)
	}
	rec := f.do(http.MethodPost, "/api/v1/admin/orders/expire", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().
		CreateOrder(mock.Anything, int64(42), mock.MatchedBy(func(in port.CreateOrderInput) bool {
			return len(in.Items) == 1 && in.Items[0].PromotionOptionID == 11 && in.DiscountCode == "welcome10"
		})).
		Return(&domain.PromotionOrder{
			ID:          1,
			OrderNumber: "PRO-ABC123",
			OrganizerID: 42,
			Status:      domain.OrderStatusDraft,
			Total:       decimal.RequireFromString("416.5"),
		}, nil)

	body := `{"items":[{"promotion_type_id":1,"promotion_option_id":11,"quantity":2}],"discount_code":"welcome10"}`
	rec := f.do(http.MethodPost, "/api/v1/orders/", body, organizer("42")...)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "PRO-ABC123", got["order_number"])
	assert.Equal(t, "draft", got["status"])
	assert.Equal(t, "416.5", got["total"])
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{"validation", domain.ErrEmptyOrder, http.StatusUnprocessableEntity, "Order must have at least one item"},
		{"wrapped validation", errors.Join(errors.New("line 1"), domain.ErrQuantityOutOfBounds), http.StatusUnprocessableEntity, ""},
		{"conflict", domain.ErrOrderNotCancellable, http.StatusConflict, "Order cannot be cancelled"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.orders.EXPECT().CancelOrder(mock.Anything, int64(7), int64(42)).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/orders/7/cancel", "", organizer("42")...)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, errorOf(t, rec))
			}
		})
	}
}

func TestGetOrderIsScopedToCaller(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().GetOrder(mock.Anything, int64(7), scopedTo(42)).Return(nil, domain.ErrOrderNotFound)

	rec := f.do(http.MethodGet, "/api/v1/orders/7", "", organizer("42")...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/orders/seven", "", organizer("42")...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrdersParsesFilter(t *testing.T) {
	f := newFixture(t)
	want := port.OrderFilter{
		Statuses: []domain.OrderStatus{domain.OrderStatusDraft, domain.OrderStatusPaid, domain.OrderStatusCancelled},
		Limit:    5,
		Offset:   10,
	}
	f.orders.EXPECT().ListOrders(mock.Anything, int64(42), want).Return(nil, 0, nil)

	rec := f.do(http.MethodGet, "/api/v1/orders/?status=draft,paid&status=cancelled&limit=5&offset=10", "", organizer("42")...)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/orders/?limit=ten", "", organizer("42")...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadBodies(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/orders/", `{"items":`, organizer("42")...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/v1/orders/", `{"items":[{"promotion_type_id":0,"promotion_option_id":3}]}`, organizer("42")...)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/admin/orders/5/paid", `{"payment_id":"pi_1"}`, "X-Reviewer-ID", "9")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMarkPaid(t *testing.T) {
	f := newFixture(t)
	payment := domain.PaymentDetails{PaymentID: "pi_1", PaymentProvider: "stripe", PaymentMethod: "card"}
	f.orders.EXPECT().MarkOrderAsPaid(mock.Anything, int64(5), payment).
		Return(&domain.PromotionOrder{ID: 5, Status: domain.OrderStatusPaid}, nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/orders/5/paid",
		`{"payment_id":"pi_1","payment_provider":"stripe","payment_method":"card"}`, "X-Reviewer-ID", "9")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().Quote(mock.Anything, mock.Anything, "").Return(domain.CostBreakdown{}, domain.ErrEmptyOrder)

	rec := f.do(http.MethodPost, "/api/v1/promotions/quote", `{"items":[]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetTypeByIDOrSlug(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().GetType(mock.Anything, int64(3)).Return(&domain.PromotionType{ID: 3, Slug: "featured"}, nil)
	f.catalog.EXPECT().GetTypeBySlug(mock.Anything, "email-marketing").Return(nil, domain.ErrTypeNotFound)

	rec := f.do(http.MethodGet, "/api/v1/promotions/types/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/promotions/types/email-marketing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTypesSearches(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().Search(mock.Anything, "banner").Return(nil, nil)
	f.catalog.EXPECT().ListTypes(mock.Anything).Return([]domain.PromotionType{{ID: 1}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/promotions/types?q=+banner+", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/promotions/types", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssignDefaultsToReviewer(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().Assign(mock.Anything, int64(4), int64(9)).
		Return(&domain.AdCampaignRequest{ID: 4, Status: domain.AdRequestInProgress}, nil)
	f.ads.EXPECT().Assign(mock.Anything, int64(4), int64(12)).
		Return(&domain.AdCampaignRequest{ID: 4, Status: domain.AdRequestInProgress}, nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/ad-requests/4/assign", "", "X-Reviewer-ID", "9")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/admin/ad-requests/4/assign", `{"assignee_id":12}`, "X-Reviewer-ID", "9")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRejectPassesReason(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().Reject(mock.Anything, int64(4), int64(9), "").
		Return(nil, errors.Join(errors.New("rejection reason is required"), domain.ErrValidation))

	rec := f.do(http.MethodPost, "/api/v1/admin/ad-requests/4/reject", `{}`, "X-Reviewer-ID", "9")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateAdRequest(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().
		Create(mock.Anything, int64(77), int64(42), (*int64)(nil), mock.MatchedBy(func(in domain.AdRequestInput) bool {
			return len(in.Platforms) == 2 && in.Budget.Equal(decimal.NewFromInt(500))
		})).
		Return(&domain.AdCampaignRequest{ID: 1, Status: domain.AdRequestPendingReview}, nil)

	rec := f.do(http.MethodPost, "/api/v1/ad-requests/",
		`{"order_item_id":77,"platforms":["facebook","google"],"budget":"500"}`, organizer("42")...)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRemoveCreativeAssetNeedsURL(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodDelete, "/api/v1/ad-requests/4/assets", "", organizer("42")...)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOAuthURL(t *testing.T) {
	f := newFixture(t)
	f.tracking.EXPECT().OAuthURL(domain.AdPlatformGoogle, "https://app.test/cb", "").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=s1", "s1", nil)

	rec := f.do(http.MethodGet, "/api/v1/tracking/oauth/google?redirect_uri=https://app.test/cb", "", organizer("42")...)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got["state"])

	rec = f.do(http.MethodGet, "/api/v1/tracking/oauth/google", "", organizer("42")...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConnectWithoutClient(t *testing.T) {
	f := newFixture(t)
	f.tracking.EXPECT().Connect(mock.Anything, int64(42), domain.AdPlatformTikTok, "code-1").
		Return(nil, domain.ErrPlatformNotConfigured)

	rec := f.do(http.MethodPost, "/api/v1/tracking/connections/tiktok", `{"code":"code-1"}`, organizer("42")...)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSyncSinglePlatform(t *testing.T) {
	f := newFixture(t)
	f.tracking.EXPECT().Sync(mock.Anything, int64(42), mock.MatchedBy(func(p *domain.AdPlatform) bool {
		return p != nil && *p == domain.AdPlatformFacebook
	})).Return(3, nil)

	rec := f.do(http.MethodPost, "/api/v1/tracking/sync?platform=facebook", "", organizer("42")...)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"synced":3}`, rec.Body.String())
}

func TestSendEmailCampaign(t *testing.T) {
	f := newFixture(t)
	f.email.EXPECT().SendCampaign(mock.Anything, int64(8)).Return(nil)
	f.email.EXPECT().SendCampaign(mock.Anything, int64(9)).Return(domain.ErrEmailProviderMissing)

	rec := f.do(http.MethodPost, "/api/v1/admin/email/campaigns/8/send", "", "X-Reviewer-ID", "1")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/admin/email/campaigns/9/send", "", "X-Reviewer-ID", "1")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAudienceCount(t *testing.T) {
	f := newFixture(t)
	f.email.EXPECT().AudienceCount(mock.Anything, int64(42), domain.AudiencePastClients, (*domain.AudienceFilters)(nil)).
		Return(&domain.AudienceCount{AudienceType: domain.AudiencePastClients, Count: 400}, nil)

	rec := f.do(http.MethodPost, "/api/v1/email/audience", `{"audience_type":"past_clients"}`, organizer("42")...)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
