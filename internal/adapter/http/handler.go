package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promo-orders/internal/core/port"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Orders   port.OrderUseCase
	Catalog  port.CatalogUseCase
	Ads      port.AdRequestUseCase
	Tracking port.TrackingUseCase
	Email    port.EmailUseCase
}

// Handler contains dependencies and routes. It is the inbound HTTP adapter
// for the promotion catalog, order lifecycle and marketing services.
// Organizer routes read the caller from the X-Organizer-ID header and admin
// routes from X-Reviewer-ID; authenticating those values is left to the
// gateway in front of this service.
type Handler struct {
	orders   port.OrderUseCase
	catalog  port.CatalogUseCase
	ads      port.AdRequestUseCase
	tracking port.TrackingUseCase
	email    port.EmailUseCase

	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{
		orders:   svc.Orders,
		catalog:  svc.Catalog,
		ads:      svc.Ads,
		tracking: svc.Tracking,
		email:    svc.Email,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/promotions", func(r chi.Router) {
			r.Get("/types", h.handleListTypes)
			r.Get("/types/{type}", h.handleGetType)
			r.Get("/types/{type}/options/{code}", h.handleGetOptionByCode)
			r.Get("/options/{optionID}", h.handleGetOption)
			r.Post("/quote", h.handleQuote)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireOrganizer)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.handleListOrders)
				r.Post("/", h.handleCreateOrder)
				r.Get("/statistics", h.handleOrderStatistics)
				r.Get("/number/{number}", h.handleGetOrderByNumber)
				r.Get("/{orderID}", h.handleGetOrder)
				r.Get("/{orderID}/items", h.handleGetOrderItems)
				r.Patch("/{orderID}", h.handleUpdateOrder)
				r.Post("/{orderID}/cancel", h.handleCancelOrder)
				r.Post("/{orderID}/checkout", h.handleCheckout)
			})

			r.Route("/ad-requests", func(r chi.Router) {
				r.Get("/", h.handleListAdRequests)
				r.Post("/", h.handleCreateAdRequest)
				r.Get("/{requestID}", h.handleGetAdRequest)
				r.Patch("/{requestID}", h.handleUpdateAdRequest)
				r.Post("/{requestID}/assets", h.handleAddCreativeAsset)
				r.Delete("/{requestID}/assets", h.handleRemoveCreativeAsset)
			})

			r.Route("/tracking", func(r chi.Router) {
				r.Get("/oauth/{platform}", h.handleOAuthURL)
				r.Get("/connections", h.handleListConnections)
				r.Get("/connections/{platform}", h.handleGetConnection)
				r.Post("/connections/{platform}", h.handleConnect)
				r.Delete("/connections/{platform}", h.handleDisconnect)
				r.Post("/sync", h.handleSync)
				r.Get("/campaigns", h.handleListTrackedCampaigns)
				r.Get("/campaigns/{campaignID}", h.handleGetTrackedCampaign)
				r.Get("/analytics", h.handleTrackingAnalytics)
			})

			r.Route("/email", func(r chi.Router) {
				r.Post("/audience", h.handleAudienceCount)
				r.Get("/campaigns", h.handleListEmailCampaigns)
				r.Post("/campaigns", h.handleCreateEmailCampaign)
				r.Get("/campaigns/{campaignID}", h.handleGetEmailCampaign)
				r.Get("/campaigns/{campaignID}/analytics", h.handleEmailAnalytics)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireReviewer)

			r.Post("/orders/expire", h.handleExpireOrders)
			r.Post("/orders/{orderID}/paid", h.handleMarkPaid)

			r.Get("/ad-requests/pending", h.handleListPendingAdRequests)
			r.Get("/ad-requests/statistics", h.handleAdRequestStatistics)
			r.Get("/ad-requests/{requestID}", h.handleAdminGetAdRequest)
			r.Post("/ad-requests/{requestID}/assign", h.handleAssignAdRequest)
			r.Post("/ad-requests/{requestID}/approve", h.handleApproveAdRequest)
			r.Post("/ad-requests/{requestID}/reject", h.handleRejectAdRequest)
			r.Post("/ad-requests/{requestID}/needs-info", h.handleAdRequestNeedsInfo)
			r.Post("/ad-requests/{requestID}/live", h.handleMarkAdRequestLive)
			r.Post("/ad-requests/{requestID}/complete", h.handleCompleteAdRequest)

			r.Post("/email/campaigns/{campaignID}/recipients", h.handleLoadRecipients)
			r.Post("/email/campaigns/{campaignID}/send", h.handleSendEmailCampaign)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
