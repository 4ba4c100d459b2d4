package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

type quoteRequest struct {
	Items        []domain.OrderItemInput `json:"items" validate:"dive"`
	DiscountCode string                  `json:"discount_code,omitempty"`
}

// handleQuote prices items without creating an order. The response is the
// full cost breakdown with per-line costs.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	b, err := h.orders.Quote(r.Context(), req.Items, req.DiscountCode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in port.CreateOrderInput
	if !h.decode(w, r, &in) {
		return
	}
	o, err := h.orders.CreateOrder(r.Context(), organizerID(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// handleListOrders pages the caller's orders, newest first. Repeated or
// comma-separated `status` parameters narrow the listing.
func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, ok := paging(w, q)
	if !ok {
		return
	}
	filter := port.OrderFilter{Limit: limit, Offset: offset}
	for _, v := range q["status"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, domain.OrderStatus(s))
			}
		}
	}
	orders, total, err := h.orders.ListOrders(r.Context(), organizerID(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(orders, total))
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	org := organizerID(r)
	o, err := h.orders.GetOrder(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleGetOrderItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	org := organizerID(r)
	o, err := h.orders.GetOrder(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	items := o.Items
	if items == nil {
		items = []domain.PromotionOrderItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	org := organizerID(r)
	o, err := h.orders.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"), &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	var in port.UpdateOrderInput
	if !h.decode(w, r, &in) {
		return
	}
	o, err := h.orders.UpdateOrder(r.Context(), id, organizerID(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	o, err := h.orders.CancelOrder(r.Context(), id, organizerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// handleCheckout moves a draft order to pending payment and starts its
// payment window.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	o, err := h.orders.InitiateCheckout(r.Context(), id, organizerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleOrderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orders.OrderStatistics(r.Context(), organizerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleMarkPaid records a settled payment reported by the payment provider
// callback and activates the order's promotions.
func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	var payment domain.PaymentDetails
	if !h.decode(w, r, &payment) {
		return
	}
	o, err := h.orders.MarkOrderAsPaid(r.Context(), id, payment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleExpireOrders(w http.ResponseWriter, r *http.Request) {
	n, err := h.orders.ExpireOrders(r.Context(), time.Now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"expired": n})
}
