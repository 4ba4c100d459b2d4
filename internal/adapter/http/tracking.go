package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

type connectBody struct {
	Code string `json:"code" validate:"required"`
}

// handleOAuthURL returns the consent URL of a platform together with the
// state value the callback must echo back. It requires a `redirect_uri`
// query parameter and accepts an optional `state`.
func (h *Handler) handleOAuthURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirect := q.Get("redirect_uri")
	if redirect == "" {
		badRequest(w, "missing redirect_uri")
		return
	}
	u, state, err := h.tracking.OAuthURL(domain.AdPlatform(chi.URLParam(r, "platform")), redirect, q.Get("state"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": u, "state": state})
}

func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	var body connectBody
	if !h.decode(w, r, &body) {
		return
	}
	conn, err := h.tracking.Connect(r.Context(), organizerID(r), domain.AdPlatform(chi.URLParam(r, "platform")), body.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, conn)
}

func (h *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	err := h.tracking.Disconnect(r.Context(), organizerID(r), domain.AdPlatform(chi.URLParam(r, "platform")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := h.tracking.Connections(r.Context(), organizerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if conns == nil {
		conns = []domain.AdTrackingConnection{}
	}
	writeJSON(w, http.StatusOK, conns)
}

func (h *Handler) handleGetConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.tracking.Connection(r.Context(), organizerID(r), domain.AdPlatform(chi.URLParam(r, "platform")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conn)
}

// handleSync pulls campaigns from every connected platform, or from the one
// named by the `platform` query parameter.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	n, err := h.tracking.Sync(r.Context(), organizerID(r), platformParam(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"synced": n})
}

func (h *Handler) handleListTrackedCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, ok := paging(w, q)
	if !ok {
		return
	}
	filter := port.TrackedCampaignFilter{
		Platform: platformParam(q),
		Status:   q.Get("status"),
		Limit:    limit,
		Offset:   offset,
	}
	campaigns, total, err := h.tracking.Campaigns(r.Context(), organizerID(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(campaigns, total))
}

func (h *Handler) handleGetTrackedCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	org := organizerID(r)
	c, err := h.tracking.Campaign(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleTrackingAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.tracking.Analytics(r.Context(), organizerID(r), platformParam(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
