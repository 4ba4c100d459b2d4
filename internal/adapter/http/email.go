package httpadapter

import (
	"net/http"

	"promo-orders/internal/core/domain"
)

type audienceBody struct {
	AudienceType domain.AudienceType     `json:"audience_type" validate:"required"`
	Filters      *domain.AudienceFilters `json:"filters,omitempty"`
}

type createEmailCampaignBody struct {
	OrderItemID int64  `json:"order_item_id" validate:"required,gt=0"`
	EventID     *int64 `json:"event_id,omitempty"`
	domain.EmailCampaignInput
}

// handleAudienceCount sizes an audience and quotes its per-recipient price
// before a campaign is bought.
func (h *Handler) handleAudienceCount(w http.ResponseWriter, r *http.Request) {
	var body audienceBody
	if !h.decode(w, r, &body) {
		return
	}
	c, err := h.email.AudienceCount(r.Context(), organizerID(r), body.AudienceType, body.Filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateEmailCampaign(w http.ResponseWriter, r *http.Request) {
	var body createEmailCampaignBody
	if !h.decode(w, r, &body) {
		return
	}
	c, err := h.email.CreateCampaign(r.Context(), body.OrderItemID, organizerID(r), body.EventID, body.EmailCampaignInput)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListEmailCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r.URL.Query())
	if !ok {
		return
	}
	cs, total, err := h.email.ListCampaigns(r.Context(), organizerID(r), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(cs, total))
}

func (h *Handler) handleGetEmailCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	org := organizerID(r)
	c, err := h.email.GetCampaign(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleEmailAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	org := organizerID(r)
	a, err := h.email.Analytics(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleLoadRecipients(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	n, err := h.email.LoadRecipients(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"recipients": n})
}

// handleSendEmailCampaign sends a draft or scheduled campaign to its loaded
// recipients. It blocks until every batch has been handed to the provider.
func (h *Handler) handleSendEmailCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	if err := h.email.SendCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
