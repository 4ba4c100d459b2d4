package httpadapter

import (
	"net/http"
	"strings"

	"promo-orders/internal/core/domain"
)

type createAdRequestBody struct {
	OrderItemID int64  `json:"order_item_id" validate:"required,gt=0"`
	EventID     *int64 `json:"event_id,omitempty"`
	domain.AdRequestInput
}

type assignBody struct {
	AssigneeID int64 `json:"assignee_id" validate:"gte=0"`
}

type reasonBody struct {
	Reason string `json:"reason"`
}

type messageBody struct {
	Message string `json:"message"`
}

type liveBody struct {
	ExternalCampaignIDs map[string]string `json:"external_campaign_ids"`
}

// handleCreateAdRequest opens a managed campaign request for a purchased
// ad-creation line. The request starts in pending review and the marketing
// team is notified.
func (h *Handler) handleCreateAdRequest(w http.ResponseWriter, r *http.Request) {
	var body createAdRequestBody
	if !h.decode(w, r, &body) {
		return
	}
	req, err := h.ads.Create(r.Context(), body.OrderItemID, organizerID(r), body.EventID, body.AdRequestInput)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) handleListAdRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, ok := paging(w, q)
	if !ok {
		return
	}
	status := domain.AdRequestStatus(strings.TrimSpace(q.Get("status")))
	reqs, total, err := h.ads.ListByOrganizer(r.Context(), organizerID(r), status, limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(reqs, total))
}

func (h *Handler) handleGetAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	org := organizerID(r)
	req, err := h.ads.Get(r.Context(), id, &org)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleUpdateAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var patch domain.AdRequestPatch
	if !h.decode(w, r, &patch) {
		return
	}
	req, err := h.ads.Update(r.Context(), id, organizerID(r), patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleAddCreativeAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var asset domain.CreativeAsset
	if !h.decode(w, r, &asset) {
		return
	}
	req, err := h.ads.AddCreativeAsset(r.Context(), id, organizerID(r), asset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// handleRemoveCreativeAsset drops every asset whose URL equals the `url`
// query parameter.
func (h *Handler) handleRemoveCreativeAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	u := r.URL.Query().Get("url")
	if u == "" {
		badRequest(w, "missing url")
		return
	}
	req, err := h.ads.RemoveCreativeAsset(r.Context(), id, organizerID(r), u)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleListPendingAdRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r.URL.Query())
	if !ok {
		return
	}
	reqs, total, err := h.ads.ListPending(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPage(reqs, total))
}

func (h *Handler) handleAdRequestStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ads.Statistics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleAdminGetAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	req, err := h.ads.Get(r.Context(), id, nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// handleAssignAdRequest assigns the request to assignee_id, or to the
// calling reviewer when the body omits it.
func (h *Handler) handleAssignAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var body assignBody
	if r.ContentLength != 0 && !h.decode(w, r, &body) {
		return
	}
	assignee := body.AssigneeID
	if assignee == 0 {
		assignee = reviewerID(r)
	}
	req, err := h.ads.Assign(r.Context(), id, assignee)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleApproveAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	req, err := h.ads.Approve(r.Context(), id, reviewerID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleRejectAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var body reasonBody
	if !h.decode(w, r, &body) {
		return
	}
	req, err := h.ads.Reject(r.Context(), id, reviewerID(r), body.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleAdRequestNeedsInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var body messageBody
	if !h.decode(w, r, &body) {
		return
	}
	req, err := h.ads.RequestMoreInfo(r.Context(), id, reviewerID(r), body.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleMarkAdRequestLive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	var body liveBody
	if !h.decode(w, r, &body) {
		return
	}
	req, err := h.ads.MarkLive(r.Context(), id, body.ExternalCampaignIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleCompleteAdRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}
	req, err := h.ads.Complete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
