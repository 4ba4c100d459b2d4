package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"promo-orders/internal/core/domain"
)

// handleListTypes returns the active catalog. With a non-empty `q` query
// parameter it returns only types whose names or descriptions, or those of
// their options, match the query.
func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	var (
		types []domain.PromotionType
		err   error
	)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		types, err = h.catalog.Search(r.Context(), q)
	} else {
		types, err = h.catalog.ListTypes(r.Context())
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if types == nil {
		types = []domain.PromotionType{}
	}
	writeJSON(w, http.StatusOK, types)
}

// handleGetType looks a type up by numeric id or, failing that, by slug.
func (h *Handler) handleGetType(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "type")
	var (
		t   *domain.PromotionType
		err error
	)
	if id, perr := strconv.ParseInt(ref, 10, 64); perr == nil {
		t, err = h.catalog.GetType(r.Context(), id)
	} else {
		t, err = h.catalog.GetTypeBySlug(r.Context(), ref)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleGetOptionByCode(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(w, r, "type")
	if !ok {
		return
	}
	o, err := h.catalog.GetOptionByCode(r.Context(), typeID, chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleGetOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "optionID")
	if !ok {
		return
	}
	o, err := h.catalog.GetOption(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
