package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"promo-orders/internal/core/domain"
)

type ctxKey int

const (
	organizerKey ctxKey = iota
	reviewerKey
)

type errorBody struct {
	Error string `json:"error"`
}

type pageBody[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func newPage[T any](items []T, total int64) pageBody[T] {
	if items == nil {
		items = []T{}
	}
	return pageBody[T]{Items: items, Total: total}
}

// requireOrganizer rejects requests without a positive X-Organizer-ID and
// stores the id in the request context.
func (h *Handler) requireOrganizer(next http.Handler) http.Handler {
	return identify("X-Organizer-ID", organizerKey, next)
}

func (h *Handler) requireReviewer(next http.Handler) http.Handler {
	return identify("X-Reviewer-ID", reviewerKey, next)
}

func identify(header string, key ctxKey, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(header), 10, 64)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing or invalid " + header})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, id)))
	})
}

func organizerID(r *http.Request) int64 {
	id, _ := r.Context().Value(organizerKey).(int64)
	return id
}

func reviewerID(r *http.Request) int64 {
	id, _ := r.Context().Value(reviewerKey).(int64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusOf(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code. Internal errors are logged and
// replaced by a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, "invalid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, r, err)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}

// paging reads optional limit and offset query parameters. Bounds are
// applied by the use cases.
func paging(w http.ResponseWriter, q url.Values) (limit, offset int, ok bool) {
	var err error
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			badRequest(w, "invalid limit")
			return 0, 0, false
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			badRequest(w, "invalid offset")
			return 0, 0, false
		}
	}
	return limit, offset, true
}

func platformParam(q url.Values) *domain.AdPlatform {
	v := q.Get("platform")
	if v == "" {
		return nil
	}
	p := domain.AdPlatform(v)
	return &p
}
