package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
	"github.com/N4th0wl/HangTuah-Website/internal/service"
)

type contextKey string

const claimsKey contextKey = "claims"

// Authenticate verifies the Bearer token and stores the caller's claims in
// the request context.
func (h *Handler) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := h.Tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// RequireAdmin chains Authenticate and gates on the admin role.
func (h *Handler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		if claimsFrom(r).Role != domain.RoleAdmin {
			writeJSONError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	})
}

func claimsFrom(r *http.Request) *service.Claims {
	claims, _ := r.Context().Value(claimsKey).(*service.Claims)
	return claims
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Storage
// failures surface generically so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidState):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeJSONError(w, http.StatusConflict, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
