// Package api exposes the banned list, the anti-spam gate, and identity
// validation over REST endpoints.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/spamguard/internal/domain"
	"github.com/ignite/spamguard/internal/service/bannedlist"
	"github.com/ignite/spamguard/internal/service/identity"
)

// Handlers holds the collaborators the HTTP layer delegates to.
type Handlers struct {
	list      *bannedlist.Service
	gate      identity.Gate
	validator *identity.Validator
}

// NewHandlers creates the HTTP handler set.
func NewHandlers(list *bannedlist.Service, gate identity.Gate, validator *identity.Validator) *Handlers {
	return &Handlers{list: list, gate: gate, validator: validator}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Health check

// HealthCheck returns the health status of the API.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Banned list

// HandleCheck reports whether a single email is blocked. The decision goes
// through the gate, so a store outage answers "not blocked" instead of 500.
func (h *Handlers) HandleCheck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	blocked := h.gate.IsBlocked(r.Context(), email)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"email":   domain.NormalizeEmail(email),
		"blocked": blocked,
	})
}

// HandleBan adds an email to the banned list.
func (h *Handlers) HandleBan(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.list.Ban(r.Context(), input.Email); err != nil {
		writeListError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"email":  domain.NormalizeEmail(input.Email),
		"status": "banned",
	})
}

// HandleUnban removes an email from the banned list. Unbanning an address
// that was never banned still answers 200.
func (h *Handlers) HandleUnban(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := h.list.Unban(r.Context(), email); err != nil {
		writeListError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"email":  domain.NormalizeEmail(email),
		"status": "unbanned",
	})
}

// HandleList returns every banned address.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	emails, err := h.list.AllBanned(r.Context())
	if err != nil {
		writeListError(w, err)
		return
	}
	if emails == nil {
		emails = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"emails": emails,
		"count":  len(emails),
	})
}

// HandleClear empties the banned list.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.list.Clear(r.Context()); err != nil {
		writeListError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func writeListError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bannedlist.ErrEmptyEmail):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bannedlist.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// Identity validation

// HandleValidate constructs a validated identity from the request body.
// Rejections are typed: invalid format answers 422, a blocked address 403.
func (h *Handlers) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	addr, err := h.validator.ParseChecked(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFormat):
			respondJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error":  "invalid_format",
				"detail": err.Error(),
			})
		case errors.Is(err, identity.ErrBlocked):
			respondJSON(w, http.StatusForbidden, map[string]string{
				"error":  "blocked",
				"detail": err.Error(),
			})
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"email":     addr.String(),
		"user_part": addr.UserPart(),
		"domain":    addr.Domain(),
	})
}
