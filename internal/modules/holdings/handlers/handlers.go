// Package handlers provides HTTP handlers for the holdings store.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/holdings"
)

// Handler handles holdings HTTP requests
type Handler struct {
	repo *holdings.Repository
	log  zerolog.Logger
}

// NewHandler creates a new holdings handler
func NewHandler(repo *holdings.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "holdings").Logger(),
	}
}

// RegisterRoutes registers all holdings routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/holdings", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{id}", h.HandleGet)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}

// HandleList returns all holdings ordered by value
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if all == nil {
		all = []holdings.Holding{}
	}
	h.writeJSON(w, http.StatusOK, all)
}

// HandleGet returns a single holding by ID
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	holding, err := h.repo.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if holding == nil {
		h.writeError(w, http.StatusNotFound, "holding not found")
		return
	}
	h.writeJSON(w, http.StatusOK, holding)
}

// HandleCreate inserts a new holding
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var holding holdings.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if holding.Symbol == "" || holding.Name == "" {
		h.writeError(w, http.StatusBadRequest, "symbol and name are required")
		return
	}
	if holding.Shares < 0 || holding.AvgCost < 0 || holding.CurrentPrice < 0 {
		h.writeError(w, http.StatusBadRequest, "shares and prices must not be negative")
		return
	}

	created, err := h.repo.Create(holding)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate replaces an existing holding
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var holding holdings.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	holding.ID = chi.URLParam(r, "id")

	updated, err := h.repo.Update(holding)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		h.writeError(w, http.StatusNotFound, "holding not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// HandleDelete removes a holding
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.Delete(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "holding not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
