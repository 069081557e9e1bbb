// Package handlers provides HTTP handlers for the allocation breakdown table.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
	"github.com/aristath/wealthdeck/internal/modules/breakdown"
	"github.com/aristath/wealthdeck/internal/modules/interaction"
)

// Handler handles breakdown table HTTP requests
type Handler struct {
	allocationSvc *allocation.Service
	focus         *interaction.Controller
	log           zerolog.Logger
}

// NewHandler creates a new breakdown handler
func NewHandler(allocationSvc *allocation.Service, focus *interaction.Controller, log zerolog.Logger) *Handler {
	return &Handler{
		allocationSvc: allocationSvc,
		focus:         focus,
		log:           log.With().Str("handler", "breakdown").Logger(),
	}
}

// RegisterRoutes registers the table route
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/allocation/table", h.HandleGetTable)
}

// HandleGetTable returns the breakdown table at the current focus.
// Query: ?dimension=asset_type|sector|platform (default asset_type)
func (h *Handler) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	dimension := allocation.ParseDimension(r.URL.Query().Get("dimension"))

	slices, _, err := h.allocationSvc.Aggregated(dimension)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	table := breakdown.BuildTable(slices, h.focus.CurrentIndex())
	h.writeJSON(w, http.StatusOK, table)
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
