// Package handlers provides HTTP handlers for allocation data.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
)

// Handler handles allocation HTTP requests
type Handler struct {
	service *allocation.Service
	log     zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(service *allocation.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "allocation").Logger(),
	}
}

// RegisterRoutes registers the raw allocation route. The chart and table
// variants are registered by their own modules.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/allocation", h.HandleGetAllocation)
}

// HandleGetAllocation returns the aggregated slices for a dimension.
// Query: ?dimension=asset_type|sector|platform (default asset_type)
func (h *Handler) HandleGetAllocation(w http.ResponseWriter, r *http.Request) {
	dimension := allocation.ParseDimension(r.URL.Query().Get("dimension"))

	slices, total, err := h.service.Aggregated(dimension)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if slices == nil {
		slices = []allocation.AggregatedSlice{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimension":   dimension,
		"total_value": total,
		"slices":      slices,
	})
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
