// Package handlers provides HTTP handlers for the allocation chart.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
	"github.com/aristath/wealthdeck/internal/modules/charts"
	"github.com/aristath/wealthdeck/internal/modules/interaction"
	"github.com/aristath/wealthdeck/internal/modules/performance"
)

// Handler handles chart HTTP requests
type Handler struct {
	allocationSvc  *allocation.Service
	chartSvc       *charts.Service
	performanceSvc *performance.Service
	focus          *interaction.Controller
	log            zerolog.Logger
}

// NewHandler creates a new charts handler
func NewHandler(
	allocationSvc *allocation.Service,
	chartSvc *charts.Service,
	performanceSvc *performance.Service,
	focus *interaction.Controller,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		allocationSvc:  allocationSvc,
		chartSvc:       chartSvc,
		performanceSvc: performanceSvc,
		focus:          focus,
		log:            log.With().Str("handler", "charts").Logger(),
	}
}

// RegisterRoutes registers the chart route
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/allocation/chart", h.HandleGetChart)
}

// HandleGetChart returns the render-ready chart view at the current focus.
// Query: ?dimension=asset_type|sector|platform (default asset_type)
func (h *Handler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	dimension := allocation.ParseDimension(r.URL.Query().Get("dimension"))

	slices, total, err := h.allocationSvc.Aggregated(dimension)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dayChange, err := h.performanceSvc.DayChange()
	if err != nil {
		// Day change is decoration on the center label; the chart still renders.
		h.log.Warn().Err(err).Msg("Failed to compute day change")
		dayChange = nil
	}

	view := h.chartSvc.BuildChart(slices, total, h.focus.CurrentIndex(), dayChange)
	h.writeJSON(w, http.StatusOK, view)
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
