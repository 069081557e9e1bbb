// Package handlers provides HTTP handlers for portfolio performance.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/performance"
)

// Handler handles performance HTTP requests
type Handler struct {
	service *performance.Service
	log     zerolog.Logger
}

// NewHandler creates a new performance handler
func NewHandler(service *performance.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "performance").Logger(),
	}
}

// RegisterRoutes registers all performance routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/summary", h.HandleGetSummary)
		r.Get("/day-change", h.HandleGetDayChange)
		r.Get("/return-stats", h.HandleGetReturnStats)
		r.Post("/snapshot", h.HandleRecordSnapshot)
	})
}

// HandleGetSummary returns portfolio totals plus day-over-day change
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Totals()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dayChange, err := h.service.DayChange()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to compute day change")
		dayChange = nil
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"totals":     totals,
		"day_change": dayChange,
	})
}

// HandleGetDayChange returns the day-over-day change, or null with
// fewer than two snapshots
func (h *Handler) HandleGetDayChange(w http.ResponseWriter, r *http.Request) {
	dayChange, err := h.service.DayChange()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"day_change": dayChange})
}

// HandleGetReturnStats returns summary stats over recent snapshot returns.
// Query: ?days=30 (default 30)
func (h *Handler) HandleGetReturnStats(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	stats, err := h.service.ReturnStats(days)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// HandleRecordSnapshot records today's snapshot on demand (the daily job
// does this automatically)
func (h *Handler) HandleRecordSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RecordSnapshot(); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
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
