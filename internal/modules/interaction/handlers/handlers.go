// Package handlers provides HTTP handlers for focus state. Pointer events
// from the legend/table arrive here; chart-side events arrive the same way
// from the frontend chart component.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/interaction"
)

// Handler handles focus HTTP requests
type Handler struct {
	focus *interaction.Controller
	log   zerolog.Logger
}

// NewHandler creates a new focus handler
func NewHandler(focus *interaction.Controller, log zerolog.Logger) *Handler {
	return &Handler{
		focus: focus,
		log:   log.With().Str("handler", "focus").Logger(),
	}
}

// RegisterRoutes registers the focus routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/focus", func(r chi.Router) {
		r.Get("/", h.HandleGetFocus)
		r.Post("/", h.HandleSetFocus)
		r.Delete("/", h.HandleClearFocus)
	})
}

// HandleGetFocus returns the current focus state
func (h *Handler) HandleGetFocus(w http.ResponseWriter, r *http.Request) {
	index, active := h.focus.Current()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"index":  index,
		"active": active,
	})
}

// HandleSetFocus sets the focus from a pointer-over event.
// Body: {"index": 2, "source": "chart"|"legend"}
func (h *Handler) HandleSetFocus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index  int    `json:"index"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source, ok := interaction.ParseSource(req.Source)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "source must be chart or legend")
		return
	}
	if req.Index < 0 {
		h.writeError(w, http.StatusBadRequest, "index must not be negative")
		return
	}

	h.focus.SetFocus(req.Index, source)
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearFocus clears the focus on a pointer-leave event.
// The clear only applies if the given source still holds the focus.
// Query: ?source=chart|legend
func (h *Handler) HandleClearFocus(w http.ResponseWriter, r *http.Request) {
	source, ok := interaction.ParseSource(r.URL.Query().Get("source"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "source must be chart or legend")
		return
	}

	h.focus.ClearFocus(source)
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
