package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/wealthdeck/internal/database"
)

// SystemHandlers serves health and system status endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	portfolioDB *database.DB
	historyDB   *database.DB
	startedAt   time.Time
}

// NewSystemHandlers creates system handlers
func NewSystemHandlers(log zerolog.Logger, portfolioDB, historyDB *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("handler", "system").Logger(),
		portfolioDB: portfolioDB,
		historyDB:   historyDB,
		startedAt:   time.Now(),
	}
}

// HandleHealth is the liveness endpoint
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleSystemStatus reports database reachability and host resource usage
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"databases": map[string]bool{
			"portfolio": h.pingDB(h.portfolioDB),
			"history":   h.pingDB(h.historyDB),
		},
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status["cpu_percent"] = percents[0]
	} else if err != nil {
		h.log.Debug().Err(err).Msg("Failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		status["memory_percent"] = vm.UsedPercent
	} else {
		h.log.Debug().Err(err).Msg("Failed to read memory usage")
	}

	h.writeJSON(w, http.StatusOK, status)
}

func (h *SystemHandlers) pingDB(db *database.DB) bool {
	if db == nil {
		return false
	}
	return db.Conn().Ping() == nil
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
