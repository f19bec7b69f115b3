package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy"
)

type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	CheckedAt time.Time    `json:"checked_at"`
	UptimeSec int64        `json:"uptime_sec"`
	Artifacts int          `json:"artifacts"`
}

// LedgerStats is the health handler's view of the content hub.
type LedgerStats interface {
	Len() int
}

type HealthHandler struct {
	ledger  LedgerStats
	started time.Time
}

func NewHealthHandler(ledger LedgerStats) *HealthHandler {
	return &HealthHandler{ledger: ledger, started: time.Now()}
}

// pingHandler just says the service is up.
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// healthCheckHandler reports readiness. All state is in-process, so the
// only meaningful signal is that the ledger is reachable.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    HealthHealthy,
		CheckedAt: time.Now(),
		UptimeSec: int64(time.Since(h.started).Seconds()),
		Artifacts: h.ledger.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
