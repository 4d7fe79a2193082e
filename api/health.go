package api

import (
	"net/http"
	"time"

	"overlayServer/ws"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Success          bool    `json:"success"`
	Status           string  `json:"status"`
	UptimeSeconds    float64 `json:"uptimeSeconds"`
	ConnectedClients int64   `json:"connectedClients"`
	PendingTimers    int     `json:"pendingTimers"`
}

// HandleHealthCheck handles GET /api/health
func HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, HealthResponse{
		Success:          true,
		Status:           "ok",
		UptimeSeconds:    overlay.Uptime(time.Now()).Seconds(),
		ConnectedClients: ws.ClientCount(),
		PendingTimers:    eng.Sched.Len(),
	})
}
