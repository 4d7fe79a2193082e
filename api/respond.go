package api

import (
	"encoding/json"
	"net/http"

	"overlayServer/engine"
	"overlayServer/state"
)

var (
	eng     *engine.Engine
	overlay *state.OverlayState
)

// Init hands the API handlers their engine and session state. Call once
// at startup.
func Init(e *engine.Engine, o *state.OverlayState) {
	eng = e
	overlay = o
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, ErrorResponse{Success: false, Error: message})
}
