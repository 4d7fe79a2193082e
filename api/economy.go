package api

import (
	"net/http"

	"overlayServer/engine"
)

/* =========================
   RESPONSE TYPES
========================= */

// BalanceResponse represents the current cookie balance
type BalanceResponse struct {
	Success bool  `json:"success"`
	Balance int64 `json:"balance"`
}

// ShopResponse represents the upgrade catalog with owned counts
type ShopResponse struct {
	Success   bool                    `json:"success"`
	Inventory []engine.InventoryEntry `json:"inventory"`
}

// RaceResponse represents the race roster and last result
type RaceResponse struct {
	Success    bool     `json:"success"`
	Horses     []string `json:"horses"`
	Positions  []int    `json:"positions"`
	Phase      string   `json:"phase"`
	LastWinner int      `json:"lastWinner"`
	LastPayout int64    `json:"lastPayout"`
}

/* =========================
   HTTP ENDPOINTS
========================= */

// HandleGetBalance handles GET /api/balance
func HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, BalanceResponse{
		Success: true,
		Balance: eng.Ledger.Balance(),
	})
}

// HandleGetShop handles GET /api/shop
func HandleGetShop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, ShopResponse{
		Success:   true,
		Inventory: eng.Shop.Inventory(),
	})
}

// HandleGetRace handles GET /api/race
func HandleGetRace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	winner, payout := eng.Race.LastResult()
	sendJSON(w, http.StatusOK, RaceResponse{
		Success:    true,
		Horses:     eng.Race.Horses(),
		Positions:  eng.Race.Positions(),
		Phase:      string(eng.Race.Phase()),
		LastWinner: winner,
		LastPayout: payout,
	})
}
