package api

import (
	"math"
	"net/http"
	"strconv"
)

// PythagoreResponse represents the hypotenuse calculation result
type PythagoreResponse struct {
	Success bool    `json:"success"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	Result  float64 `json:"result"`
}

// HandlePythagore handles GET /api/pythagore?a=3&b=4
// The overlay's mini-calculator: √(a²+b²).
func HandlePythagore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	a, errA := strconv.ParseFloat(r.URL.Query().Get("a"), 64)
	b, errB := strconv.ParseFloat(r.URL.Query().Get("b"), 64)
	if errA != nil || errB != nil {
		sendError(w, http.StatusBadRequest, "a and b must be numbers")
		return
	}

	sendJSON(w, http.StatusOK, PythagoreResponse{
		Success: true,
		A:       a,
		B:       b,
		Result:  math.Sqrt(a*a + b*b),
	})
}
