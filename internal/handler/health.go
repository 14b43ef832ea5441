package handler

import "net/http"

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealthz reports that the process is serving.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
