package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-profile-api/internal/models"
)

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the uniform error envelope.
func writeError(w http.ResponseWriter, status int, label, message string) {
	writeJSON(w, status, models.NewErrorResponse(status, label, message))
}
