// Package respond writes JSON response bodies for the per-route handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"tms/internal/dto"
)

func JSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, body dto.ErrorResponse) error {
	return JSON(w, status, body)
}
