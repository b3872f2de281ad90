package handlers

import (
	"encoding/json"
	"net/http"

	"vitalog/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFieldErrors reports recoverable per-field input problems; the caller
// re-renders the originating form with these inline.
func writeFieldErrors(w http.ResponseWriter, status int, errs validate.FieldErrors) {
	writeJSON(w, status, map[string]any{"errors": errs})
}
