package handlers

import "net/http"

// Landing is the unauthenticated front page.
func Landing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "vitalog",
		"status":  "ok",
	})
}
