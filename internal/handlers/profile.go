package handlers

import (
	"net/http"

	"vitalog/internal/middleware"
	"vitalog/internal/store"
)

type ProfileHandler struct {
	users store.UserStore
}

func NewProfileHandler(users store.UserStore) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Me returns the current user's profile. Identities are immutable here, so
// this surface is read-only.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(*u))
}
