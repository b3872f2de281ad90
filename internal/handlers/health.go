package handlers

import (
	"net/http"
	"strconv"
	"time"

	"vitalog/internal/middleware"
	"vitalog/internal/store"
	"vitalog/internal/validate"
)

type HealthHandler struct {
	records store.RecordStore
}

func NewHealthHandler(records store.RecordStore) *HealthHandler {
	return &HealthHandler{records: records}
}

// Form describes the health entry form for the external renderer.
func (h *HealthHandler) Form(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"fields": []string{"date", "exercise", "meditation", "sleep"},
	})
}

// Submit creates a health record owned by the session identity. Ownership
// comes from the validated session only; a user_id in the form is ignored.
func (h *HealthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	errs := validate.FieldErrors{}
	exercise := parseIntField(r.PostFormValue("exercise"), "exercise", errs)
	meditation := parseIntField(r.PostFormValue("meditation"), "meditation", errs)
	sleep := parseIntField(r.PostFormValue("sleep"), "sleep", errs)
	if !errs.OK() {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	in := validate.HealthRecordInput{
		Date:       r.PostFormValue("date"),
		Exercise:   exercise,
		Meditation: meditation,
		Sleep:      sleep,
	}
	if errs := validate.HealthRecord(in); !errs.OK() {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}
	date, _ := time.Parse("2006-01-02", in.Date)

	if _, err := h.records.Create(r.Context(), userID, date, in.Exercise, in.Meditation, in.Sleep); err != nil {
		writeError(w, http.StatusInternalServerError, "could not save entry")
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Dashboard lists the caller's records in insertion order together with
// summary aggregates. Records are always scoped to the session identity.
func (h *HealthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	recs, err := h.records.ListByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch entries")
		return
	}
	sum, err := h.records.SummaryByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch summary")
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Entries: toRecordDTOs(recs),
		Summary: sum,
	})
}

func parseIntField(v, field string, errs validate.FieldErrors) int {
	if v == "" {
		errs[field] = field + " is required"
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		errs[field] = field + " must be an integer"
		return 0
	}
	return n
}
