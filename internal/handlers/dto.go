package handlers

import (
	"time"

	"vitalog/internal/models"
	"vitalog/internal/store"
)

// recordDTO keeps local_date a date-only string regardless of how the
// driver scanned it.
type recordDTO struct {
	ID                int    `json:"id"`
	UserID            int    `json:"user_id"`
	LocalDate         string `json:"local_date"`
	ExerciseMinutes   int    `json:"exercise_minutes"`
	MeditationMinutes int    `json:"meditation_minutes"`
	SleepHours        int    `json:"sleep_hours"`
	CreatedAt         string `json:"created_at"`
}

func toRecordDTO(rec models.HealthRecord) recordDTO {
	return recordDTO{
		ID:                rec.ID,
		UserID:            rec.UserID,
		LocalDate:         rec.LocalDate.Format("2006-01-02"),
		ExerciseMinutes:   rec.ExerciseMinutes,
		MeditationMinutes: rec.MeditationMinutes,
		SleepHours:        rec.SleepHours,
		CreatedAt:         rec.CreatedAt.Format(time.RFC3339),
	}
}

func toRecordDTOs(recs []models.HealthRecord) []recordDTO {
	out := make([]recordDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordDTO(rec))
	}
	return out
}

type profileDTO struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toProfileDTO(u models.User) profileDTO {
	return profileDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

type dashboardResponse struct {
	Entries []recordDTO    `json:"entries"`
	Summary *store.Summary `json:"summary"`
}
