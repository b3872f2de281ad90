package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"vitalog/internal/models"
)

type Records struct {
	db *sqlx.DB
}

func NewRecords(db *sqlx.DB) *Records { return &Records{db: db} }

func (s *Records) Create(ctx context.Context, ownerID int, date time.Time, exercise, meditation, sleep int) (*models.HealthRecord, error) {
	var rec models.HealthRecord
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO health_data (user_id, local_date, exercise_minutes, meditation_minutes, sleep_hours)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, local_date, exercise_minutes, meditation_minutes, sleep_hours, created_at`,
		ownerID, date, exercise, meditation, sleep).StructScan(&rec)
	if err != nil {
		return nil, fmt.Errorf("insert health record: %w", err)
	}
	return &rec, nil
}

func (s *Records) ListByOwner(ctx context.Context, ownerID int) ([]models.HealthRecord, error) {
	var out []models.HealthRecord
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, user_id, local_date, exercise_minutes, meditation_minutes, sleep_hours, created_at
		 FROM health_data WHERE user_id=$1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return out, nil
}

func (s *Records) SummaryByOwner(ctx context.Context, ownerID int) (*Summary, error) {
	var sum Summary
	err := s.db.GetContext(ctx, &sum, `
		SELECT
			COUNT(*) AS total_entries,
			COALESCE(SUM(exercise_minutes), 0) AS total_exercise_minutes,
			COALESCE(SUM(meditation_minutes), 0) AS total_meditation_minutes,
			COALESCE(AVG(sleep_hours), 0) AS avg_sleep_hours
		FROM health_data WHERE user_id=$1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("summarize health records: %w", err)
	}
	return &sum, nil
}
