// Package store persists user identities, server-side sessions, and health
// records in Postgres. Handlers depend on the interfaces below so tests can
// substitute in-memory fakes.
package store

import (
	"context"
	"time"

	"vitalog/internal/models"
)

type UserStore interface {
	// Create inserts a new identity. Username/email collisions surface as
	// ErrDuplicateIdentity; the insert is atomic against concurrent
	// registration of the same value.
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID int, expiresAt time.Time) (*models.Session, error)
	// Get returns ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Delete is idempotent: deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes rows whose expiry has passed. Get already
	// refuses them; this keeps the table from growing without bound.
	DeleteExpired(ctx context.Context) error
}

// Summary aggregates a user's records for the dashboard.
type Summary struct {
	TotalEntries         int     `db:"total_entries" json:"total_entries"`
	TotalExerciseMinutes int     `db:"total_exercise_minutes" json:"total_exercise_minutes"`
	TotalMeditationMin   int     `db:"total_meditation_minutes" json:"total_meditation_minutes"`
	AvgSleepHours        float64 `db:"avg_sleep_hours" json:"avg_sleep_hours"`
}

type RecordStore interface {
	// Create persists a record owned by ownerID. Ownership is fixed at
	// creation; there is no update or delete.
	Create(ctx context.Context, ownerID int, date time.Time, exercise, meditation, sleep int) (*models.HealthRecord, error)
	// ListByOwner returns the owner's records in insertion order.
	ListByOwner(ctx context.Context, ownerID int) ([]models.HealthRecord, error)
	SummaryByOwner(ctx context.Context, ownerID int) (*Summary, error)
}
