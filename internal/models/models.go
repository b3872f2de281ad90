package models

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type HealthRecord struct {
	ID                int       `db:"id" json:"id"`
	UserID            int       `db:"user_id" json:"user_id"`
	LocalDate         time.Time `db:"local_date" json:"-"`
	ExerciseMinutes   int       `db:"exercise_minutes" json:"exercise_minutes"`
	MeditationMinutes int       `db:"meditation_minutes" json:"meditation_minutes"`
	SleepHours        int       `db:"sleep_hours" json:"sleep_hours"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Session is the server-side half of an authenticated session. The cookie
// holds a signed token referencing this row; deleting the row revokes the
// session even while the token signature is still valid.
type Session struct {
	ID        string    `db:"id"`
	UserID    int       `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
