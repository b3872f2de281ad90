package handlers_test

import (
	"context"
	"fmt"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/store"
)

// In-memory stores standing in for Postgres. Uniqueness and scoping rules
// match the real schema.

type memUsers struct {
	nextID int
	users  []*models.User
}

func newMemUsers() *memUsers { return &memUsers{nextID: 1} }

func (m *memUsers) Create(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return nil, &store.DuplicateIdentityError{Field: "username"}
		}
		if u.Email == email {
			return nil, &store.DuplicateIdentityError{Field: "email"}
		}
	}
	u := &models.User{
		ID:           m.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextID++
	m.users = append(m.users, u)
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

type memSessions struct {
	nextID   int
	sessions map[string]*models.Session
}

func newMemSessions() *memSessions {
	return &memSessions{nextID: 1, sessions: map[string]*models.Session{}}
}

func (m *memSessions) Create(_ context.Context, userID int, expiresAt time.Time) (*models.Session, error) {
	s := &models.Session{
		ID:        fmt.Sprintf("sess-%d", m.nextID),
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memSessions) Get(_ context.Context, id string) (*models.Session, error) {
	s, ok := m.sessions[id]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memSessions) DeleteExpired(_ context.Context) error {
	for id, s := range m.sessions {
		if time.Now().After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	return nil
}

type memRecords struct {
	nextID  int
	records []models.HealthRecord
}

func newMemRecords() *memRecords { return &memRecords{nextID: 1} }

func (m *memRecords) Create(_ context.Context, ownerID int, date time.Time, exercise, meditation, sleep int) (*models.HealthRecord, error) {
	rec := models.HealthRecord{
		ID:                m.nextID,
		UserID:            ownerID,
		LocalDate:         date,
		ExerciseMinutes:   exercise,
		MeditationMinutes: meditation,
		SleepHours:        sleep,
		CreatedAt:         time.Now(),
	}
	m.nextID++
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *memRecords) ListByOwner(_ context.Context, ownerID int) ([]models.HealthRecord, error) {
	var out []models.HealthRecord
	for _, rec := range m.records {
		if rec.UserID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memRecords) SummaryByOwner(ctx context.Context, ownerID int) (*store.Summary, error) {
	recs, _ := m.ListByOwner(ctx, ownerID)
	sum := &store.Summary{TotalEntries: len(recs)}
	for _, rec := range recs {
		sum.TotalExerciseMinutes += rec.ExerciseMinutes
		sum.TotalMeditationMin += rec.MeditationMinutes
		sum.AvgSleepHours += float64(rec.SleepHours)
	}
	if len(recs) > 0 {
		sum.AvgSleepHours /= float64(len(recs))
	}
	return sum, nil
}
