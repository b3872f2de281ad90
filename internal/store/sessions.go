package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vitalog/internal/models"
)

type Sessions struct {
	db *sqlx.DB
}

func NewSessions(db *sqlx.DB) *Sessions { return &Sessions{db: db} }

func (s *Sessions) Create(ctx context.Context, userID int, expiresAt time.Time) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, expires_at, created_at`,
		uuid.NewString(), userID, expiresAt).StructScan(&sess)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &sess, nil
}

func (s *Sessions) Get(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.db.GetContext(ctx, &sess,
		`SELECT id, user_id, expires_at, created_at FROM sessions WHERE id=$1 AND expires_at > NOW()`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

func (s *Sessions) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Sessions) DeleteExpired(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`); err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
