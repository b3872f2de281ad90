package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"vitalog/internal/models"
)

const uniqueViolation = "23505"

type Users struct {
	db *sqlx.DB
}

func NewUsers(db *sqlx.DB) *Users { return &Users{db: db} }

func (s *Users) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, email, password_hash, created_at`,
		username, email, passwordHash).StructScan(&u)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			field := "username"
			if strings.Contains(pgErr.ConstraintName, "email") {
				field = "email"
			}
			return nil, &DuplicateIdentityError{Field: field}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE email=$1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (s *Users) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}
