package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

// SessionRepository stores login sessions keyed by their opaque token.
// Callers pass the clock so expiry checks agree with the service layer.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindActive returns nil when the token is unknown, revoked or expired at `at`.
	FindActive(ctx context.Context, token uuid.UUID, at time.Time) (*entity.Session, error)
	// Revoke reports false when there was no live session to revoke.
	Revoke(ctx context.Context, token uuid.UUID, at time.Time) (bool, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, user_id, token, user_agent, ip_address, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.Token, s.UserAgent, s.IPAddress, s.ExpiresAt, s.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", s.UserID.String()))
		return fmt.Errorf("create session for user %s: %w", s.UserID, err)
	}
	return nil
}

func (r *sessionRepository) FindActive(ctx context.Context, token uuid.UUID, at time.Time) (*entity.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, token, user_agent, ip_address, expires_at, revoked_at, created_at
		 FROM sessions
		 WHERE token = $1 AND revoked_at IS NULL AND expires_at > $2`,
		token, at,
	)

	var s entity.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.UserAgent, &s.IPAddress, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		r.log.Error("Failed to look up session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = $2 WHERE token = $1 AND revoked_at IS NULL`,
		token, at,
	)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return false, fmt.Errorf("revoke session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
