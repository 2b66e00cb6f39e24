package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"
)

// UserRepository finds accounts for login and the session middleware.
// Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, username, email, password, phone, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Phone, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert user", zap.Error(err), zap.String("username", u.Username))
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findWhere(ctx, "id = $1", id)
}

// FindByEmail ignores case; addresses are stored as typed.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findWhere(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findWhere(ctx, "username = $1", username)
}

func (r *userRepository) findWhere(ctx context.Context, cond string, arg any) (*entity.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, email, password, phone, role, is_active, created_at, updated_at, deleted_at
		 FROM users WHERE deleted_at IS NULL AND `+cond,
		arg,
	)

	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		r.log.Error("Failed to look up user", zap.Error(err), zap.String("where", cond), zap.Any("arg", arg))
		return nil, fmt.Errorf("find user where %s: %w", cond, err)
	}
	return &u, nil
}
