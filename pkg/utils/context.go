package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
	tokenKey
	expiryKey
)

// SetUserContext records the authenticated user for the rest of the request.
func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserIDFromContext reports false for anonymous requests.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetTokenFromContext returns the session token set by the auth middleware
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

func SetSessionExpiryContext(ctx context.Context, expiresAt time.Time) context.Context {
	return context.WithValue(ctx, expiryKey, expiresAt)
}

// GetSessionExpiryFromContext reports when the caller's session stops being valid.
func GetSessionExpiryFromContext(ctx context.Context) (time.Time, bool) {
	at, ok := ctx.Value(expiryKey).(time.Time)
	return at, ok && !at.IsZero()
}
