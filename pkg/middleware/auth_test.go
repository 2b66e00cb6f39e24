package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type stubSessions struct {
	sessions map[uuid.UUID]*entity.Session
	err      error
}

func (s *stubSessions) Create(context.Context, *entity.Session) error { return nil }
func (s *stubSessions) Revoke(context.Context, uuid.UUID, time.Time) (bool, error) {
	return true, nil
}

func (s *stubSessions) FindActive(_ context.Context, token uuid.UUID, at time.Time) (*entity.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	session := s.sessions[token]
	if session == nil || !session.ExpiresAt.After(at) {
		return nil, nil
	}
	return session, nil
}

type stubUsers struct{ users map[uuid.UUID]*entity.User }

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func newAuthFixture(role entity.UserRole, active bool) (*stubSessions, *stubUsers, string, uuid.UUID) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Role: role, IsActive: active}
	token := uuid.New()
	sessions := &stubSessions{sessions: map[uuid.UUID]*entity.Session{
		token: {UserID: user.ID, Token: token, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	users := &stubUsers{users: map[uuid.UUID]*entity.User{user.ID: user}}
	return sessions, users, token.String(), user.ID
}

func TestAuthSession(t *testing.T) {
	sessions, users, token, userID := newAuthFixture(entity.RoleCustomer, true)

	var gotUser uuid.UUID
	var gotToken string
	var gotExpiry time.Time
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.GetUserIDFromContext(r.Context())
		gotToken, _ = utils.GetTokenFromContext(r.Context())
		gotExpiry, _ = utils.GetSessionExpiryFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthSession(sessions, users, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"unknown token", "Bearer " + uuid.NewString(), http.StatusUnauthorized},
		{"malformed token", "Bearer not-a-session", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusNoContent},
		{"scheme is case insensitive", "bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, userID, gotUser)
	assert.Equal(t, token, gotToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), gotExpiry, time.Minute)
}

func TestAuthSession_InactiveUser(t *testing.T) {
	sessions, users, token, _ := newAuthFixture(entity.RoleCustomer, false)
	handler := AuthSession(sessions, users, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSession_StoreError(t *testing.T) {
	sessions, users, token, _ := newAuthFixture(entity.RoleCustomer, true)
	sessions.err = errors.New("connection refused")
	handler := AuthSession(sessions, users, zap.NewNop())(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := Admin(zap.NewNop())(ok)

	tests := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{"anonymous", context.Background(), http.StatusUnauthorized},
		{"customer", utils.SetUserContext(context.Background(), uuid.New(), string(entity.RoleCustomer)), http.StatusForbidden},
		{"admin", utils.SetUserContext(context.Background(), uuid.New(), string(entity.RoleAdmin)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/tours", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
