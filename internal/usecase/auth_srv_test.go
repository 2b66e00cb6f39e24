package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

type fakeUserRepo struct{ users map[uuid.UUID]*entity.User }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct{ sessions map[uuid.UUID]*entity.Session }

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *fakeSessionRepo) FindActive(_ context.Context, token uuid.UUID, at time.Time) (*entity.Session, error) {
	s := r.sessions[token]
	if s == nil || s.RevokedAt != nil || !s.ExpiresAt.After(at) {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID, at time.Time) (bool, error) {
	s := r.sessions[token]
	if s == nil || s.RevokedAt != nil {
		return false, nil
	}
	s.RevokedAt = &at
	return true, nil
}

func newTestAuthService(t *testing.T) (AuthService, *sessionhub.Hub, *fakeUserRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	repo := &repository.Repository{
		User:    users,
		Session: &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}},
	}
	hub := sessionhub.New(zap.NewNop())
	t.Cleanup(hub.Close)

	cfg := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 2}}
	return NewAuthService(repo, hub, cfg, zap.NewNop()), hub, users
}

func TestAuth_LogoutSignsOutOnlyThatDevice(t *testing.T) {
	svc, hub, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "linh", Email: "linh@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)

	// second device; email works as the login identifier too
	other, err := svc.Login(ctx, &request.LoginRequest{Username: "LINH@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.Token, other.Token)

	userID := uuid.MustParse(registered.UserID)
	firstEvents, cancelFirst := hub.Subscribe(userID, uuid.MustParse(registered.Token))
	defer cancelFirst()
	otherEvents, cancelOther := hub.Subscribe(userID, uuid.MustParse(other.Token))
	defer cancelOther()

	authed := utils.SetUserContext(ctx, userID, string(entity.RoleCustomer))
	require.NoError(t, svc.Logout(authed, registered.Token))

	require.Len(t, firstEvents, 1)
	assert.Equal(t, sessionhub.StateAnonymous, (<-firstEvents).State)
	assert.Empty(t, otherEvents)

	state, err := svc.Session(ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, string(sessionhub.StateAnonymous), state.State)
	assert.Nil(t, state.User)

	state, err = svc.Session(ctx, other.Token)
	require.NoError(t, err)
	assert.Equal(t, string(sessionhub.StateAuthenticated), state.State)
	require.NotNil(t, state.User)
	assert.Equal(t, "linh", state.User.Username)
}

func TestAuth_LogoutTwiceIsHarmless(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{Username: "quan", Email: "quan@example.com", Password: "secret123"})
	require.NoError(t, err)

	authed := utils.SetUserContext(ctx, uuid.MustParse(resp.UserID), string(entity.RoleCustomer))
	require.NoError(t, svc.Logout(authed, resp.Token))
	assert.NoError(t, svc.Logout(authed, resp.Token))
}

func TestAuth_RegisterConflicts(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "minh", Email: "minh@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &request.RegisterRequest{Username: "other", Email: "minh@example.com", Password: "secret123"})
	assert.EqualError(t, err, "email already registered")

	_, err = svc.Register(ctx, &request.RegisterRequest{Username: "minh", Email: "new@example.com", Password: "secret123"})
	assert.EqualError(t, err, "username already taken")
}

func TestAuth_LoginRejections(t *testing.T) {
	svc, _, users := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{Username: "an", Email: "an@example.com", Password: "secret123"})
	require.Error(t, err, "username shorter than 3")
	assert.Nil(t, resp)

	resp, err = svc.Register(ctx, &request.RegisterRequest{Username: "anh", Email: "anh@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "anh", Password: "wrong-pass"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.EqualError(t, err, "invalid credentials")

	users.users[uuid.MustParse(resp.UserID)].IsActive = false
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "anh", Password: "secret123"})
	assert.EqualError(t, err, "account is deactivated")
}

func TestAuth_SessionWithGarbageToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	state, err := svc.Session(context.Background(), "not-a-token")
	require.NoError(t, err)
	assert.Equal(t, string(sessionhub.StateAnonymous), state.State)

	assert.EqualError(t, svc.Logout(context.Background(), "not-a-token"), "invalid token")
}
