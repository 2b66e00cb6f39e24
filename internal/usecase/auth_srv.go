package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*response.SessionResponse, error)
}

type authService struct {
	repo   *repository.Repository
	hub    *sessionhub.Hub
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	hub *sessionhub.Hub,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		hub:    hub,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uniques := []struct {
		lookup func(context.Context, string) (*entity.User, error)
		value  string
		taken  string
	}{
		{s.repo.User.FindByEmail, req.Email, "email already registered"},
		{s.repo.User.FindByUsername, req.Username, "username already taken"},
	}
	for _, u := range uniques {
		existing, err := u.lookup(ctx, u.value)
		if err != nil {
			s.log.Error("Failed to check account uniqueness", zap.Error(err), zap.String("value", u.value))
			return nil, fmt.Errorf("failed to create account")
		}
		if existing != nil {
			return nil, fmt.Errorf("%s", u.taken)
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// a new account is signed in straight away; if that fails the
	// account still exists and the client falls back to the login form
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to open session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	} else {
		s.hub.Publish(user.ID, session.Token, sessionhub.StateAuthenticated)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findByIdentifier(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up login identifier", zap.Error(err))
		return nil, fmt.Errorf("failed to find user")
	}

	// unknown identifier and wrong password answer the same way
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Rejected login", zap.String("identifier", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.hub.Publish(user.ID, session.Token, sessionhub.StateAuthenticated)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("invalid token")
	}

	revoked, err := s.repo.Session.Revoke(ctx, tokenID, time.Now())
	if err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}
	if !revoked {
		s.log.Debug("Logout for a session that was already gone")
	}

	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		s.hub.Publish(userID, tokenID, sessionhub.StateAnonymous)
		s.log.Info("User logged out", zap.String("user_id", userID.String()))
	}

	return nil
}

// Session reports the caller's current state. Requests without a valid
// session get the anonymous state rather than an error.
func (s *authService) Session(ctx context.Context, token string) (*response.SessionResponse, error) {
	anonymous := &response.SessionResponse{State: string(sessionhub.StateAnonymous)}
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return anonymous, nil
	}

	session, err := s.repo.Session.FindActive(ctx, tokenID, time.Now())
	if err != nil {
		s.log.Error("Failed to load session", zap.Error(err))
		return nil, fmt.Errorf("failed to load session")
	}
	if session == nil {
		return anonymous, nil
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		s.log.Error("Failed to load session user", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return nil, fmt.Errorf("failed to load session")
	}
	if user == nil || !user.IsActive {
		return anonymous, nil
	}

	userResp := response.UserToResponse(user)
	return &response.SessionResponse{
		State:     string(sessionhub.StateAuthenticated),
		User:      &userResp,
		ExpiresAt: &session.ExpiresAt,
	}, nil
}

// findByIdentifier accepts either an email address or a username.
func (s *authService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, identifier)
	if err != nil || user != nil {
		return user, err
	}
	return s.repo.User.FindByUsername(ctx, identifier)
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
