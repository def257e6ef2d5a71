package app

import (
	"context"
	"errors"
	"time"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
	"lotline-auction-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AccountService implements the account and session use cases
type AccountService struct {
	userRepo outbound.UserRepository
	sessions outbound.SessionStore
	logger   zerolog.Logger
}

type AccountServiceParams struct {
	UserRepo outbound.UserRepository
	Sessions outbound.SessionStore
	Logger   zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(params AccountServiceParams) *AccountService {
	return &AccountService{
		userRepo: params.UserRepo,
		sessions: params.Sessions,
		logger:   params.Logger.With().Str("component", "account_service").Logger(),
	}
}

// Register creates a user account and opens a session for it
func (service *AccountService) Register(ctx context.Context, req inbound.RegisterRequest) (*inbound.Session, error) {
	service.logger.Info().Str("username", req.Username).Msg("Attempting to register user")

	if req.Password != req.Confirmation {
		service.logger.Warn().Str("username", req.Username).Msg("Password confirmation does not match")
		return nil, shared.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		service.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &shared.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    time.Now(),
	}

	if err := service.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrUsernameTaken) {
			service.logger.Warn().Str("username", req.Username).Msg("Username already taken")
		} else {
			service.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		}
		return nil, err
	}

	token, err := service.sessions.Create(ctx, user.ID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to open session")
		return nil, err
	}

	service.logger.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("User registered and logged in")

	return &inbound.Session{Token: token, User: user}, nil
}

// Login opens a session for an existing user. Unknown usernames and
// wrong passwords report the same error so the response does not reveal
// which half failed.
func (service *AccountService) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.Session, error) {
	service.logger.Info().Str("username", req.Username).Msg("Attempting login")

	user, err := service.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		service.logger.Warn().Str("username", req.Username).Msg("Login failed, unknown username")
		return nil, shared.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		service.logger.Warn().Str("username", req.Username).Msg("Login failed, wrong password")
		return nil, shared.ErrInvalidCredentials
	}

	token, err := service.sessions.Create(ctx, user.ID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to open session")
		return nil, err
	}

	service.logger.Info().Str("user_id", user.ID.String()).Msg("Login successful")

	return &inbound.Session{Token: token, User: user}, nil
}

// Logout ends the session identified by token
func (service *AccountService) Logout(ctx context.Context, token string) error {
	if err := service.sessions.Delete(ctx, token); err != nil {
		service.logger.Error().Err(err).Msg("Failed to delete session")
		return err
	}

	service.logger.Info().Msg("Session ended")
	return nil
}

// CurrentUser resolves a session token to its user
func (service *AccountService) CurrentUser(ctx context.Context, token string) (*shared.User, error) {
	userID, err := service.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := service.userRepo.GetByID(ctx, userID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Session points at a missing user")
		return nil, err
	}

	return user, nil
}
