package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"
)

// Tests Register
func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("registers_and_opens_session", func(t *testing.T) {
		session, err := env.accounts.Register(ctx, inbound.RegisterRequest{
			Username:     "carla",
			Email:        "carla@example.com",
			Password:     "hunter22",
			Confirmation: "hunter22",
			Address:      "1 Main St",
			PhoneNumber:  "555-0100",
		})
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		require.Equal(t, "carla", session.User.Username)
		require.Equal(t, "carla@example.com", session.User.Email)
		require.Equal(t, "1 Main St", session.User.Address)

		// The password is stored hashed, never verbatim
		require.NotEmpty(t, session.User.PasswordHash)
		require.NotEqual(t, "hunter22", session.User.PasswordHash)

		// The session resolves straight back to the new user
		user, err := env.accounts.CurrentUser(ctx, session.Token)
		require.NoError(t, err)
		require.Equal(t, session.User.ID, user.ID)
	})

	t.Run("password_confirmation_must_match", func(t *testing.T) {
		_, err := env.accounts.Register(ctx, inbound.RegisterRequest{
			Username:     "dave",
			Email:        "dave@example.com",
			Password:     "one-password",
			Confirmation: "another-password",
		})
		require.ErrorIs(t, err, shared.ErrPasswordMismatch)

		// No half-created account remains
		_, err = env.repos.Users.GetByUsername(ctx, "dave")
		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		_, err := env.accounts.Register(ctx, inbound.RegisterRequest{
			Username:     "carla",
			Email:        "other@example.com",
			Password:     "hunter22",
			Confirmation: "hunter22",
		})
		require.ErrorIs(t, err, shared.ErrUsernameTaken)
	})
}

// Tests Login
func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, inbound.RegisterRequest{
		Username:     "erin",
		Email:        "erin@example.com",
		Password:     "correct-horse",
		Confirmation: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := env.accounts.Login(ctx, inbound.LoginRequest{
			Username: "erin",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		require.Equal(t, "erin", session.User.Username)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := env.accounts.Login(ctx, inbound.LoginRequest{
			Username: "erin",
			Password: "wrong-horse",
		})
		require.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	// Unknown usernames report the same error as wrong passwords
	t.Run("unknown_username", func(t *testing.T) {
		_, err := env.accounts.Login(ctx, inbound.LoginRequest{
			Username: "nobody",
			Password: "correct-horse",
		})
		require.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("each_login_issues_a_fresh_token", func(t *testing.T) {
		first, err := env.accounts.Login(ctx, inbound.LoginRequest{Username: "erin", Password: "correct-horse"})
		require.NoError(t, err)
		second, err := env.accounts.Login(ctx, inbound.LoginRequest{Username: "erin", Password: "correct-horse"})
		require.NoError(t, err)

		require.NotEqual(t, first.Token, second.Token)

		// Both remain valid
		_, err = env.accounts.CurrentUser(ctx, first.Token)
		require.NoError(t, err)
		_, err = env.accounts.CurrentUser(ctx, second.Token)
		require.NoError(t, err)
	})
}

// Tests Logout and CurrentUser
func TestAccountService_Logout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	session, err := env.accounts.Register(ctx, inbound.RegisterRequest{
		Username:     "frank",
		Email:        "frank@example.com",
		Password:     "pass-word",
		Confirmation: "pass-word",
	})
	require.NoError(t, err)

	require.NoError(t, env.accounts.Logout(ctx, session.Token))

	_, err = env.accounts.CurrentUser(ctx, session.Token)
	require.ErrorIs(t, err, shared.ErrSessionNotFound)
}

func TestAccountService_CurrentUser_UnknownToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.accounts.CurrentUser(context.Background(), "bogus-token")
	require.ErrorIs(t, err, shared.ErrSessionNotFound)
}
