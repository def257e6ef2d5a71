package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore implements the session store interface using Redis
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

type RedisStoreParams struct {
	RedisClient *redis.Client
	TTL         time.Duration
	Logger      zerolog.Logger
}

func NewRedisStore(params RedisStoreParams) *RedisStore {
	return &RedisStore{
		client: params.RedisClient,
		ttl:    params.TTL,
		logger: params.Logger.With().Str("component", "session_store").Logger(),
	}
}

// Create opens a session for the user and returns its opaque token
func (s *RedisStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to store session")
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Resolve maps a token back to the user it was issued for
func (s *RedisStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, shared.ErrSessionNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse session user: %w", err)
	}

	return userID, nil
}

// Delete ends the session identified by token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
