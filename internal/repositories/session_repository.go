package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	apperrors "servicos-dashboard/pkg/errors"
)

// SessionRepositoryInterface guarda a flag de sessão do lado do servidor:
// um ID opaco no cookie, o e-mail do usuário no Redis, com TTL.
type SessionRepositoryInterface interface {
	Create(ctx context.Context, email string) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepositoryInterface {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *RedisSessionRepository) Create(ctx context.Context, email string) (string, error) {
	sessionID := uuid.NewString()
	if err := r.client.Set(ctx, sessionKey(sessionID), email, r.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	email, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrSessionNotFound
		}
		return "", err
	}
	return email, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}
