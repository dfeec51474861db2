package session

import (
	"context"
	"time"

	"deskhub/domain/ports"
	"deskhub/infrastructure/redis"
	"deskhub/pkg/apperrors"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis so restarts and multiple instances share
// the same session set.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) ports.SessionStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+sessionID, userID, ttl)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if redis.IsNil(err) {
			return "", apperrors.ErrUnauthenticated
		}
		return "", err
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID)
}
