package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vidvault/internal/domain/entity"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in redis with a TTL, so they survive server
// restarts and are shared by every worker.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(cfg Config) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisStore{redis: rdb, ttl: ttl}, nil
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	if err := s.redis.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.redis.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", entity.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) Close() error {
	return s.redis.Close()
}
