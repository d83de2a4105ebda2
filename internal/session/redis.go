package session

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive process restarts
// when a Redis instance is configured. Entries are written without an
// expiry; the only way a token dies is an explicit logout.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a Store backed by the given client. The client
// must be non-nil and already connected.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, token, identity string) error {
	return s.rdb.Set(ctx, keyPrefix+token, identity, 0).Err()
}

func (s *RedisStore) Identity(ctx context.Context, token string) (string, bool, error) {
	id, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
