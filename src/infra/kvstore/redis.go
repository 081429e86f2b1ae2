package kvstore

import (
	"context"
	"fmt"

	"estateportal/src/infra/redis"
)

// RedisStore guarda o estado do cliente sem TTL, com um prefixo por aplicação.
type RedisStore struct {
	client *redis.RedisClient
	prefix string
}

func NewRedisStore(client *redis.RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := s.client.GetKey(ctx, s.key(key))
	if err != nil {
		return nil, false, fmt.Errorf("RedisStore.Load - %s: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.SetPersistent(ctx, s.key(key), string(data)); err != nil {
		return fmt.Errorf("RedisStore.Save - %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.InvalidateKeys(ctx, []string{s.key(key)}); err != nil {
		return fmt.Errorf("RedisStore.Delete - %s: %w", key, err)
	}
	return nil
}
