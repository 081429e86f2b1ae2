package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client            redis.UniversalClient
	defaultTTLSeconds time.Duration
}

// NewRedisClient aceita um ou mais endereços separados por vírgula: com mais de um,
// o go-redis sobe um cliente de cluster.
func NewRedisClient(addrs string, poolSize int, defaultTTLSeconds time.Duration) *RedisClient {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: strings.Split(addrs, ","),

		PoolSize:     poolSize,
		MinIdleConns: 10,
		MaxRedirects: 3,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	return NewRedisClientFrom(client, defaultTTLSeconds)
}

// NewRedisClientFrom wraps an existing go-redis client.
func NewRedisClientFrom(client redis.UniversalClient, defaultTTLSeconds time.Duration) *RedisClient {
	return &RedisClient{
		client:            client,
		defaultTTLSeconds: defaultTTLSeconds,
	}
}

// SetKey grava com o TTL padrão do cliente (cache).
func (rc *RedisClient) SetKey(ctx context.Context, key string, value string) error {
	return rc.client.Set(ctx, key, value, rc.defaultTTLSeconds).Err()
}

// SetPersistent grava sem expiração (estado do cliente).
func (rc *RedisClient) SetPersistent(ctx context.Context, key string, value string) error {
	return rc.client.Set(ctx, key, value, 0).Err()
}

func (rc *RedisClient) GetKey(ctx context.Context, key string) (string, bool, error) {
	result := rc.client.Get(ctx, key)

	// Cache miss
	if result.Err() == redis.Nil {
		return "", false, nil
	}
	if result.Err() != nil {
		return "", false, result.Err()
	}

	return result.Val(), true, nil
}

// Invalidação key a key: em cluster um DEL com várias keys falha com CROSSSLOT.
func (rc *RedisClient) InvalidateKeys(ctx context.Context, keys []string) error {
	var errors []string

	for _, key := range keys {
		if err := rc.client.Del(ctx, key).Err(); err != nil {
			errors = append(errors, fmt.Sprintf("key %s: %v", key, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalidation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func (rc *RedisClient) Close() error {
	return rc.client.Close()
}
