package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "users:"

// RedisStore keeps user documents as JSON values in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using a redis:// URL and verifies the
// connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing Redis client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(uid string) string {
	return userKeyPrefix + uid
}

// Load implements DocumentStore.
func (s *RedisStore) Load(ctx context.Context, uid string) (*UserDocument, error) {
	raw, err := s.client.Get(ctx, s.key(uid)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user document: %w", err)
	}

	doc, err := UnmarshalDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal user document: %w", err)
	}
	return doc, nil
}

// Save implements DocumentStore. The merge is read-modify-write guarded by
// WATCH, so a field written by another build is never clobbered.
func (s *RedisStore) Save(ctx context.Context, uid string, doc *UserDocument) error {
	key := s.key(uid)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		existing, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return err
		}

		merged, err := mergeInto(existing, doc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, merged, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("save user document: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
