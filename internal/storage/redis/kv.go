package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

var _ model.KV = (*KV)(nil)

// KV stores values in redis under a key prefix. A positive ttl makes the store
// session-scoped: every read or write extends the key's lifetime by ttl, and keys of
// idle browsers expire. Zero ttl keeps keys until deleted.
type KV struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewKV creates a redis-backed KV.
func NewKV(client goredis.Cmdable, prefix string, ttl time.Duration) *KV {
	return &KV{client: client, prefix: prefix, ttl: ttl}
}

func (r *KV) key(key string) string {
	return r.prefix + key
}

// Get returns the stored value, refreshing its ttl.
func (r *KV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	if r.ttl > 0 {
		if err := r.client.Expire(ctx, r.key(key), r.ttl).Err(); err != nil {
			return nil, fmt.Errorf("failed to extend %s: %w", key, err)
		}
	}

	return val, nil
}

// Set stores value with the configured ttl.
func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (r *KV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
