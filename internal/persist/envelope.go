// Package persist stores client-state snapshots in the {"state": ..., "version": N}
// envelope shared by the session and cart stores.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

// Version is the envelope schema version written by Save.
const Version = 0

// ErrMalformed reports a stored snapshot that cannot be decoded.
var ErrMalformed = errors.New("malformed snapshot")

// Envelope wraps a store's serializable fields.
type Envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// Load reads the snapshot stored under key. found is false when the key is absent.
func Load[T any](ctx context.Context, kv model.KV, key string) (state T, found bool, err error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return state, false, nil
	}
	if err != nil {
		return state, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return state, false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}

	return env.State, true, nil
}

// Save writes state under key.
func Save[T any](ctx context.Context, kv model.KV, key string, state T) error {
	raw, err := json.Marshal(Envelope[T]{State: state, Version: Version})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
