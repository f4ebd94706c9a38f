package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/persist"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

// Credentials supplies the outbound bearer token and role of one browser.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Role(ctx context.Context) (model.Role, error)
	// Forget drops the bearer token after the backend rejected it.
	Forget(ctx context.Context) error
}

// KVCredentials reads credentials from the slots the session store mirrors into
// durable storage.
type KVCredentials struct {
	kv model.KV
}

// NewKVCredentials creates credentials over a browser's durable port.
func NewKVCredentials(kv model.KV) *KVCredentials {
	return &KVCredentials{kv: kv}
}

func (c *KVCredentials) Token(ctx context.Context) (string, error) {
	raw, err := c.kv.Get(ctx, session.TokenKey)
	if errors.Is(err, model.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth token: %w", err)
	}
	return string(raw), nil
}

type roleSnapshot struct {
	User *struct {
		Role model.Role `json:"role"`
	} `json:"user"`
}

func (c *KVCredentials) Role(ctx context.Context) (model.Role, error) {
	snap, found, err := persist.Load[roleSnapshot](ctx, c.kv, session.StorageKey)
	if errors.Is(err, persist.ErrMalformed) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !found || snap.User == nil {
		return "", nil
	}
	return snap.User.Role, nil
}

func (c *KVCredentials) Forget(ctx context.Context) error {
	return c.kv.Delete(ctx, session.TokenKey)
}
