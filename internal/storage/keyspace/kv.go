// Package keyspace scopes a shared key-value port to one browser.
package keyspace

import (
	"context"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

var _ model.KV = (*KV)(nil)

// KV prefixes every key with a fixed namespace.
type KV struct {
	inner  model.KV
	prefix string
}

// New creates a KV whose keys live under "<namespace>:".
func New(inner model.KV, namespace string) *KV {
	return &KV{inner: inner, prefix: namespace + ":"}
}

func (k *KV) key(key string) string {
	return k.prefix + key
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	return k.inner.Get(ctx, k.key(key))
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	return k.inner.Set(ctx, k.key(key), value)
}

func (k *KV) Delete(ctx context.Context, key string) error {
	return k.inner.Delete(ctx, k.key(key))
}
