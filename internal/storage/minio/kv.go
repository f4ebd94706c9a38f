package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

var _ model.KV = (*KV)(nil)

// KV keeps durable snapshots as small objects under a prefix.
type KV struct {
	client *Client
	prefix string
}

// NewKV creates a KV storing objects named "<prefix><key>".
func NewKV(client *Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	rc, err := k.client.Download(ctx, k.prefix+key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// GetObject is lazy: a missing object surfaces on the first read.
	data, err := io.ReadAll(rc)
	if err != nil {
		if isNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	return k.client.UploadSized(ctx, k.prefix+key, bytes.NewReader(value), int64(len(value)), "application/octet-stream")
}

func (k *KV) Delete(ctx context.Context, key string) error {
	err := k.client.Delete(ctx, k.prefix+key)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	return nil
}
