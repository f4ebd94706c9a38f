package keyspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/storage/memory"
)

func TestKV_IsolatesNamespaces(t *testing.T) {
	ctx := context.Background()
	shared := memory.New()

	a := New(shared, "browser-a")
	b := New(shared, "browser-b")

	require.NoError(t, a.Set(ctx, "auth-token", []byte("ta")))
	require.NoError(t, b.Set(ctx, "auth-token", []byte("tb")))

	got, err := a.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, []byte("ta"), got)

	require.NoError(t, a.Delete(ctx, "auth-token"))
	_, err = a.Get(ctx, "auth-token")
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err = b.Get(ctx, "auth-token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tb"), got)

	assert.Equal(t, []string{"browser-b:auth-token"}, shared.Keys())
}
