package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/storage/memory"
	"github.com/dtroode/medsetu-storefront/internal/testutil"
)

var (
	alice = model.User{ID: "1", Name: "Alice", Email: "alice@example.com", Role: model.RoleCustomer}
	bob   = model.User{ID: "2", Name: "Bob", Email: "bob@example.com", Role: model.RoleStoreOperator}
)

func newStore(kv model.KV, opts ...Option) *Store {
	return New(kv, testutil.MakeNoopLogger(), opts...)
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s := newStore(kv)
	tok := testutil.MakeToken(t, "1", time.Now().Add(time.Hour))

	require.NoError(t, s.Login(ctx, alice, tok))

	state := s.State()
	assert.True(t, state.IsAuthenticated)
	assert.True(t, state.IsInitialized)
	assert.Equal(t, model.ID("1"), state.UserID())
	assert.Equal(t, tok, state.Token)

	mirrored, err := kv.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, tok, string(mirrored))

	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"isAuthenticated":true`)
	assert.NotContains(t, string(raw), "isInitialized")
}

func TestStore_Login_ListenerSeesPostLoginState(t *testing.T) {
	ctx := context.Background()
	s := newStore(memory.New())

	var seen []bool
	s.Subscribe(func(state State) {
		seen = append(seen, s.State().IsAuthenticated, state.IsAuthenticated)
	})

	require.NoError(t, s.Login(ctx, alice, testutil.MakeToken(t, "1", time.Now().Add(time.Hour))))
	assert.Equal(t, []bool{true, true}, seen)
}

func TestStore_Login_PersistenceError(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := newStore(testutil.FailingKV{Err: boom})

	err := s.Login(context.Background(), alice, "a.b.c")
	require.ErrorIs(t, err, boom)
	assert.True(t, s.State().IsAuthenticated)
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	durable := memory.New()
	sessionScoped := memory.New()
	require.NoError(t, sessionScoped.Set(ctx, "pharmacy-cart-storage", []byte(`{}`)))

	s := newStore(durable, WithLogoutPurge(sessionScoped, "pharmacy-cart-storage"))
	require.NoError(t, s.Login(ctx, alice, testutil.MakeToken(t, "1", time.Now().Add(time.Hour))))

	require.NoError(t, s.Logout(ctx))

	state := s.State()
	assert.False(t, state.IsAuthenticated)
	assert.True(t, state.IsInitialized)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)

	assert.Empty(t, durable.Keys())
	assert.Empty(t, sessionScoped.Keys())
}

func TestStore_Logout_PurgesAfterListeners(t *testing.T) {
	ctx := context.Background()
	durable := memory.New()
	sessionScoped := memory.New()

	s := newStore(durable, WithLogoutPurge(sessionScoped, "cart"))
	require.NoError(t, s.Login(ctx, alice, "a.b.c"))

	s.Subscribe(func(state State) {
		if !state.IsAuthenticated {
			_ = sessionScoped.Set(ctx, "cart", []byte("wiped"))
		}
	})

	require.NoError(t, s.Logout(ctx))
	assert.Empty(t, sessionScoped.Keys())
}

func TestStore_ValidateToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		login bool
		token string
		want  bool
	}{
		{name: "not authenticated", login: false, want: false},
		{name: "valid token", login: true, token: testutil.MakeToken(t, "1", now.Add(time.Minute)), want: true},
		{name: "expired token", login: true, token: testutil.MakeToken(t, "1", now.Add(-time.Second)), want: false},
		{name: "malformed token", login: true, token: "not-a-token", want: false},
		{name: "empty token", login: true, token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(memory.New(), WithClock(func() time.Time { return now }))
			if tt.login {
				require.NoError(t, s.Login(ctx, alice, tt.token))
			}
			assert.Equal(t, tt.want, s.ValidateToken())
		})
	}
}

func TestStore_Initialize_ValidPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	tok := testutil.MakeToken(t, "1", time.Now().Add(time.Hour))

	first := newStore(kv)
	require.NoError(t, first.Login(ctx, alice, tok))
	require.NoError(t, kv.Delete(ctx, TokenKey))

	s := newStore(kv)
	require.NoError(t, s.Rehydrate(ctx))
	assert.False(t, s.State().IsInitialized)
	assert.True(t, s.State().IsAuthenticated)

	require.NoError(t, s.Initialize(ctx))

	state := s.State()
	assert.True(t, state.IsInitialized)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, alice.Email, state.User.Email)

	mirrored, err := kv.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, tok, string(mirrored))
}

func TestStore_Initialize_ExpiredPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	first := newStore(kv)
	require.NoError(t, first.Login(ctx, alice, testutil.MakeToken(t, "1", time.Now().Add(-time.Hour))))

	s := newStore(kv)
	require.NoError(t, s.Rehydrate(ctx))
	require.NoError(t, s.Initialize(ctx))

	state := s.State()
	assert.True(t, state.IsInitialized)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, kv.Keys())
}

func TestStore_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(memory.New())

	calls := 0
	s.Subscribe(func(State) { calls++ })

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Initialize(ctx))

	assert.True(t, s.State().IsInitialized)
	assert.Equal(t, 1, calls)
}

func TestStore_Rehydrate_InconsistentSnapshots(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "authenticated without token",
			raw:  `{"state":{"user":{"id":"1","name":"Alice","email":"a@x","role":"USER"},"token":null,"isAuthenticated":true},"version":0}`,
		},
		{
			name: "authenticated without user",
			raw:  `{"state":{"user":null,"token":"a.b.c","isAuthenticated":true},"version":0}`,
		},
		{
			name: "token without user",
			raw:  `{"state":{"user":null,"token":"a.b.c","isAuthenticated":false},"version":0}`,
		},
		{
			name: "malformed json",
			raw:  `{"state":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := memory.New()
			require.NoError(t, kv.Set(ctx, StorageKey, []byte(tt.raw)))
			require.NoError(t, kv.Set(ctx, TokenKey, []byte("a.b.c")))

			s := newStore(kv)
			require.NoError(t, s.Rehydrate(ctx))

			assert.False(t, s.State().IsAuthenticated)
			assert.Empty(t, kv.Keys())
		})
	}
}

func TestStore_Rehydrate_NumericUserID(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	tok := testutil.MakeToken(t, "7", time.Now().Add(time.Hour))
	raw := `{"state":{"user":{"id":7,"name":"Ravi","email":"r@x","role":"PLATFORM_ADMIN"},"token":"` + tok + `","isAuthenticated":true},"version":0}`
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(raw)))

	s := newStore(kv)
	require.NoError(t, s.Rehydrate(ctx))
	require.NoError(t, s.Initialize(ctx))

	assert.Equal(t, model.ID("7"), s.State().UserID())
	assert.Equal(t, model.RolePlatformAdmin, s.State().Role())
}

func TestStore_Subscribe_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	s := newStore(memory.New())

	var ids []model.ID
	unsubscribe := s.Subscribe(func(state State) { ids = append(ids, state.UserID()) })

	require.NoError(t, s.Login(ctx, alice, "a.b.c"))
	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Login(ctx, bob, "a.b.c"))

	assert.Equal(t, []model.ID{"1"}, ids)
}

func TestStore_StateIsACopy(t *testing.T) {
	s := newStore(memory.New())
	require.NoError(t, s.Login(context.Background(), alice, "a.b.c"))

	state := s.State()
	state.User.Name = "Mallory"

	assert.Equal(t, "Alice", s.State().User.Name)
}

func TestStore_Dispose(t *testing.T) {
	s := newStore(memory.New())

	calls := 0
	s.Subscribe(func(State) { calls++ })
	s.Dispose()

	require.NoError(t, s.Login(context.Background(), alice, "a.b.c"))
	assert.Zero(t, calls)
}
