package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/persist"
	"github.com/dtroode/medsetu-storefront/internal/token"
)

const (
	// StorageKey is the durable slot holding the session snapshot.
	StorageKey = "pharmacy-auth-storage"
	// TokenKey is the durable slot the HTTP layer reads the bearer token from.
	TokenKey = "auth-token"
)

// Listener observes session state after every change. Listeners run inside the
// store's lifecycle operation and must not call Login, Logout, ClearAuth,
// Initialize or Rehydrate.
type Listener func(State)

type listenerEntry struct {
	id int
	fn Listener
}

type purgeTarget struct {
	kv   model.KV
	keys []string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogoutPurge registers extra keys deleted on logout and clearAuth.
func WithLogoutPurge(kv model.KV, keys ...string) Option {
	return func(s *Store) {
		s.purges = append(s.purges, purgeTarget{kv: kv, keys: keys})
	}
}

// Store is the single source of truth for the current actor.
type Store struct {
	durable model.KV
	decoder *token.Decoder
	now     func() time.Time
	logger  *logger.Logger
	purges  []purgeTarget

	// opMu serializes lifecycle operations end to end: state change,
	// persistence, purge and listener notification.
	opMu sync.Mutex

	mu        sync.Mutex
	state     State
	listeners []listenerEntry
	nextID    int
}

// New creates an empty, uninitialized Store persisting to durable.
func New(durable model.KV, logger *logger.Logger, opts ...Option) *Store {
	s := &Store{
		durable: durable,
		decoder: token.NewDecoder(),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Subscribe registers fn and returns a function removing it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispose drops every listener.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = nil
}

// Rehydrate loads the persisted snapshot. Inconsistent or undecodable snapshots
// are discarded and removed from storage.
func (s *Store) Rehydrate(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	snap, found, err := persist.Load[snapshot](ctx, s.durable, StorageKey)
	if err != nil && !errors.Is(err, persist.ErrMalformed) {
		return fmt.Errorf("failed to rehydrate session: %w", err)
	}

	if err != nil || (found && !snap.consistent()) {
		s.logger.Warn("Session store: discarding invalid persisted session",
			"malformed", err != nil)

		s.mu.Lock()
		s.state = State{}
		s.mu.Unlock()

		return s.deleteKeys(ctx, s.durable, StorageKey, TokenKey)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	s.state = State{
		User:            snap.User,
		IsAuthenticated: snap.IsAuthenticated,
	}
	if snap.Token != nil {
		s.state.Token = *snap.Token
	}
	state := s.state.clone()
	s.mu.Unlock()

	s.logger.Debug("Session store: rehydrated",
		"is_authenticated", state.IsAuthenticated,
		"user_id", state.UserID())

	s.notify(state)
	return nil
}

// Initialize validates a rehydrated session and marks the store initialized.
// Calls after the first completed run are no-ops.
func (s *Store) Initialize(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.State()
	if current.IsInitialized {
		return nil
	}

	s.logger.Debug("Session store: initializing",
		"has_token", current.Token != "",
		"is_authenticated", current.IsAuthenticated)

	if current.IsAuthenticated && current.Token != "" {
		if err := s.durable.Set(ctx, TokenKey, []byte(current.Token)); err != nil {
			return fmt.Errorf("failed to mirror auth token: %w", err)
		}

		if !s.ValidateToken() {
			s.logger.Info("Session store: persisted token rejected, clearing",
				"user_id", current.UserID())
			return s.reset(ctx)
		}
	}

	s.mu.Lock()
	if s.state.IsInitialized {
		s.mu.Unlock()
		return nil
	}
	s.state.IsInitialized = true
	state := s.state.clone()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// Login installs user and token and mirrors the token into the HTTP slot.
// Listeners observe the post-login state before Login returns.
func (s *Store) Login(ctx context.Context, user model.User, tok string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.state = State{
		User:            &user,
		Token:           tok,
		IsAuthenticated: true,
		IsInitialized:   true,
	}
	state := s.state.clone()
	s.mu.Unlock()

	s.logger.Info("Session store: login",
		"user_id", user.ID,
		"role", user.Role)

	var errs []error
	if err := persist.Save(ctx, s.durable, StorageKey, toSnapshot(state)); err != nil {
		errs = append(errs, err)
	}
	if err := s.durable.Set(ctx, TokenKey, []byte(tok)); err != nil {
		errs = append(errs, fmt.Errorf("failed to mirror auth token: %w", err))
	}

	s.notify(state)
	return errors.Join(errs...)
}

// Logout signs the user out on explicit request.
func (s *Store) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.logger.Info("Session store: logout", "user_id", s.State().UserID())
	return s.reset(ctx)
}

// ClearAuth signs the user out after a failed validation.
func (s *Store) ClearAuth(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.logger.Info("Session store: clearing auth", "user_id", s.State().UserID())
	return s.reset(ctx)
}

// ValidateToken fails closed: it is true only for an authenticated session whose
// token decodes and has not expired.
func (s *Store) ValidateToken() bool {
	state := s.State()

	if !state.IsAuthenticated || state.Token == "" || state.User == nil {
		return false
	}

	if s.decoder.Expired(state.Token, s.now()) {
		s.logger.Debug("Session store: token expired or malformed",
			"user_id", state.UserID())
		return false
	}
	return true
}

// reset moves to Unauthenticated. Listeners run before the purge so that nothing
// they persist survives it.
func (s *Store) reset(ctx context.Context) error {
	s.mu.Lock()
	s.state = State{IsInitialized: true}
	state := s.state.clone()
	s.mu.Unlock()

	s.notify(state)

	errs := []error{s.deleteKeys(ctx, s.durable, TokenKey, StorageKey)}
	for _, p := range s.purges {
		errs = append(errs, s.deleteKeys(ctx, p.kv, p.keys...))
	}
	return errors.Join(errs...)
}

func (s *Store) deleteKeys(ctx context.Context, kv model.KV, keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := kv.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) notify(state State) {
	s.mu.Lock()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(state.clone())
	}
}
