// Package cartsync keeps cart ownership aligned with the session identity.
package cartsync

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

const persistTimeout = 5 * time.Second

// SessionSource is the part of the session store the glue observes.
type SessionSource interface {
	State() session.State
	Subscribe(fn session.Listener) (unsubscribe func())
}

// CartOwner is the part of the cart store the glue drives.
type CartOwner interface {
	SetUser(ctx context.Context, userID model.ID) error
}

type key struct {
	authenticated bool
	userID        model.ID
	initialized   bool
}

// Sync is a registered session subscriber forwarding identity changes to the cart.
type Sync struct {
	cart        CartOwner
	logger      *logger.Logger
	unsubscribe func()

	mu   sync.Mutex
	last *key
}

// Register subscribes to src and reconciles cart against the current state right away.
func Register(src SessionSource, cart CartOwner, logger *logger.Logger) *Sync {
	s := &Sync{cart: cart, logger: logger}
	s.unsubscribe = src.Subscribe(s.handle)
	s.handle(src.State())
	return s
}

// Close stops observing the session.
func (s *Sync) Close() {
	s.unsubscribe()
}

func (s *Sync) handle(state session.State) {
	k := key{
		authenticated: state.IsAuthenticated,
		userID:        state.UserID(),
		initialized:   state.IsInitialized,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && *s.last == k {
		return
	}
	s.last = &k

	if !k.initialized {
		return
	}

	var owner model.ID
	if k.authenticated && state.User != nil {
		owner = k.userID
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.cart.SetUser(ctx, owner); err != nil {
		s.logger.Error("Cart sync: failed to reconcile cart owner",
			"user_id", owner,
			"error", err.Error())
	}
}
