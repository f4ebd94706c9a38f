package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/persist"
)

// StorageKey is the session-scoped slot holding the cart snapshot.
const StorageKey = "pharmacy-cart-storage"

type snapshot struct {
	Items  []model.CartItem `json:"items"`
	UserID *model.ID        `json:"userId"`
}

// Store holds cart line items and the id of the user owning them.
type Store struct {
	kv     model.KV
	logger *logger.Logger

	mu     sync.Mutex
	items  []model.CartItem
	userID model.ID
}

// New creates an empty cart persisting to the session-scoped kv.
func New(kv model.KV, logger *logger.Logger) *Store {
	return &Store{kv: kv, logger: logger, items: []model.CartItem{}}
}

// Rehydrate loads the persisted cart. A malformed snapshot is dropped.
func (s *Store) Rehydrate(ctx context.Context) error {
	snap, found, err := persist.Load[snapshot](ctx, s.kv, StorageKey)
	if errors.Is(err, persist.ErrMalformed) {
		s.logger.Warn("Cart store: discarding malformed snapshot", "error", err.Error())
		return s.kv.Delete(ctx, StorageKey)
	}
	if err != nil {
		return fmt.Errorf("failed to rehydrate cart: %w", err)
	}
	if !found {
		return nil
	}

	items := make([]model.CartItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		if item.Quantity >= 1 {
			items = append(items, item)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
	s.userID = ""
	if snap.UserID != nil {
		s.userID = *snap.UserID
	}
	return nil
}

// AddItem increments the quantity of an existing line or appends a new one with quantity 1.
func (s *Store) AddItem(ctx context.Context, product model.Medicine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, model.CartItem{Medicine: product, Quantity: 1})
	}

	return s.save(ctx)
}

// RemoveItem removes the line for id. Absent ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(ctx, id)
}

// UpdateQuantity sets the line quantity; qty <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, id model.ID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return s.remove(ctx, id)
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = qty

	return s.save(ctx)
}

// ClearCart empties the cart and deletes the persisted snapshot.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []model.CartItem{}

	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// SetUser reconciles cart ownership with the signed-in user ("" for none).
// Items are wiped when a present owner logs out or is replaced by another user;
// re-affirming the same owner or adopting a guest cart keeps them.
func (s *Store) SetUser(ctx context.Context, userID model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.userID

	switch {
	case current != "" && userID != "" && current != userID:
		s.logger.Info("Cart store: user switched, clearing cart",
			"previous_user_id", current,
			"user_id", userID,
			"item_count", len(s.items))
		s.items = []model.CartItem{}
	case current != "" && userID == "":
		s.logger.Info("Cart store: user logged out, clearing cart",
			"previous_user_id", current,
			"item_count", len(s.items))
		s.items = []model.CartItem{}
	case current == userID:
		return nil
	}

	s.userID = userID
	return s.save(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// UserID returns the owner tag.
func (s *Store) UserID() model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID
}

// TotalPrice is the sum of price * quantity.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// RxItems returns the lines that need a prescription.
func (s *Store) RxItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rx []model.CartItem
	for _, item := range s.items {
		if item.RxRequired {
			rx = append(rx, item)
		}
	}
	return rx
}

// HasRxItems reports whether checkout needs a prescription.
func (s *Store) HasRxItems() bool {
	return len(s.RxItems()) > 0
}

func (s *Store) remove(ctx context.Context, id model.ID) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	return s.save(ctx)
}

func (s *Store) indexOf(id model.ID) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// save must be called with mu held.
func (s *Store) save(ctx context.Context) error {
	snap := snapshot{Items: s.items}
	if s.userID != "" {
		id := s.userID
		snap.UserID = &id
	}
	return persist.Save(ctx, s.kv, StorageKey, snap)
}
