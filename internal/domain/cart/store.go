// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
)

// Store is the client-owned line-item collection for one shopping session.
// Every mutation is mirrored to the storage collaborator under the store's
// key; when that write fails the in-memory state stays authoritative for the
// session and the failure is logged as a warning, since a reload would lose
// the unsaved delta.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	key     string
	logger  *logrus.Logger
	items   []LineItem
}

// NewStore creates a cart store persisting under key
func NewStore(st storage.Store, key string, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		storage: st,
		key:     key,
		logger:  logger,
	}
}

// Load hydrates the store from persisted state. An absent key yields an
// empty cart, not an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.storage.Load(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.items = nil
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	// Undecodable bytes degrade to an empty cart rather than wedging the
	// session; the next mutation overwrites the bad snapshot.
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Failed to decode persisted cart, starting empty")
		s.items = nil
		return nil
	}

	// Re-establish the invariants on whatever was persisted: one line per
	// product id, quantity >= 1, unit price parsed once.
	seen := make(map[int]bool, len(items))
	restored := items[:0]
	for _, item := range items {
		if item.Quantity < 1 || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		item.unitPrice = parsePrice(item.Price)
		restored = append(restored, item)
	}
	s.items = restored

	return nil
}

// Add appends a new line with quantity 1, or increments the existing line
// for the same product id
func (s *Store) Add(ctx context.Context, product Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, LineItem{
		Product:   product,
		Quantity:  1,
		unitPrice: parsePrice(product.Price),
	})
	s.persist(ctx)
}

// Remove decrements the line for productID, deleting it entirely at
// quantity 1. Absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decrement(ctx, productID)
}

// IncreaseQuantity increments the line for productID. Absent ids are a
// no-op.
func (s *Store) IncreaseQuantity(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}
}

// DecreaseQuantity decrements the line for productID, deleting it entirely
// at quantity 1. Absent ids are a no-op.
func (s *Store) DecreaseQuantity(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decrement(ctx, productID)
}

// Clear empties the collection and persists the empty state
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns the line items in insertion order
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems returns the sum of all line quantities
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity over all lines
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// decrement applies the shared remove/decrease semantics. Caller holds the
// lock.
func (s *Store) decrement(ctx context.Context, productID int) {
	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}
		if s.items[i].Quantity > 1 {
			s.items[i].Quantity--
		} else {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		s.persist(ctx)
		return
	}
}

// persist mirrors the full collection to storage. Caller holds the lock.
// A storage failure does not abort the mutation that triggered it; the
// in-memory state remains the source of truth for this session.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Failed to encode cart for persistence")
		return
	}

	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Failed to persist cart, in-memory state remains authoritative")
	}
}
