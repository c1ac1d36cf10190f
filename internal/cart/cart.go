// Package cart holds the shopper's cart: product snapshots plus the size and
// colour picked for each, persisted on every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"milan/internal/backend"
	"milan/internal/localstore"

	"github.com/google/uuid"
)

// StorageKey is where the serialised cart lives.
const StorageKey = "milan_cart"

var (
	ErrItemNotFound    = errors.New("cart: item not found")
	ErrNothingSelected = errors.New("cart: no items selected")
)

// Item is a product snapshot with the shopper's selections. CartID differs
// from the product id so the same product can sit in the cart twice.
type Item struct {
	backend.Product
	CartID        string `json:"cartId"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

// Enquiry is the part of the entry the enquiry endpoint reads.
func (i Item) Enquiry() backend.EnquiryItem {
	return backend.EnquiryItem{
		ID:               i.ID,
		Name:             i.Name,
		Price:            i.Price,
		ShortDescription: i.ShortDescription,
		SelectedSize:     i.SelectedSize,
		SelectedColor:    i.SelectedColor,
	}
}

type Store struct {
	mu      sync.RWMutex
	storage localstore.Storage
	key     string
	items   []Item
	newID   func() string
}

// Open loads the persisted cart once. A missing record is an empty cart.
func Open(ctx context.Context, storage localstore.Storage) (*Store, error) {
	s := &Store{
		storage: storage,
		key:     StorageKey,
		newID:   uuid.NewString,
	}

	raw, err := storage.GetItem(ctx, s.key)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := json.Unmarshal(raw, &s.items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return s, nil
}

// Add appends a copy of item under a fresh cart id and persists the list.
func (s *Store) Add(ctx context.Context, item Item) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := item
	entry.Images = slices.Clone(item.Images)
	entry.Sizes = slices.Clone(item.Sizes)
	entry.AvailableColors = slices.Clone(item.AvailableColors)
	entry.CartID = s.newID()

	next := append(slices.Clone(s.items), entry)
	if err := s.persist(ctx, next); err != nil {
		return Item{}, err
	}
	s.items = next
	return entry, nil
}

func (s *Store) Remove(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.items), func(it Item) bool {
		return it.CartID == cartID
	})
	if len(next) == len(s.items) {
		return ErrItemNotFound
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Clear empties the cart and drops the persisted record.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.RemoveItem(ctx, s.key); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.items = nil
	return nil
}

func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Select returns the entries whose cart ids are listed, in cart order.
func (s *Store) Select(cartIDs []string) ([]Item, error) {
	if len(cartIDs) == 0 {
		return nil, ErrNothingSelected
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Item
	for _, it := range s.items {
		if slices.Contains(cartIDs, it.CartID) {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, ErrNothingSelected
	}
	return out, nil
}

func (s *Store) persist(ctx context.Context, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.SetItem(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
