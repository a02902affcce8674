// Package cart holds the shopper's intended purchases as an ordered
// list of product + options lines, persisted through an injected
// storage backend under one fixed key per session.
package cart

import (
	"encoding/json"

	"dunestore/internal/domain"
	applog "dunestore/internal/log"
)

// Storage is the durable backend a Store writes through to. Load
// returns found=false when no record exists under the key.
type Storage interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// Item is what a product page hands the store when the shopper adds
// to cart.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Options   domain.Options
}

// Store owns one session's cart lines and their persistence lifecycle.
// Mutations write through to storage best-effort: a failed write is
// logged, never surfaced to the caller.
type Store struct {
	storage Storage
	key     string
	lines   []domain.CartLine
}

// Open loads the persisted cart for key, migrating legacy entries
// (missing options default to empty, missing keys are recomputed).
// Corrupt stored data is discarded and the cart starts empty.
func Open(storage Storage, key string) *Store {
	s := &Store{storage: storage, key: key}
	data, found, err := storage.Load(key)
	if err != nil {
		applog.Error(nil, "cart.load", err, map[string]any{"key": key})
		return s
	}
	if !found {
		return s
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		applog.Error(nil, "cart.load.corrupt", err, map[string]any{"key": key})
		return s
	}
	for i := range lines {
		if lines[i].OptionsKey == "" {
			lines[i].OptionsKey = domain.OptionsKey(lines[i].ProductID, lines[i].Options)
		}
		if lines[i].Quantity < 1 {
			lines[i].Quantity = 1
		}
	}
	s.lines = lines
	return s
}

// Add merges the item into an existing line with the same options
// identity, or appends a new line. Quantities below 1 count as 1.
func (s *Store) Add(item Item, quantity int) domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	key := domain.OptionsKey(item.ProductID, item.Options)
	for i := range s.lines {
		if s.lines[i].OptionsKey == key {
			s.lines[i].Quantity += quantity
			s.persist()
			return s.lines[i]
		}
	}
	line := domain.CartLine{
		ProductID:  item.ProductID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
		Image:      item.Image,
		Options:    item.Options,
		OptionsKey: key,
	}
	s.lines = append(s.lines, line)
	s.persist()
	return line
}

// Remove drops the line with the given options key; unknown keys are
// a no-op.
func (s *Store) Remove(optionsKey string) {
	for i := range s.lines {
		if s.lines[i].OptionsKey == optionsKey {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity; values
// below 1 remove the line instead.
func (s *Store) UpdateQuantity(optionsKey string, quantity int) {
	if quantity < 1 {
		s.Remove(optionsKey)
		return
	}
	for i := range s.lines {
		if s.lines[i].OptionsKey == optionsKey {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart and deletes the persisted record entirely, so
// the next load sees "no cart" rather than an empty one.
func (s *Store) Clear() {
	s.lines = nil
	if err := s.storage.Delete(s.key); err != nil {
		applog.Error(nil, "cart.clear", err, map[string]any{"key": s.key})
	}
}

// Lines returns the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of unit price times quantity over all lines.
func (s *Store) Total() float64 {
	t := 0.0
	for _, l := range s.lines {
		t += l.Price * float64(l.Quantity)
	}
	return t
}

// Count is the total item quantity, not the number of lines.
func (s *Store) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		applog.Error(nil, "cart.persist", err, map[string]any{"key": s.key})
		return
	}
	if err := s.storage.Save(s.key, data); err != nil {
		applog.Error(nil, "cart.persist", err, map[string]any{"key": s.key})
	}
}
