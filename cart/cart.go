// Package cart holds the in-memory session carts. Carts are never persisted;
// a server restart empties them, matching the storefront's session-scoped cart.
package cart

import "sync"

// Line is one cart entry, keyed by (ItemID, VariantID).
type Line struct {
	ItemID       string  `json:"item_id"`
	VariantID    string  `json:"variant_id"`
	Name         string  `json:"name"`
	VariantLabel string  `json:"variant_label"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// Store maps user IDs to their cart lines. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Line)}
}

// AddItem appends a new line with quantity 1, or bumps the quantity of an
// existing (item, variant) line by 1. Stock is the caller's concern.
func (s *Store) AddItem(userID string, line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ItemID == line.ItemID && lines[i].VariantID == line.VariantID {
			lines[i].Quantity++
			return
		}
	}
	line.Quantity = 1
	s.carts[userID] = append(lines, line)
}

// UpdateQuantity sets the quantity of a matching line. A quantity of zero or
// less removes the line. Unknown keys are a no-op.
func (s *Store) UpdateQuantity(userID, itemID, variantID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(userID, itemID, variantID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ItemID == itemID && lines[i].VariantID == variantID {
			lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the matching line if present.
func (s *Store) RemoveItem(userID, itemID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	kept := lines[:0]
	for _, l := range lines {
		if l.ItemID == itemID && l.VariantID == variantID {
			continue
		}
		kept = append(kept, l)
	}
	if len(kept) == 0 {
		delete(s.carts, userID)
		return
	}
	s.carts[userID] = kept
}

// Clear empties the user's cart. Called after a successful order placement.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Lines returns a copy of the user's cart lines.
func (s *Store) Lines(userID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// TotalItems is the sum of quantities. Recomputed on every call.
func (s *Store) TotalItems(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.carts[userID] {
		total += l.Quantity
	}
	return total
}

// TotalAmount is the sum of quantity x unit price. Recomputed on every call.
func (s *Store) TotalAmount(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, l := range s.carts[userID] {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}
