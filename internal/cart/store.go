package cart

import "sync"

// Store keeps each owner's cart as an ordered line sequence. All
// mutations happen under one lock, so a reader observes an append or a
// quantity update as a single step, never a half-updated line.
type Store struct {
	mu    sync.RWMutex
	lines map[string][]LineItem
}

func NewStore() *Store {
	return &Store{lines: make(map[string][]LineItem)}
}

// Lines returns a copy of the owner's cart in insertion order.
func (s *Store) Lines(owner string) []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineItem, len(s.lines[owner]))
	copy(out, s.lines[owner])
	return out
}

func (s *Store) Len(owner string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines[owner])
}

// Append adds a fresh line at the end of the cart.
func (s *Store) Append(owner string, line LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[owner] = append(s.lines[owner], line)
}

// MergeOrAppend merges a simple (no-variant) add into an existing line
// with the same id, clamping the quantity to stock; without a match it
// appends the line with quantity clamped the same way. Simple lines use
// the product id as line id, so a nonce-stamped configured line never
// absorbs a plain add even when its whole selection went stale. The
// merged or appended line is returned.
func (s *Store) MergeOrAppend(owner string, line LineItem, qty, stock int) LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines[owner]
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i].Quantity = clamp(lines[i].Quantity+qty, stock)
			return lines[i]
		}
	}

	line.Quantity = clamp(qty, stock)
	s.lines[owner] = append(s.lines[owner], line)
	return line
}

// UpdateQuantity applies a delta to one line; a result of zero or less
// removes the line, mirroring the storefront's quantity stepper.
func (s *Store) UpdateQuantity(owner, lineID string, delta int) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines[owner]
	for i := range lines {
		if lines[i].ID != lineID {
			continue
		}
		lines[i].Quantity += delta
		if lines[i].Quantity <= 0 {
			removed := lines[i]
			s.lines[owner] = append(lines[:i], lines[i+1:]...)
			removed.Quantity = 0
			return removed, true
		}
		return lines[i], true
	}
	return LineItem{}, false
}

func (s *Store) Remove(owner, lineID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines[owner]
	for i := range lines {
		if lines[i].ID == lineID {
			s.lines[owner] = append(lines[:i], lines[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps an owner's whole cart, used when restoring persisted
// lines at login.
func (s *Store) Replace(owner string, lines []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[owner] = lines
}

func clamp(qty, stock int) int {
	if qty > stock {
		return stock
	}
	return qty
}
