package cart

import (
	"log/slog"
	"sync"

	"marqet.co/app/internal/modules/catalog"
)

// Store holds the cart lines in insertion order, at most one per product
// ID. Repeated adds merge into the existing line. The full state is
// persisted through the Storage port after every mutation; persistence
// failures are logged and swallowed so a mutation never fails, the cart
// just degrades to session-only.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	log     *slog.Logger
}

// NewStore builds a store and restores any persisted state. A nil
// storage gives a memory-only cart; a failed load starts empty.
func NewStore(storage Storage, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{storage: storage, log: log}
	if storage != nil {
		items, err := storage.Load()
		if err != nil {
			log.Warn("cart_load_failed", "err", err)
		} else {
			s.items = sanitize(items)
		}
	}
	return s
}

// sanitize drops lines a broken persistence layer could have produced:
// empty IDs, non-positive quantities, duplicate IDs (merged).
func sanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, it := range items {
		if it.ID == "" || it.Quantity <= 0 {
			continue
		}
		if i, ok := seen[it.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		seen[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}

// Add puts qty units of product in the cart, merging into an existing
// line for the same ID. A non-positive qty is clamped to 1.
func (s *Store) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: qty})
	s.persist()
}

// Remove deletes the line with the given ID. No-op if absent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// IncreaseQty bumps the line's quantity by one. No-op if absent.
func (s *Store) IncreaseQty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
}

// DecreaseQty lowers the line's quantity by one, removing the line when
// it would reach zero. No-op if absent.
func (s *Store) DecreaseQty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity <= 1 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity--
			}
			s.persist()
			return
		}
	}
}

// SetQty sets the line's quantity outright; zero or less removes the
// line. No-op if absent.
func (s *Store) SetQty(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if qty <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = qty
			}
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a snapshot copy in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems sums the quantities of the current lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalItems(s.items)
}

// TotalPrice sums quantity times effective price over the current lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalPrice(s.items)
}

// persist writes the whole state through the storage port. Callers hold
// the mutex.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.items); err != nil {
		s.log.Warn("cart_save_failed", "err", err, "items", len(s.items))
	}
}
