package catalog

import (
	"errors"
	"sync"

	"github.com/Alansi2025/inventory-management/internal/clock"
	"github.com/Alansi2025/inventory-management/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Update when no product has the given id.
var ErrNotFound = errors.New("product not found")

// Store owns the authoritative in-memory product list. It is the only writer
// of catalog state; everything else reads copies via Snapshot. All operations
// are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	clk   clock.Clock
	items []models.Product
	index map[string]int
}

// NewStore creates an empty catalog store. Timestamps are stamped from clk.
func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Store{
		clk:   clk,
		index: make(map[string]int),
	}
}

// Add assigns a fresh id to p, stamps LastUpdated and appends it to the
// catalog. Any id already present on p is ignored. The stored record is
// returned. Never fails for well-formed input.
func (s *Store) Add(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.LastUpdated = s.clk.Now().UTC()
	p.History = cloneHistory(p.History)

	s.index[p.ID] = len(s.items)
	s.items = append(s.items, p)
	return clone(p)
}

// Update replaces the record whose id matches p.ID, keeping its position in
// insertion order and stamping LastUpdated. The stored quantity history is
// retained; catalog operations never rewrite it. Returns ErrNotFound if the
// id is absent.
func (s *Store) Update(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[p.ID]
	if !ok {
		return ErrNotFound
	}

	p.History = s.items[pos].History
	p.LastUpdated = s.clk.Now().UTC()
	s.items[pos] = p
	return nil
}

// Delete removes the record with the given id if present. Deleting an
// unknown id is not an error; the return value reports whether a record
// was actually removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

// BatchDelete removes every record whose id is in ids; unknown ids are
// ignored. It returns the ids that were actually removed, in catalog order.
func (s *Store) BatchDelete(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	removed := make([]string, 0, len(wanted))
	for _, p := range s.items {
		if _, ok := wanted[p.ID]; ok {
			removed = append(removed, p.ID)
		}
	}
	for _, id := range removed {
		s.remove(id)
	}
	return removed
}

// BatchSetQuantity sets Quantity on every record whose id is in ids,
// stamping LastUpdated on each; unknown ids are ignored. It returns the ids
// that were actually updated, in catalog order.
func (s *Store) BatchSetQuantity(ids []string, quantity int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	now := s.clk.Now().UTC()
	updated := make([]string, 0, len(wanted))
	for i := range s.items {
		if _, ok := wanted[s.items[i].ID]; !ok {
			continue
		}
		s.items[i].Quantity = quantity
		s.items[i].LastUpdated = now
		updated = append(updated, s.items[i].ID)
	}
	return updated
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return clone(s.items[pos]), true
}

// Snapshot returns a copy of the catalog in insertion order. The copy is
// deep enough that callers cannot mutate store state through it.
func (s *Store) Snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.items))
	for i, p := range s.items {
		out[i] = clone(p)
	}
	return out
}

// remove deletes id from items and index. Caller holds the write lock.
func (s *Store) remove(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return true
}

func clone(p models.Product) models.Product {
	p.History = cloneHistory(p.History)
	return p
}

func cloneHistory(h []models.QuantityObservation) []models.QuantityObservation {
	if h == nil {
		return nil
	}
	out := make([]models.QuantityObservation, len(h))
	copy(out, h)
	return out
}
