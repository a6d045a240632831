// Package batch implements the in-memory vaccine batch store.
// Batches live in a bounded slice that is re-sorted by (expiry, id) before
// every listing or dose lookup.
package batch

import (
	"slices"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// Store holds the live vaccine batches. It is not safe for concurrent use.
type Store struct {
	items    []domain.Batch
	capacity int
}

// New creates a store that holds at most capacity batches.
func New(capacity int) *Store {
	return &Store{
		items:    make([]domain.Batch, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Len returns the number of live batches.
func (s *Store) Len() int {
	return len(s.items)
}

// Full reports whether the store has reached its capacity.
func (s *Store) Full() bool {
	return len(s.items) >= s.capacity
}

// Exists reports whether a live batch has the given id.
func (s *Store) Exists(id string) bool {
	_, ok := s.FindByID(id)
	return ok
}

// FindByID returns the position of the batch with the given id.
func (s *Store) FindByID(id string) (int, bool) {
	i := slices.IndexFunc(s.items, func(b domain.Batch) bool { return b.ID == id })
	return i, i >= 0
}

// FindUsableByName returns the position of the first batch in the current
// order whose name matches and that still has doses. Call Sort first to get
// first-expiry-first-out selection.
func (s *Store) FindUsableByName(name string) (int, bool) {
	i := slices.IndexFunc(s.items, func(b domain.Batch) bool {
		return b.Name == name && b.IsUsable()
	})
	return i, i >= 0
}

// At returns a copy of the batch at position i.
func (s *Store) At(i int) domain.Batch {
	return s.items[i]
}

// All returns a copy of every batch in the current order.
func (s *Store) All() []domain.Batch {
	return slices.Clone(s.items)
}

// ByName returns every batch with the given vaccine name in the current order.
func (s *Store) ByName(name string) []domain.Batch {
	var out []domain.Batch
	for _, b := range s.items {
		if b.Name == name {
			out = append(out, b)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends a batch. Returns domain.ErrTooManyBatches if the store is
// full and domain.ErrDuplicateBatch if the id is already live.
func (s *Store) Insert(b domain.Batch) error {
	if s.Full() {
		return domain.ErrTooManyBatches
	}
	if s.Exists(b.ID) {
		return domain.ErrDuplicateBatch
	}
	s.items = append(s.items, b)
	return nil
}

// Sort orders the batches by expiry date, then batch id. The sort is stable,
// so sorting an already sorted store leaves it unchanged.
func (s *Store) Sort() {
	slices.SortStableFunc(s.items, domain.CompareBatches)
}

// ConsumeOneDose takes one dose from the batch at position i and returns the
// updated batch. The caller must have checked that the batch is usable.
func (s *Store) ConsumeOneDose(i int) domain.Batch {
	b := &s.items[i]
	b.Doses--
	b.Applications++
	return *b
}

// RemoveOrZero removes the batch at position i if it was never applied;
// otherwise it keeps the batch with its stock set to zero. Returns the
// applications count observed before the call.
func (s *Store) RemoveOrZero(i int) int {
	applications := s.items[i].Applications
	if applications == 0 {
		s.items = slices.Delete(s.items, i, i+1)
		return applications
	}
	s.items[i].Doses = 0
	return applications
}
