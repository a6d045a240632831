package batch

import (
	"context"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// Listing is the result for one requested vaccine name, or for the whole
// store when Name is empty. Err is set when the name matched no batch.
type Listing struct {
	Name    string
	Batches []domain.Batch
	Err     error
}

// ListBatches returns the batches in first-expiry-first-out order.
// Without names it returns a single listing with every batch. With names it
// returns one listing per name, in the order given; a name with no batch
// carries a domain.ErrNoSuchVaccine error naming it.
func (s *Service) ListBatches(_ context.Context, input ListBatchesInput) []Listing {
	s.batches.Sort()

	if len(input.Names) == 0 {
		return []Listing{{Batches: s.batches.All()}}
	}

	listings := make([]Listing, 0, len(input.Names))
	for _, name := range input.Names {
		l := Listing{Name: name, Batches: s.batches.ByName(name)}
		if len(l.Batches) == 0 {
			l.Err = domain.NewSubjectError(name, domain.ErrNoSuchVaccine)
		}
		listings = append(listings, l)
	}
	return listings
}
