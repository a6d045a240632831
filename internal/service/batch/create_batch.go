package batch

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

// CreateBatch registers a new batch with no applications.
// Capacity and uniqueness are checked before the input fields.
func (s *Service) CreateBatch(ctx context.Context, input CreateBatchInput) (*domain.Batch, error) {
	if s.batches.Full() {
		return nil, domain.ErrTooManyBatches
	}
	if s.batches.Exists(input.BatchID) {
		return nil, domain.ErrDuplicateBatch
	}
	if err := input.Validate(s.clock.Today()); err != nil {
		return nil, err
	}

	b := domain.Batch{
		ID:     input.BatchID,
		Name:   input.Name,
		Expiry: input.Expiry,
		Doses:  input.Doses,
	}
	if err := s.batches.Insert(b); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch created", ctxutil.LogAttrs(ctx,
		slog.String("batch_id", b.ID),
		slog.String("vaccine", b.Name),
		slog.String("expiry", b.Expiry.String()),
		slog.Int("doses", b.Doses),
	)...)

	return &b, nil
}
