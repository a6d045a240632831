package batch

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

// RemoveBatch withdraws a batch. A batch that was never applied is deleted;
// a used one is kept with zero doses so its history stays resolvable.
// Returns the number of applications the batch had.
func (s *Service) RemoveBatch(ctx context.Context, input RemoveBatchInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	i, ok := s.batches.FindByID(input.BatchID)
	if !ok {
		return 0, domain.NewSubjectError(input.BatchID, domain.ErrNoSuchBatch)
	}

	applications := s.batches.RemoveOrZero(i)

	s.log.InfoContext(ctx, "batch removed", ctxutil.LogAttrs(ctx,
		slog.String("batch_id", input.BatchID),
		slog.Int("applications", applications),
		slog.Bool("retained", applications > 0),
	)...)

	return applications, nil
}
