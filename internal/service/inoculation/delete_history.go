package inoculation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

// DeleteHistory removes the user's records that match the optional date and
// batch. It returns the number of records removed, which may be zero when the
// user exists but nothing matches. A user without any record is an error.
func (s *Service) DeleteHistory(ctx context.Context, input DeleteHistoryInput) (int, error) {
	if err := input.Validate(s.clock.Today()); err != nil {
		return 0, err
	}
	if input.BatchID != nil && !s.batches.Exists(*input.BatchID) {
		return 0, domain.NewSubjectError(*input.BatchID, domain.ErrNoSuchBatch)
	}

	removed, userExisted := s.history.DeleteMatching(input.filter())
	if !userExisted {
		return 0, domain.NewSubjectError(input.UserName, domain.ErrNoSuchUser)
	}

	for _, rec := range removed {
		s.log.DebugContext(ctx, "inoculation deleted", ctxutil.LogAttrs(ctx,
			slog.String("inoculation_id", rec.ID.String()),
			slog.String("batch_id", rec.BatchID),
			slog.String("applied_on", rec.AppliedOn.String()),
		)...)
	}
	s.log.InfoContext(ctx, "history deleted", ctxutil.LogAttrs(ctx,
		slog.String("user", input.UserName),
		slog.Int("deleted_count", len(removed)),
	)...)

	return len(removed), nil
}
