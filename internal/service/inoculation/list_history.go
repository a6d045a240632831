package inoculation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

// ListHistory returns inoculation records in the order they were made.
// Without a user it returns everybody's records, possibly none. With a user
// that has no record it returns a domain.ErrNoSuchUser error naming them.
func (s *Service) ListHistory(ctx context.Context, input ListHistoryInput) ([]domain.Inoculation, error) {
	var records []domain.Inoculation
	if input.UserName == nil {
		records = s.history.All()
	} else {
		records = s.history.ByUser(*input.UserName)
		if len(records) == 0 {
			return nil, domain.NewSubjectError(*input.UserName, domain.ErrNoSuchUser)
		}
	}

	for _, rec := range records {
		s.log.DebugContext(ctx, "inoculation listed", ctxutil.LogAttrs(ctx,
			slog.String("inoculation_id", rec.ID.String()),
			slog.String("user", rec.UserName),
			slog.String("batch_id", rec.BatchID),
		)...)
	}

	return records, nil
}
