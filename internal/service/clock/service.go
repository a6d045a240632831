// Package clock exposes the simulated calendar to the command layer.
package clock

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

type clockRepo interface {
	Today() domain.Date
	Advance(date domain.Date) error
}

// Service reads and advances the simulated date.
type Service struct {
	clock clockRepo
	log   *slog.Logger
}

// NewService creates a new Clock service.
func NewService(log *slog.Logger, clock clockRepo) *Service {
	return &Service{
		clock: clock,
		log:   log.With("service", "clock"),
	}
}

// AdvanceClockInput holds the new date. A nil Date only reads the clock.
type AdvanceClockInput struct {
	Date *domain.Date
}

// AdvanceClock moves the simulated date forward and returns the date now in
// effect. Dates that are not calendar days or lie in the past are rejected
// with domain.ErrInvalidDate and the clock keeps its value.
func (s *Service) AdvanceClock(ctx context.Context, input AdvanceClockInput) (domain.Date, error) {
	if input.Date == nil {
		return s.clock.Today(), nil
	}

	prev := s.clock.Today()
	if err := s.clock.Advance(*input.Date); err != nil {
		return domain.Date{}, err
	}

	if *input.Date != prev {
		s.log.InfoContext(ctx, "clock advanced", ctxutil.LogAttrs(ctx,
			slog.String("from", prev.String()),
			slog.String("to", input.Date.String()),
		)...)
	}

	return s.clock.Today(), nil
}
