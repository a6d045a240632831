package inoculation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

// ApplyVaccine gives the user one dose of the vaccine from the usable batch
// that expires first, and records the inoculation under today's date.
// A user can receive a given vaccine at most once per day.
func (s *Service) ApplyVaccine(ctx context.Context, input ApplyVaccineInput) (*domain.Inoculation, error) {
	if s.batches.Len() == 0 {
		return nil, domain.ErrNoStock
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	s.batches.Sort()

	i, ok := s.batches.FindUsableByName(input.VaccineName)
	if !ok {
		return nil, domain.ErrNoStock
	}

	today := s.clock.Today()
	if s.history.HasDuplicate(input.UserName, input.VaccineName, today) {
		return nil, domain.ErrAlreadyVaccinated
	}

	b := s.batches.ConsumeOneDose(i)
	rec := domain.Inoculation{
		ID:          uuid.New(),
		UserName:    input.UserName,
		BatchID:     b.ID,
		VaccineName: input.VaccineName,
		AppliedOn:   today,
	}
	s.history.Append(rec)

	s.log.InfoContext(ctx, "vaccine applied", ctxutil.LogAttrs(ctx,
		slog.String("inoculation_id", rec.ID.String()),
		slog.String("user", rec.UserName),
		slog.String("vaccine", rec.VaccineName),
		slog.String("batch_id", rec.BatchID),
		slog.Int("doses_left", b.Doses),
	)...)

	return &rec, nil
}
