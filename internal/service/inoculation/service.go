package inoculation

import (
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

type batchRepo interface {
	Len() int
	Sort()
	Exists(id string) bool
	FindUsableByName(name string) (int, bool)
	ConsumeOneDose(i int) domain.Batch
}

type inoculationRepo interface {
	HasDuplicate(userName, vaccineName string, date domain.Date) bool
	Append(rec domain.Inoculation)
	All() []domain.Inoculation
	ByUser(userName string) []domain.Inoculation
	DeleteMatching(f domain.HistoryFilter) ([]domain.Inoculation, bool)
}

type clock interface {
	Today() domain.Date
}

// Service records vaccinations and manages the vaccination history.
type Service struct {
	batches batchRepo
	history inoculationRepo
	clock   clock
	log     *slog.Logger
}

// NewService creates a new Inoculation service.
func NewService(
	log *slog.Logger,
	batches batchRepo,
	history inoculationRepo,
	clock clock,
) *Service {
	return &Service{
		batches: batches,
		history: history,
		clock:   clock,
		log:     log.With("service", "inoculation"),
	}
}
