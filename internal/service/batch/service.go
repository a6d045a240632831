package batch

import (
	"log/slog"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

type batchRepo interface {
	Full() bool
	Exists(id string) bool
	Insert(b domain.Batch) error
	Sort()
	All() []domain.Batch
	ByName(name string) []domain.Batch
	FindByID(id string) (int, bool)
	RemoveOrZero(i int) int
}

type clock interface {
	Today() domain.Date
}

// Service provides vaccine batch management operations.
type Service struct {
	batches batchRepo
	clock   clock
	log     *slog.Logger
}

// NewService creates a new Batch service.
func NewService(
	log *slog.Logger,
	batches batchRepo,
	clock clock,
) *Service {
	return &Service{
		batches: batches,
		clock:   clock,
		log:     log.With("service", "batch"),
	}
}
