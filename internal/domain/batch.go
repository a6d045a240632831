package domain

// Batch limits, in bytes.
const (
	MaxBatchIDLen     = 20
	MaxVaccineNameLen = 50
)

// Batch is one manufactured lot of a vaccine.
//
// Applications only ever grows. A batch that has been applied at least once is
// never physically removed; removing it zeroes its stock instead so the
// inoculation history keeps pointing at a live batch.
type Batch struct {
	ID           string
	Name         string
	Expiry       Date
	Doses        int
	Applications int
}

// IsUsable returns true if the batch still has doses to apply.
func (b *Batch) IsUsable() bool {
	return b.Doses > 0
}

// IsUsed returns true if at least one dose has been applied from the batch.
func (b *Batch) IsUsed() bool {
	return b.Applications > 0
}

// CompareBatches orders batches by expiry date, then by batch id.
// This is the first-expiry-first-out order used for listing and dose selection.
func CompareBatches(a, b Batch) int {
	if c := a.Expiry.Compare(b.Expiry); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// IsBatchIDChar reports whether c may appear in a batch id (uppercase hex).
func IsBatchIDChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}
