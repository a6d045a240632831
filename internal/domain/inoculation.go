package domain

import "github.com/google/uuid"

// Inoculation is one completed vaccination. Records are immutable once
// created; BatchID is a soft reference to the batch the dose came from.
type Inoculation struct {
	ID          uuid.UUID
	UserName    string
	BatchID     string
	VaccineName string
	AppliedOn   Date
}

// HistoryFilter selects inoculation records of one user for deletion.
// Nil fields match every record of that user.
type HistoryFilter struct {
	UserName string
	Date     *Date
	BatchID  *string
}

// Matches reports whether rec satisfies every criterion of the filter.
func (f HistoryFilter) Matches(rec Inoculation) bool {
	if rec.UserName != f.UserName {
		return false
	}
	if f.Date != nil && rec.AppliedOn != *f.Date {
		return false
	}
	if f.BatchID != nil && rec.BatchID != *f.BatchID {
		return false
	}
	return true
}
