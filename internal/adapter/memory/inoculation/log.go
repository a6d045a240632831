// Package inoculation implements the in-memory inoculation log: an
// append-ordered sequence of vaccination records with filtered deletion.
package inoculation

import (
	"slices"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// Log keeps inoculation records in insertion order. It is not safe for
// concurrent use.
type Log struct {
	records []domain.Inoculation
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// HasDuplicate reports whether the user already received the vaccine on date.
func (l *Log) HasDuplicate(userName, vaccineName string, date domain.Date) bool {
	return slices.ContainsFunc(l.records, func(r domain.Inoculation) bool {
		return r.UserName == userName && r.VaccineName == vaccineName && r.AppliedOn == date
	})
}

// Append adds a record at the tail.
func (l *Log) Append(rec domain.Inoculation) {
	l.records = append(l.records, rec)
}

// All returns a copy of every record in insertion order.
func (l *Log) All() []domain.Inoculation {
	return slices.Clone(l.records)
}

// ByUser returns the records of one user in insertion order.
func (l *Log) ByUser(userName string) []domain.Inoculation {
	var out []domain.Inoculation
	for _, r := range l.records {
		if r.UserName == userName {
			out = append(out, r)
		}
	}
	return out
}

// HasUser reports whether at least one record belongs to the user.
func (l *Log) HasUser(userName string) bool {
	return slices.ContainsFunc(l.records, func(r domain.Inoculation) bool {
		return r.UserName == userName
	})
}

// DeleteMatching removes every record matched by the filter, keeping the
// survivors in order. It returns the removed records and whether the user had
// any record at all before the call.
func (l *Log) DeleteMatching(f domain.HistoryFilter) (removed []domain.Inoculation, userExisted bool) {
	kept := l.records[:0]
	for _, r := range l.records {
		if r.UserName == f.UserName {
			userExisted = true
		}
		if f.Matches(r) {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	clear(l.records[len(kept):])
	l.records = kept
	return removed, userExisted
}
