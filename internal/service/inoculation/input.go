package inoculation

import "github.com/heartmarshall/vaxsim/internal/domain"

// ApplyVaccineInput holds the parameters for vaccinating a user.
type ApplyVaccineInput struct {
	UserName    string
	VaccineName string
}

// Validate checks that both names are present.
func (i ApplyVaccineInput) Validate() error {
	if i.UserName == "" || i.VaccineName == "" {
		return domain.ErrInvalidName
	}
	return nil
}

// ListHistoryInput selects whose history to list. A nil UserName lists everyone.
type ListHistoryInput struct {
	UserName *string
}

// DeleteHistoryInput holds the parameters for deleting history records.
// Date and BatchID narrow the deletion when set.
type DeleteHistoryInput struct {
	UserName string
	Date     *domain.Date
	BatchID  *string
}

// Validate checks the optional date against the calendar and today.
// A date in the future cannot match any record and is rejected.
func (i DeleteHistoryInput) Validate(today domain.Date) error {
	if i.UserName == "" {
		return domain.ErrInvalidName
	}
	if i.Date != nil && (!i.Date.IsValid() || i.Date.After(today)) {
		return domain.ErrInvalidDate
	}
	return nil
}

func (i DeleteHistoryInput) filter() domain.HistoryFilter {
	return domain.HistoryFilter{
		UserName: i.UserName,
		Date:     i.Date,
		BatchID:  i.BatchID,
	}
}
