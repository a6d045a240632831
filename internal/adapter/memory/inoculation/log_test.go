package inoculation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

var (
	day1 = domain.Date{Day: 1, Month: 1, Year: 2025}
	day2 = domain.Date{Day: 2, Month: 1, Year: 2025}
)

func rec(user, batch, vaccine string, on domain.Date) domain.Inoculation {
	return domain.Inoculation{
		ID:          uuid.New(),
		UserName:    user,
		BatchID:     batch,
		VaccineName: vaccine,
		AppliedOn:   on,
	}
}

func users(records []domain.Inoculation) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.UserName + "/" + r.BatchID
	}
	return out
}

func TestHasDuplicate(t *testing.T) {
	t.Parallel()

	l := New()
	l.Append(rec("Joe", "A1", "Flu", day1))

	assert.True(t, l.HasDuplicate("Joe", "Flu", day1))
	assert.False(t, l.HasDuplicate("Joe", "Flu", day2), "other day is not a duplicate")
	assert.False(t, l.HasDuplicate("Joe", "Covid", day1), "other vaccine is not a duplicate")
	assert.False(t, l.HasDuplicate("Ann", "Flu", day1), "other user is not a duplicate")
	assert.False(t, l.HasDuplicate("Joe", "Flu", domain.Date{Day: 1, Month: 1, Year: 2026}),
		"same day of year in another year is not a duplicate")
}

func TestAppend_PreservesOrder(t *testing.T) {
	t.Parallel()

	l := New()
	l.Append(rec("Joe", "A1", "Flu", day1))
	l.Append(rec("Ann", "A1", "Flu", day1))
	l.Append(rec("Joe", "B2", "Covid", day2))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Joe/A1", "Ann/A1", "Joe/B2"}, users(l.All()))
	assert.Equal(t, []string{"Joe/A1", "Joe/B2"}, users(l.ByUser("Joe")))
	assert.Empty(t, l.ByUser("Bob"))
	assert.True(t, l.HasUser("Ann"))
	assert.False(t, l.HasUser("Bob"))
}

func TestDeleteMatching(t *testing.T) {
	t.Parallel()

	batchA := "A1"

	tests := []struct {
		name        string
		filter      domain.HistoryFilter
		wantRemoved int
		wantExisted bool
		wantLeft    []string
	}{
		{
			name:        "all records of user",
			filter:      domain.HistoryFilter{UserName: "Joe"},
			wantRemoved: 2,
			wantExisted: true,
			wantLeft:    []string{"Ann/A1"},
		},
		{
			name:        "by date",
			filter:      domain.HistoryFilter{UserName: "Joe", Date: &day2},
			wantRemoved: 1,
			wantExisted: true,
			wantLeft:    []string{"Joe/A1", "Ann/A1"},
		},
		{
			name:        "by batch",
			filter:      domain.HistoryFilter{UserName: "Joe", BatchID: &batchA},
			wantRemoved: 1,
			wantExisted: true,
			wantLeft:    []string{"Ann/A1", "Joe/B2"},
		},
		{
			name:        "user exists but filters match nothing",
			filter:      domain.HistoryFilter{UserName: "Joe", Date: &day2, BatchID: &batchA},
			wantRemoved: 0,
			wantExisted: true,
			wantLeft:    []string{"Joe/A1", "Ann/A1", "Joe/B2"},
		},
		{
			name:        "unknown user",
			filter:      domain.HistoryFilter{UserName: "Bob"},
			wantRemoved: 0,
			wantExisted: false,
			wantLeft:    []string{"Joe/A1", "Ann/A1", "Joe/B2"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New()
			l.Append(rec("Joe", "A1", "Flu", day1))
			l.Append(rec("Ann", "A1", "Flu", day1))
			l.Append(rec("Joe", "B2", "Covid", day2))

			removed, existed := l.DeleteMatching(tt.filter)
			require.Len(t, removed, tt.wantRemoved)
			assert.Equal(t, tt.wantExisted, existed)
			assert.Equal(t, tt.wantLeft, users(l.All()))
			assert.Equal(t, 3-tt.wantRemoved, l.Len())
		})
	}
}
