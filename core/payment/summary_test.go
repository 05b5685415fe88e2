package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePayments() []Payment {
	return []Payment{
		{ID: "p1", Student: StudentRef{ID: "s1", Name: "Jane Doe", Email: "jane@school.test"}, Amount: 500, Month: "May", Year: 2024, Status: StatusPending},
		{ID: "p2", Student: StudentRef{ID: "s2", Name: "John Smith", Email: "john@school.test"}, Amount: 300, Month: "May", Year: 2024, Status: StatusPaid, PaymentType: TypeCash},
		{ID: "p3", Student: StudentRef{ID: "s3"}, Amount: 200, Month: "June", Year: 2024, Status: StatusPending},
	}
}

func TestFilter(t *testing.T) {
	records := samplePayments()

	tests := []struct {
		name    string
		search  string
		status  string
		wantIDs []string
	}{
		{name: "no constraints", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "all status", status: "all", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "search by name, case-insensitive", search: "JANE", wantIDs: []string{"p1"}},
		{name: "search by email", search: "john@", wantIDs: []string{"p2"}},
		{name: "search substring", search: "school.test", wantIDs: []string{"p1", "p2"}},
		{name: "status only", status: StatusPending, wantIDs: []string{"p1", "p3"}},
		{name: "search and status", search: "school.test", status: StatusPaid, wantIDs: []string{"p2"}},
		{name: "no match", search: "nobody", wantIDs: []string{}},
		{name: "unresolved student has no name or email", search: "s3", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.search, tt.status)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)

			// the filtered view is always a subset of the cache
			assert.LessOrEqual(t, len(got), len(records))
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Payment{
		{ID: "1", Amount: 500, Status: StatusPending},
		{ID: "2", Amount: 300, Status: StatusPaid},
	})
	assert.Equal(t, 800.0, s.Total)
	assert.Equal(t, 300.0, s.Paid)
	assert.Equal(t, 500.0, s.Pending)
	assert.Equal(t, 38, s.CollectedPct)
}

func TestSummarize_empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0, s.CollectedPct)
}

func TestSummarize_totalIsPaidPlusPending(t *testing.T) {
	caches := [][]Payment{
		nil,
		samplePayments(),
		{{Amount: 42.5, Status: StatusPaid}},
		{{Amount: 10, Status: StatusPending}, {Amount: 0, Status: StatusPaid}},
	}
	for _, records := range caches {
		s := Summarize(records)
		assert.Equal(t, s.Total, s.Paid+s.Pending)
		assert.GreaterOrEqual(t, s.CollectedPct, 0)
		assert.LessOrEqual(t, s.CollectedPct, 100)
	}
}
