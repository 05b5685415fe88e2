package payment

import (
	"math"
	"strings"
)

// Filter returns the records matching search and status. A record passes if
// the student display name or email contains search (case-insensitive
// substring match) and its status equals status ("" or "all" matches any).
func Filter(records []Payment, search, status string) []Payment {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := make([]Payment, 0, len(records))
	for _, p := range records {
		if search != "" {
			name := strings.ToLower(p.Student.Name)
			email := strings.ToLower(p.Student.Email)
			if !strings.Contains(name, search) && !strings.Contains(email, search) {
				continue
			}
		}
		if status != "" && status != "all" && p.Status != status {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Summary aggregates amounts over a set of payment records, independent of
// any search/status filter.
type Summary struct {
	Total        float64
	Paid         float64
	Pending      float64
	CollectedPct int // round(100*Paid/Total), 0 when Total is 0
}

func Summarize(records []Payment) Summary {
	var s Summary
	for _, p := range records {
		s.Total += p.Amount
		if p.IsPaid() {
			s.Paid += p.Amount
		}
	}
	s.Pending = s.Total - s.Paid
	if s.Total > 0 {
		s.CollectedPct = int(math.Round(s.Paid / s.Total * 100))
	}
	return s
}
