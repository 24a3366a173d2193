// Package ledger contains the pure domain logic of the financial ledger:
// period navigation, amount normalization, draft validation, and
// aggregation. Nothing in this package performs I/O.
package ledger

import "time"

// Period is a calendar year+month pair defining the inclusive date range
// for a ledger view.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// PeriodOf returns the period containing the given instant.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Next returns the following period, wrapping December into January of the
// next year.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Prev returns the preceding period, wrapping January into December of the
// previous year.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Bounds returns the first and last calendar day of the period, both at
// midnight UTC. The last day is obtained as day zero of the following
// month.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Valid reports whether the month falls in 1-12. Years are unbounded.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12
}
