package ledger

import (
	"testing"
	"time"
)

func TestPeriodNext(t *testing.T) {
	t.Run("mid_year", func(t *testing.T) {
		p := Period{Year: 2025, Month: 3}.Next()
		if p.Year != 2025 || p.Month != 4 {
			t.Errorf("expected 2025-04, got %d-%02d", p.Year, p.Month)
		}
	})

	t.Run("december_wraps", func(t *testing.T) {
		p := Period{Year: 2025, Month: 12}.Next()
		if p.Year != 2026 || p.Month != 1 {
			t.Errorf("expected 2026-01, got %d-%02d", p.Year, p.Month)
		}
	})
}

func TestPeriodPrev(t *testing.T) {
	t.Run("mid_year", func(t *testing.T) {
		p := Period{Year: 2025, Month: 3}.Prev()
		if p.Year != 2025 || p.Month != 2 {
			t.Errorf("expected 2025-02, got %d-%02d", p.Year, p.Month)
		}
	})

	t.Run("january_wraps", func(t *testing.T) {
		p := Period{Year: 2025, Month: 1}.Prev()
		if p.Year != 2024 || p.Month != 12 {
			t.Errorf("expected 2024-12, got %d-%02d", p.Year, p.Month)
		}
	})
}

func TestPeriodRoundTrip(t *testing.T) {
	// Prev then Next must return to the starting period across wraps.
	for _, p := range []Period{
		{Year: 2025, Month: 1},
		{Year: 2025, Month: 6},
		{Year: 2025, Month: 12},
	} {
		if got := p.Next().Prev(); got != p {
			t.Errorf("Next().Prev() of %v = %v", p, got)
		}
		if got := p.Prev().Next(); got != p {
			t.Errorf("Prev().Next() of %v = %v", p, got)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		wantStart string
		wantEnd   string
	}{
		{"march", Period{2025, 3}, "2025-03-01", "2025-03-31"},
		{"april_thirty_days", Period{2025, 4}, "2025-04-01", "2025-04-30"},
		{"february_common", Period{2025, 2}, "2025-02-01", "2025-02-28"},
		{"february_leap", Period{2024, 2}, "2024-02-01", "2024-02-29"},
		{"december", Period{2025, 12}, "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.period.Bounds()
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start: expected %s, got %s", tt.wantStart, got)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, got)
			}
		})
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC))
	if p.Year != 2025 || p.Month != 3 {
		t.Errorf("expected 2025-03, got %d-%02d", p.Year, p.Month)
	}
}

func TestPeriodValid(t *testing.T) {
	if !(Period{Year: 2025, Month: 1}).Valid() {
		t.Error("month 1 should be valid")
	}
	if !(Period{Year: 2025, Month: 12}).Valid() {
		t.Error("month 12 should be valid")
	}
	if (Period{Year: 2025, Month: 0}).Valid() {
		t.Error("month 0 should be invalid")
	}
	if (Period{Year: 2025, Month: 13}).Valid() {
		t.Error("month 13 should be invalid")
	}
}
