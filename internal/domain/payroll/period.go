package payroll

import (
	"sort"
	"time"
)

// Period identifies a payroll month. Ordering is calendar order via Key, never
// string order, which breaks across year boundaries.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriodLabel parses a "January 2006" style label.
func ParsePeriodLabel(label string) (Period, error) {
	t, err := time.Parse("January 2006", label)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// NewPeriod validates a month/year pair.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 || year < 1 {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Label renders the period as "January 2006".
func (p Period) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Key returns a monotonically increasing month index for sorting.
func (p Period) Key() int {
	return p.Year*12 + int(p.Month) - 1
}

func (p Period) Before(other Period) bool {
	return p.Key() < other.Key()
}

// LatestTwo returns the two most recent periods in calendar order. ok is
// false when fewer than two distinct periods exist; a single period cannot be
// compared with anything.
func LatestTwo(periods []Period) (current, previous Period, ok bool) {
	distinct := make(map[int]Period, len(periods))
	for _, p := range periods {
		distinct[p.Key()] = p
	}
	if len(distinct) < 2 {
		return Period{}, Period{}, false
	}

	sorted := make([]Period, 0, len(distinct))
	for _, p := range distinct {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })

	return sorted[len(sorted)-1], sorted[len(sorted)-2], true
}
