package models

import "time"

// DateRange is an inclusive [Start, End] interval for transaction filtering.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the YYYY-MM-DD date falls inside the interval.
// Unparseable dates are excluded.
func (r DateRange) Contains(date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}
