package util

import (
	"time"

	"dompet-gateway/src/models"
)

const dateLayout = "2006-01-02"

// ParseDateRange builds the inclusive transaction filter from the start_date /
// end_date query values. Both must be supplied together; otherwise the filter
// is skipped entirely.
func ParseDateRange(startDate, endDate string) (*models.DateRange, error) {
	if startDate == "" || endDate == "" {
		return nil, nil
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, models.InvalidRequest("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, models.InvalidRequest("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, models.InvalidRequest("end_date must not precede start_date")
	}

	return &models.DateRange{Start: start, End: end}, nil
}
