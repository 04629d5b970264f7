package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the layout of start_date and end_date query parameters
const DateLayout = "2006-01-02"

// DefaultRangeDays is the length of the range used when no dates are given
const DefaultRangeDays = 30

// TimeRange is a half-open interval [Start, End)
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Days returns the number of calendar days covered by the range
func (r TimeRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// ParseTimeRange parses inclusive start and end dates (YYYY-MM-DD). Missing
// dates default to the DefaultRangeDays days ending on today's date.
func ParseTimeRange(startDate, endDate string, now time.Time) (TimeRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	end := today
	if endDate != "" {
		t, err := time.Parse(DateLayout, endDate)
		if err != nil {
			return TimeRange{}, goerr.Wrap(ErrInvalidDateRange, "failed to parse end_date",
				goerr.V("end_date", endDate))
		}
		end = t
	}

	start := end.AddDate(0, 0, -(DefaultRangeDays - 1))
	if startDate != "" {
		t, err := time.Parse(DateLayout, startDate)
		if err != nil {
			return TimeRange{}, goerr.Wrap(ErrInvalidDateRange, "failed to parse start_date",
				goerr.V("start_date", startDate))
		}
		start = t
	}

	if start.After(end) {
		return TimeRange{}, goerr.Wrap(ErrInvalidDateRange, "start_date is after end_date",
			goerr.V("start_date", start.Format(DateLayout)),
			goerr.V("end_date", end.Format(DateLayout)))
	}

	return TimeRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
}
