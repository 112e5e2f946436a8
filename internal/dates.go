package internal

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the reference timestamp format accepted by the report
// operations, e.g. "2018-05-28 00:00:00".
const TimestampLayout = "2006-01-02 15:04:05"

// ErrInvalidDateFormat signals a reference timestamp that does not match
// TimestampLayout. Callers treat it as "no range": the downstream filters
// then yield zero rows.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MonthRange returns the first calendar day of the reference month and the
// reference day itself, both at midnight.
func MonthRange(ref string) (time.Time, time.Time, error) {
	t, err := time.Parse(TimestampLayout, ref)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, ref)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return first, day, nil
}

// LookbackWindow returns the [end-days, end] window ending at the reference
// timestamp. An empty ref means "now".
func LookbackWindow(ref string, days int) (time.Time, time.Time, error) {
	var end time.Time
	if ref == "" {
		end = time.Now()
	} else {
		t, err := time.Parse(TimestampLayout, ref)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, ref)
		}
		end = t
	}
	return end.AddDate(0, 0, -days), end, nil
}
