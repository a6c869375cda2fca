package vacation

import (
	"time"

	vacationerrors "github.com/EddieMjiyakho/Vacation-API/internal/vacation/errors"
)

// Date-range rules shared by the workflow and the query side. All
// checks are pure; a zero time.Time means the date is absent.

// ValidateRange checks a candidate range in isolation: both bounds
// present, start before end, at least two inclusive days, and start
// no earlier than tomorrow.
func ValidateRange(start, end, today time.Time) error {
	if start.IsZero() || end.IsZero() {
		return vacationerrors.ErrMissingDates
	}
	if start.After(end) {
		return vacationerrors.ErrStartAfterEnd
	}
	if start.Equal(end) {
		return vacationerrors.ErrMinimumDuration
	}
	if start.Before(today.AddDate(0, 0, 1)) {
		return vacationerrors.ErrLeadTime
	}
	return nil
}

// DurationDays returns the inclusive day count of [start, end].
func DurationDays(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, vacationerrors.ErrMissingDates
	}
	if start.After(end) {
		return 0, vacationerrors.ErrStartAfterEnd
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// RangesOverlap reports whether the closed intervals [aStart, aEnd]
// and [bStart, bEnd] share at least one calendar day. Ranges touching
// at a boundary overlap. Any absent bound means no overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aStart.IsZero() || aEnd.IsZero() || bStart.IsZero() || bEnd.IsZero() {
		return false
	}
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}
