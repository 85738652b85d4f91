// Package timekeeping holds the pure timesheet period rules: structural
// validation of one day's submitted periods, the holiday workday clamp
// and the elapsed-hours computation.
package timekeeping

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/utils/timeofday"
)

// Period is one submitted work period of a single day. ReleaseID is set
// when the caller intends to update an existing stored entry.
type Period struct {
	ReleaseID   string
	Start       string
	End         string
	Description string
}

// ValidatePeriods checks one day's periods for structural violations:
// malformed or out-of-range times, inverted periods and overlaps between
// any two periods. The first violation found is returned with the index
// of the offending period; nil means the whole list is acceptable.
func ValidatePeriods(periods []Period) error {
	type bounds struct {
		index      int
		start, end int
	}
	parsed := make([]bounds, 0, len(periods))

	for i, p := range periods {
		start, err := parseValid(i, p.Start)
		if err != nil {
			return err
		}
		end, err := parseValid(i, p.End)
		if err != nil {
			return err
		}
		if start > end {
			return &apperrors.InvertedPeriodError{Index: i, Start: p.Start, End: p.End}
		}
		parsed = append(parsed, bounds{index: i, start: start, end: end})
	}

	// Stable sort keeps the submission order for equal start times, so
	// the error indexes stay meaningful to the caller.
	sort.SliceStable(parsed, func(a, b int) bool { return parsed[a].start < parsed[b].start })

	for i := 1; i < len(parsed); i++ {
		prev, cur := parsed[i-1], parsed[i]
		if prev.end > cur.start {
			return &apperrors.OverlappingPeriodError{
				FirstIndex:  prev.index,
				SecondIndex: cur.index,
				FirstEnd:    periods[prev.index].End,
				SecondStart: periods[cur.index].Start,
			}
		}
	}
	return nil
}

func parseValid(index int, value string) (int, error) {
	hour, minute, err := timeofday.Parse(value)
	if err != nil {
		return 0, err
	}
	if !timeofday.IsValid(hour, minute) {
		return 0, &apperrors.InvalidTimeRangeError{Index: index, Value: value, Hour: hour, Minute: minute}
	}
	return hour*60 + minute, nil
}

// WorkdayWindow is the default shift that holiday work is clamped to.
type WorkdayWindow struct {
	StartHour int
	EndHour   int
}

// DefaultWorkday is the standard 08:00-17:00 shift.
var DefaultWorkday = WorkdayWindow{StartHour: 8, EndHour: 17}

// AdjustForHoliday clamps a period to the workday window when its date is
// a declared holiday: the start is moved forward to the window start if
// earlier, the end backward to the window end if later. A period lying
// entirely outside the window collapses to zero length rather than going
// negative. Non-holiday periods pass through unchanged. The returned flag
// reports whether the date was a holiday; the adjustment is idempotent.
func AdjustForHoliday(date time.Time, start, end time.Time, holidays domain.HolidaySet, window WorkdayWindow) (time.Time, time.Time, bool) {
	if !holidays.Contains(date) {
		return start, end, false
	}
	floor := time.Date(date.Year(), date.Month(), date.Day(), window.StartHour, 0, 0, 0, date.Location())
	ceil := time.Date(date.Year(), date.Month(), date.Day(), window.EndHour, 0, 0, 0, date.Location())
	if start.Before(floor) {
		start = floor
	}
	if end.After(ceil) {
		end = ceil
	}
	if end.Before(start) {
		end = start
	}
	return start, end, true
}

// PeriodHours returns the elapsed hours between start and end as a
// decimal, keeping fractional minutes rather than truncating to whole
// hours.
func PeriodHours(start, end time.Time) decimal.Decimal {
	minutes := int64(end.Sub(start) / time.Minute)
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60))
}
