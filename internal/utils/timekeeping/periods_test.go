package timekeeping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/utils/timekeeping"
)

func TestValidatePeriods_Acceptable(t *testing.T) {
	tests := []struct {
		name    string
		periods []timekeeping.Period
	}{
		{
			name: "single period",
			periods: []timekeeping.Period{
				{Start: "08:00", End: "12:00"},
			},
		},
		{
			name: "two disjoint periods",
			periods: []timekeeping.Period{
				{Start: "08:00", End: "12:00"},
				{Start: "13:00", End: "17:00"},
			},
		},
		{
			name: "touching boundaries",
			periods: []timekeeping.Period{
				{Start: "08:00", End: "12:00"},
				{Start: "12:00", End: "17:00"},
			},
		},
		{
			name: "unsorted submission order",
			periods: []timekeeping.Period{
				{Start: "13:00", End: "17:00"},
				{Start: "08:00", End: "12:00"},
			},
		},
		{
			name: "zero-length period",
			periods: []timekeeping.Period{
				{Start: "10:00", End: "10:00"},
			},
		},
		{
			name:    "empty list",
			periods: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, timekeeping.ValidatePeriods(tt.periods))
		})
	}
}

func TestValidatePeriods_MalformedTime(t *testing.T) {
	err := timekeeping.ValidatePeriods([]timekeeping.Period{
		{Start: "0800", End: "12:00"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var malformed *apperrors.MalformedTimeError
	assert.ErrorAs(t, err, &malformed)
}

func TestValidatePeriods_TimeOutOfRange(t *testing.T) {
	err := timekeeping.ValidatePeriods([]timekeeping.Period{
		{Start: "08:00", End: "24:01"},
	})
	require.Error(t, err)
	var outOfRange *apperrors.InvalidTimeRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 0, outOfRange.Index)
	assert.Equal(t, "24:01", outOfRange.Value)
}

func TestValidatePeriods_Inverted(t *testing.T) {
	err := timekeeping.ValidatePeriods([]timekeeping.Period{
		{Start: "08:00", End: "12:00"},
		{Start: "15:00", End: "14:00"},
	})
	require.Error(t, err)
	var inverted *apperrors.InvertedPeriodError
	require.ErrorAs(t, err, &inverted)
	assert.Equal(t, 1, inverted.Index)
}

func TestValidatePeriods_Overlap(t *testing.T) {
	err := timekeeping.ValidatePeriods([]timekeeping.Period{
		{Start: "08:00", End: "12:30"},
		{Start: "12:00", End: "17:00"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var overlap *apperrors.OverlappingPeriodError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, 0, overlap.FirstIndex)
	assert.Equal(t, 1, overlap.SecondIndex)
}

func TestValidatePeriods_OverlapDetectedAcrossSubmissionOrder(t *testing.T) {
	// Overlapping pair arrives out of order; sorting must still pair them.
	err := timekeeping.ValidatePeriods([]timekeeping.Period{
		{Start: "13:00", End: "18:00"},
		{Start: "08:00", End: "14:00"},
	})
	require.Error(t, err)
	var overlap *apperrors.OverlappingPeriodError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, 1, overlap.FirstIndex)
	assert.Equal(t, 0, overlap.SecondIndex)
}

func holidayOn(date time.Time) domain.HolidaySet {
	return domain.NewHolidaySet([]domain.Holiday{{Date: date}})
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func TestAdjustForHoliday_ClampsToWorkday(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date)

	start, end, isHoliday := timekeeping.AdjustForHoliday(
		date, at(date, 6, 0), at(date, 20, 0), holidays, timekeeping.DefaultWorkday)

	assert.True(t, isHoliday)
	assert.Equal(t, at(date, 8, 0), start)
	assert.Equal(t, at(date, 17, 0), end)
	assert.True(t, timekeeping.PeriodHours(start, end).Equal(decimal.NewFromInt(9)))
}

func TestAdjustForHoliday_InsideWindowUntouched(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date)

	start, end, isHoliday := timekeeping.AdjustForHoliday(
		date, at(date, 9, 30), at(date, 16, 0), holidays, timekeeping.DefaultWorkday)

	assert.True(t, isHoliday)
	assert.Equal(t, at(date, 9, 30), start)
	assert.Equal(t, at(date, 16, 0), end)
}

func TestAdjustForHoliday_NonHolidayUntouched(t *testing.T) {
	date := time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date.AddDate(0, 0, -1))

	start, end, isHoliday := timekeeping.AdjustForHoliday(
		date, at(date, 6, 0), at(date, 20, 0), holidays, timekeeping.DefaultWorkday)

	assert.False(t, isHoliday)
	assert.Equal(t, at(date, 6, 0), start)
	assert.Equal(t, at(date, 20, 0), end)
}

func TestAdjustForHoliday_AfterWindowCollapsesToZero(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date)

	start, end, isHoliday := timekeeping.AdjustForHoliday(
		date, at(date, 18, 0), at(date, 20, 0), holidays, timekeeping.DefaultWorkday)

	assert.True(t, isHoliday)
	assert.Equal(t, start, end)
	assert.True(t, timekeeping.PeriodHours(start, end).IsZero())
}

func TestAdjustForHoliday_BeforeWindowCollapsesToZero(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date)

	start, end, isHoliday := timekeeping.AdjustForHoliday(
		date, at(date, 6, 0), at(date, 7, 0), holidays, timekeeping.DefaultWorkday)

	assert.True(t, isHoliday)
	assert.Equal(t, at(date, 8, 0), start)
	assert.Equal(t, start, end)
}

func TestAdjustForHoliday_Idempotent(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	holidays := holidayOn(date)

	start, end, _ := timekeeping.AdjustForHoliday(
		date, at(date, 6, 0), at(date, 20, 0), holidays, timekeeping.DefaultWorkday)
	again, againEnd, _ := timekeeping.AdjustForHoliday(
		date, start, end, holidays, timekeeping.DefaultWorkday)

	assert.Equal(t, start, again)
	assert.Equal(t, end, againEnd)
}

func TestPeriodHours_KeepsFractions(t *testing.T) {
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)

	total := timekeeping.PeriodHours(at(date, 8, 0), at(date, 12, 30))
	assert.Equal(t, "4.5", total.String())

	total = timekeeping.PeriodHours(at(date, 10, 0), at(date, 10, 20))
	assert.Equal(t, "0.3333333333333333", total.String())

	total = timekeeping.PeriodHours(at(date, 10, 0), at(date, 10, 0))
	assert.True(t, total.IsZero())
}
