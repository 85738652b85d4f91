package domain

import "time"

// Holiday declares one calendar date as a non-working day. Dates are
// unique across all holiday records.
type Holiday struct {
	HolidayID string    `json:"holidayID"`
	Year      int       `json:"year"`
	Date      time.Time `json:"date"`
}

// HolidaySet answers day-granularity membership queries over a set of
// declared holidays. Keys are normalized to yyyy-mm-dd in UTC.
type HolidaySet map[string]struct{}

const holidayKeyLayout = "2006-01-02"

// NewHolidaySet indexes holidays by calendar date.
func NewHolidaySet(holidays []Holiday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[h.Date.UTC().Format(holidayKeyLayout)] = struct{}{}
	}
	return set
}

// Contains reports whether the given date's calendar day is a holiday.
// The comparison is on (year, month, day) only.
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[date.UTC().Format(holidayKeyLayout)]
	return ok
}
