package utils

import "time"

// DateToStrBR formats a date in the dd/mm/yyyy form used by the API when
// listing holiday calendars.
func DateToStrBR(date time.Time) string {
	return date.Format("02/01/2006")
}
