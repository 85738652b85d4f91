package dto

import (
	"sort"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/utils"
)

// CreateHolidayRequest declares holiday dates for one year. Days are
// calendar dates in yyyy-mm-dd form.
type CreateHolidayRequest struct {
	Year int      `json:"year" binding:"required"`
	Days []string `json:"days" binding:"required,min=1,dive,datetime=2006-01-02"`
}

// ReplaceHolidaysRequest replaces the full holiday calendar of the year
// given in the path.
type ReplaceHolidaysRequest struct {
	Days []string `json:"days" binding:"required,dive,datetime=2006-01-02"`
}

// HolidayYearResponse is one year's holiday calendar, dates in dd/mm/yyyy form.
type HolidayYearResponse struct {
	Year int      `json:"year"`
	Days []string `json:"days"`
}

// ToHolidayYearResponses groups holidays by year, formatting each date in
// the external dd/mm/yyyy form.
func ToHolidayYearResponses(holidays []domain.Holiday) []HolidayYearResponse {
	byYear := make(map[int][]string)
	for _, h := range holidays {
		byYear[h.Year] = append(byYear[h.Year], utils.DateToStrBR(h.Date))
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]HolidayYearResponse, 0, len(years))
	for _, year := range years {
		out = append(out, HolidayYearResponse{Year: year, Days: byYear[year]})
	}
	return out
}
