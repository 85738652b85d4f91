package dto

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// PeriodInput is one submitted work period of a day. Times are wall-clock
// HH:MM strings; ID is set when updating an existing stored entry.
type PeriodInput struct {
	ID          string `json:"id" binding:"omitempty,uuid"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	Description string `json:"description"`
}

// SubmitTimesheetRequest is the body of a day submission.
type SubmitTimesheetRequest struct {
	Period []PeriodInput `json:"period" binding:"required,min=1"`
}

// PeriodView is one stored period in a monthly report.
type PeriodView struct {
	ID          string `json:"id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// DayReport groups one date's periods in a monthly report.
type DayReport struct {
	Date        string          `json:"date"`
	BusinessDay bool            `json:"businessDay"`
	Period      []PeriodView    `json:"period"`
	Total       decimal.Decimal `json:"total"`
}

// TimesheetReportResponse is the monthly view of a user's timesheet,
// including the payment snapshot when the month is closed.
type TimesheetReportResponse struct {
	Closed  bool            `json:"closed"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Total   decimal.Decimal `json:"total"`
	Balance decimal.Decimal `json:"balance"`
	Days    []DayReport     `json:"days"`
}

const reportDateLayout = "2006-01-02"
const reportHourLayout = "15:04"

// ToTimesheetReportResponse groups a month's releases by date and overlays
// the payment snapshot when one exists.
func ToTimesheetReportResponse(year, month int, releases []domain.Release, payment *domain.Payment) TimesheetReportResponse {
	byDate := make(map[string][]domain.Release)
	for _, r := range releases {
		key := r.Date.UTC().Format(reportDateLayout)
		byDate[key] = append(byDate[key], r)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]DayReport, 0, len(dates))
	monthTotal := decimal.Zero
	for _, date := range dates {
		dayReleases := byDate[date]
		sort.Slice(dayReleases, func(a, b int) bool {
			return dayReleases[a].StartHour.Before(dayReleases[b].StartHour)
		})

		periods := make([]PeriodView, 0, len(dayReleases))
		dayTotal := decimal.Zero
		holiday := false
		for _, r := range dayReleases {
			periods = append(periods, PeriodView{
				ID:          r.ReleaseID,
				Start:       r.StartHour.Format(reportHourLayout),
				End:         r.EndHour.Format(reportHourLayout),
				Description: r.Description,
			})
			dayTotal = dayTotal.Add(r.Total)
			holiday = holiday || r.Holiday
		}
		monthTotal = monthTotal.Add(dayTotal)
		days = append(days, DayReport{
			Date:        date,
			BusinessDay: !holiday,
			Period:      periods,
			Total:       dayTotal,
		})
	}

	resp := TimesheetReportResponse{
		Month: month,
		Year:  year,
		Total: monthTotal,
		Days:  days,
	}
	if payment != nil {
		resp.Closed = true
		resp.Total = payment.TotalHours
		resp.Balance = payment.TotalValue
	}
	return resp
}

// ClosureCalendar identifies the closed period.
type ClosureCalendar struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ClosurePay is the monetary part of a closure receipt.
type ClosurePay struct {
	Date  time.Time       `json:"date"`
	Hour  decimal.Decimal `json:"hour"`
	Total decimal.Decimal `json:"total"`
}

// ClosureReceiptResponse is the read-only projection returned by a
// successful month closure.
type ClosureReceiptResponse struct {
	Name      string          `json:"name"`
	Team      string          `json:"team"`
	BankHours bool            `json:"bankHours"`
	Calendar  ClosureCalendar `json:"calendar"`
	Pay       ClosurePay      `json:"pay"`
}
