package services

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/dto"
)

// HolidaySvcFacade manages the holiday calendar.
type HolidaySvcFacade interface {
	// CreateHolidays declares holiday dates for a year. Gated by
	// POST_HOLIDAY; a date already declared fails with apperrors.ErrDuplicate.
	CreateHolidays(ctx context.Context, perms domain.PermissionSet, req dto.CreateHolidayRequest) error

	// ReplaceYear replaces a year's full calendar. Gated by PUT_HOLIDAY.
	ReplaceYear(ctx context.Context, perms domain.PermissionSet, year int, days []string) error

	// ListHolidays returns all calendars grouped by year. Gated by GET_HOLIDAY.
	ListHolidays(ctx context.Context, perms domain.PermissionSet) ([]dto.HolidayYearResponse, error)
}
