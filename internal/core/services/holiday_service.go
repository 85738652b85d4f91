package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
)

const holidayDateLayout = "2006-01-02"

// holidayService implements the HolidaySvcFacade interface
type holidayService struct {
	BaseService
	holidayRepo portsrepo.HolidayRepositoryFacade
}

// NewHolidayService creates a new holiday service with the provided dependencies
func NewHolidayService(holidayRepo portsrepo.HolidayRepositoryFacade) portssvc.HolidaySvcFacade {
	return &holidayService{holidayRepo: holidayRepo}
}

var _ portssvc.HolidaySvcFacade = (*holidayService)(nil)

// CreateHolidays declares holiday dates for a year. Date uniqueness is
// enforced by the store, so two concurrent declarations of the same date
// cannot both succeed.
func (s *holidayService) CreateHolidays(ctx context.Context, perms domain.PermissionSet, req dto.CreateHolidayRequest) error {
	if err := s.RequirePermission(ctx, perms, domain.PermPostHoliday); err != nil {
		return err
	}

	holidays, err := parseHolidayDays(req.Year, req.Days)
	if err != nil {
		return err
	}

	if err := s.holidayRepo.SaveHolidays(ctx, holidays); err != nil {
		s.LogError(ctx, err, "Failed to save holidays", slog.Int("year", req.Year))
		return err
	}
	s.LogInfo(ctx, "Holidays created", slog.Int("year", req.Year), slog.Int("count", len(holidays)))
	return nil
}

// ReplaceYear deletes the year's calendar and recreates it from the given days.
func (s *holidayService) ReplaceYear(ctx context.Context, perms domain.PermissionSet, year int, days []string) error {
	if err := s.RequirePermission(ctx, perms, domain.PermPutHoliday); err != nil {
		return err
	}

	holidays, err := parseHolidayDays(year, days)
	if err != nil {
		return err
	}

	if err := s.holidayRepo.DeleteHolidaysByYear(ctx, year); err != nil {
		s.LogError(ctx, err, "Failed to clear holiday year", slog.Int("year", year))
		return err
	}
	if len(holidays) == 0 {
		return nil
	}
	if err := s.holidayRepo.SaveHolidays(ctx, holidays); err != nil {
		s.LogError(ctx, err, "Failed to recreate holiday year", slog.Int("year", year))
		return err
	}
	return nil
}

// ListHolidays returns all calendars grouped by year.
func (s *holidayService) ListHolidays(ctx context.Context, perms domain.PermissionSet) ([]dto.HolidayYearResponse, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermGetHoliday); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.FindHolidays(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holidays")
		return nil, err
	}
	return dto.ToHolidayYearResponses(holidays), nil
}

func parseHolidayDays(year int, days []string) ([]domain.Holiday, error) {
	holidays := make([]domain.Holiday, 0, len(days))
	for _, day := range days {
		date, err := time.ParseInLocation(holidayDateLayout, day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", day, err)
		}
		holidays = append(holidays, domain.Holiday{
			HolidayID: uuid.NewString(),
			Year:      year,
			Date:      date,
		})
	}
	return holidays, nil
}
