package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/utils/timekeeping"
	"github.com/pontualize/timesheet_app/internal/utils/timeofday"
)

// timesheetService implements the TimesheetSvcFacade interface
type timesheetService struct {
	BaseService
	releaseRepo portsrepo.ReleaseRepositoryFacade
	holidayRepo portsrepo.HolidayReader
	paymentRepo portsrepo.PaymentReader
	workday     timekeeping.WorkdayWindow
}

// NewTimesheetService creates a new timesheet service with the provided dependencies
func NewTimesheetService(
	releaseRepo portsrepo.ReleaseRepositoryFacade,
	holidayRepo portsrepo.HolidayReader,
	paymentRepo portsrepo.PaymentReader,
	workday timekeeping.WorkdayWindow,
) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		releaseRepo: releaseRepo,
		holidayRepo: holidayRepo,
		paymentRepo: paymentRepo,
		workday:     workday,
	}
}

var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// SubmitDay reconciles one day's submitted periods against the stored
// entries for (user, date). Validation runs to completion before the
// first write, so a rejected submission leaves no partial state.
func (s *timesheetService) SubmitDay(ctx context.Context, perms domain.PermissionSet, userID string, year, month, day int, periods []dto.PeriodInput) error {
	if err := s.RequirePermission(ctx, perms, domain.PermPostTimesheet); err != nil {
		return err
	}

	date, err := calendarDate(year, month, day)
	if err != nil {
		return err
	}

	toValidate := make([]timekeeping.Period, len(periods))
	for i, p := range periods {
		toValidate[i] = timekeeping.Period{
			ReleaseID:   p.ID,
			Start:       p.Start,
			End:         p.End,
			Description: p.Description,
		}
	}
	if err := timekeeping.ValidatePeriods(toValidate); err != nil {
		return err
	}

	closed, err := s.isMonthClosed(ctx, userID, year, month)
	if err != nil {
		return err
	}
	if closed {
		return apperrors.ErrMonthClosed
	}

	holidays, err := s.holidaySet(ctx, year)
	if err != nil {
		return err
	}

	existing, err := s.releaseRepo.FindReleasesByUserAndDate(ctx, userID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load stored periods", slog.String("user_id", userID))
		return err
	}
	existingByID := make(map[string]domain.Release, len(existing))
	for _, r := range existing {
		existingByID[r.ReleaseID] = r
	}

	now := time.Now()
	for _, p := range periods {
		start := onDate(date, p.Start)
		end := onDate(date, p.End)
		start, end, isHoliday := timekeeping.AdjustForHoliday(date, start, end, holidays, s.workday)

		release := domain.Release{
			UserID:      userID,
			Date:        date,
			StartHour:   start,
			EndHour:     end,
			Description: p.Description,
			Total:       timekeeping.PeriodHours(start, end),
			Holiday:     isHoliday,
		}

		if stored, ok := existingByID[p.ID]; ok {
			release.ReleaseID = stored.ReleaseID
			release.CreatedAt = stored.CreatedAt
			release.LastUpdatedAt = now
			if err := s.releaseRepo.UpdateRelease(ctx, release); err != nil {
				s.LogError(ctx, err, "Failed to update period", slog.String("release_id", release.ReleaseID))
				return err
			}
			continue
		}

		release.ReleaseID = uuid.NewString()
		release.CreatedAt = now
		release.LastUpdatedAt = now
		if err := s.releaseRepo.SaveRelease(ctx, release); err != nil {
			s.LogError(ctx, err, "Failed to save period", slog.String("release_id", release.ReleaseID))
			return err
		}
	}

	s.LogInfo(ctx, "Timesheet day submitted",
		slog.String("user_id", userID),
		slog.String("date", date.Format(holidayDateLayout)),
		slog.Int("periods", len(periods)))
	return nil
}

// GetMonthlyReport returns the caller's own monthly view.
func (s *timesheetService) GetMonthlyReport(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.TimesheetReportResponse, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermGetTimesheet); err != nil {
		return nil, err
	}
	return s.monthlyReport(ctx, userID, year, month)
}

// GetUserReport returns any user's monthly view for administrators.
func (s *timesheetService) GetUserReport(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.TimesheetReportResponse, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermGetUser); err != nil {
		return nil, err
	}
	return s.monthlyReport(ctx, userID, year, month)
}

func (s *timesheetService) monthlyReport(ctx context.Context, userID string, year, month int) (*dto.TimesheetReportResponse, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range: %w", month, apperrors.ErrValidation)
	}

	releases, err := s.releaseRepo.FindReleasesByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to load month periods", slog.String("user_id", userID))
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByUserAndMonth(ctx, userID, year, month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load payment", slog.String("user_id", userID))
		return nil, err
	}

	report := dto.ToTimesheetReportResponse(year, month, releases, payment)
	return &report, nil
}

// isMonthClosed implements the closure policy: a month is closed iff a
// payment snapshot exists for (user, year, month).
func (s *timesheetService) isMonthClosed(ctx context.Context, userID string, year, month int) (bool, error) {
	_, err := s.paymentRepo.FindPaymentByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to check month closure", slog.String("user_id", userID))
		return false, err
	}
	return true, nil
}

func (s *timesheetService) holidaySet(ctx context.Context, year int) (domain.HolidaySet, error) {
	holidays, err := s.holidayRepo.FindHolidaysByYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to load holiday calendar", slog.Int("year", year))
		return nil, err
	}
	return domain.NewHolidaySet(holidays), nil
}

// calendarDate validates (year, month, day) and returns the UTC midnight
// of that calendar day.
func calendarDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range: %w", month, apperrors.ErrValidation)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("day %d does not exist in %04d-%02d: %w", day, year, month, apperrors.ErrValidation)
	}
	return date, nil
}

// onDate places a validated HH:MM string on the given calendar day.
func onDate(date time.Time, hhmm string) time.Time {
	hour, minute, _ := timeofday.Parse(hhmm)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
