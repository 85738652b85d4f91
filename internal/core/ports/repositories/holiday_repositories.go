package repositories

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// HolidayReader defines read operations for holiday calendars.
type HolidayReader interface {
	// FindHolidays retrieves every declared holiday.
	FindHolidays(ctx context.Context) ([]domain.Holiday, error)

	// FindHolidaysByYear retrieves the holidays declared for one year.
	FindHolidaysByYear(ctx context.Context, year int) ([]domain.Holiday, error)
}

// HolidayWriter defines write operations for holiday calendars.
type HolidayWriter interface {
	// SaveHolidays persists a batch of holidays. A date clash with an
	// existing record fails the whole batch with apperrors.ErrDuplicate.
	SaveHolidays(ctx context.Context, holidays []domain.Holiday) error

	// DeleteHolidaysByYear removes every holiday of one year.
	DeleteHolidaysByYear(ctx context.Context, year int) error
}

// HolidayRepositoryFacade combines all holiday-related repository interfaces
type HolidayRepositoryFacade interface {
	HolidayReader
	HolidayWriter
}
