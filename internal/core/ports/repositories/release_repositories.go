package repositories

import (
	"context"
	"time"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// ReleaseReader defines read operations for timesheet entries.
type ReleaseReader interface {
	// FindReleasesByUserAndDate retrieves a user's stored periods for one
	// calendar date.
	FindReleasesByUserAndDate(ctx context.Context, userID string, date time.Time) ([]domain.Release, error)

	// FindReleasesByUserAndMonth retrieves a user's stored periods whose
	// date falls in (year, month).
	FindReleasesByUserAndMonth(ctx context.Context, userID string, year, month int) ([]domain.Release, error)
}

// ReleaseWriter defines write operations for timesheet entries.
type ReleaseWriter interface {
	// SaveRelease persists a new timesheet entry.
	SaveRelease(ctx context.Context, release domain.Release) error

	// UpdateRelease overwrites an existing entry in place.
	UpdateRelease(ctx context.Context, release domain.Release) error
}

// ReleaseRepositoryFacade combines all release-related repository interfaces
type ReleaseRepositoryFacade interface {
	ReleaseReader
	ReleaseWriter
}
