package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		GroupRepo:    newPgxGroupRepository(dbPool),
		HolidayRepo:  newPgxHolidayRepository(dbPool),
		ReleaseRepo:  newPgxReleaseRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		BankHourRepo: newPgxBankHourRepository(dbPool),
	}
}
