package services

import (
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/platform/config"
	"github.com/pontualize/timesheet_app/internal/utils/timekeeping"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	workday := timekeeping.WorkdayWindow{
		StartHour: cfg.WorkdayStartHour,
		EndHour:   cfg.WorkdayEndHour,
	}

	container.User = NewUserService(repos.UserRepo, repos.GroupRepo, repos.BankHourRepo)
	container.Group = NewGroupService(repos.GroupRepo, repos.UserRepo)
	container.Holiday = NewHolidayService(repos.HolidayRepo)
	container.Timesheet = NewTimesheetService(repos.ReleaseRepo, repos.HolidayRepo, repos.PaymentRepo, workday)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ReleaseRepo, repos.UserRepo, repos.BankHourRepo)
	container.BankHour = NewBankHourService(repos.BankHourRepo, repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User, repos.UserRepo)

	return container
}
