package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SaveRecoverPassword(ctx context.Context, recover domain.RecoverPassword) error {
	args := m.Called(ctx, recover)
	return args.Error(0)
}

func (m *MockUserRepository) FindRecoverPasswordByID(ctx context.Context, id string) (*domain.RecoverPassword, error) {
	args := m.Called(ctx, id)
	var recover *domain.RecoverPassword
	if args.Get(0) != nil {
		recover = args.Get(0).(*domain.RecoverPassword)
	}
	return recover, args.Error(1)
}

func (m *MockUserRepository) DeleteRecoverPassword(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock GroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	var group *domain.Group
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.Group)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) FindGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	var groups []domain.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.Group)
	}
	return groups, args.Error(1)
}

func (m *MockGroupRepository) FindResourceNamesByGroupID(ctx context.Context, groupID string) ([]string, error) {
	args := m.Called(ctx, groupID)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

// --- Mock HolidayRepository ---

type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) FindHolidays(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	var holidays []domain.Holiday
	if args.Get(0) != nil {
		holidays = args.Get(0).([]domain.Holiday)
	}
	return holidays, args.Error(1)
}

func (m *MockHolidayRepository) FindHolidaysByYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	args := m.Called(ctx, year)
	var holidays []domain.Holiday
	if args.Get(0) != nil {
		holidays = args.Get(0).([]domain.Holiday)
	}
	return holidays, args.Error(1)
}

func (m *MockHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday) error {
	args := m.Called(ctx, holidays)
	return args.Error(0)
}

func (m *MockHolidayRepository) DeleteHolidaysByYear(ctx context.Context, year int) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

// --- Mock ReleaseRepository ---

type MockReleaseRepository struct {
	mock.Mock
}

func (m *MockReleaseRepository) FindReleasesByUserAndDate(ctx context.Context, userID string, date time.Time) ([]domain.Release, error) {
	args := m.Called(ctx, userID, date)
	var releases []domain.Release
	if args.Get(0) != nil {
		releases = args.Get(0).([]domain.Release)
	}
	return releases, args.Error(1)
}

func (m *MockReleaseRepository) FindReleasesByUserAndMonth(ctx context.Context, userID string, year, month int) ([]domain.Release, error) {
	args := m.Called(ctx, userID, year, month)
	var releases []domain.Release
	if args.Get(0) != nil {
		releases = args.Get(0).([]domain.Release)
	}
	return releases, args.Error(1)
}

func (m *MockReleaseRepository) SaveRelease(ctx context.Context, release domain.Release) error {
	args := m.Called(ctx, release)
	return args.Error(0)
}

func (m *MockReleaseRepository) UpdateRelease(ctx context.Context, release domain.Release) error {
	args := m.Called(ctx, release)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.Payment, error) {
	args := m.Called(ctx, userID, year, month)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock BankHourRepository ---

type MockBankHourRepository struct {
	mock.Mock
}

func (m *MockBankHourRepository) FindBankHourByUserID(ctx context.Context, userID string) (*domain.BankHour, error) {
	args := m.Called(ctx, userID)
	var bankHour *domain.BankHour
	if args.Get(0) != nil {
		bankHour = args.Get(0).(*domain.BankHour)
	}
	return bankHour, args.Error(1)
}

func (m *MockBankHourRepository) SaveBankHour(ctx context.Context, bankHour domain.BankHour) error {
	args := m.Called(ctx, bankHour)
	return args.Error(0)
}

func (m *MockBankHourRepository) UpdateBankHour(ctx context.Context, bankHour domain.BankHour) error {
	args := m.Called(ctx, bankHour)
	return args.Error(0)
}

// adminPerms grants every capability, matching the administrator group seed.
func adminPerms() domain.PermissionSet {
	return domain.NewPermissionSet([]string{
		string(domain.PermPostHoliday),
		string(domain.PermPutHoliday),
		string(domain.PermGetHoliday),
		string(domain.PermPostTimesheet),
		string(domain.PermGetTimesheet),
		string(domain.PermPatchUser),
		string(domain.PermPutPassword),
		string(domain.PermGetUser),
		string(domain.PermGetGroup),
	})
}
