package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/core/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/utils/timekeeping"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	mockReleaseRepo *MockReleaseRepository
	mockHolidayRepo *MockHolidayRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.TimesheetSvcFacade
	userID          string
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.mockReleaseRepo = new(MockReleaseRepository)
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewTimesheetService(
		suite.mockReleaseRepo,
		suite.mockHolidayRepo,
		suite.mockPaymentRepo,
		timekeeping.DefaultWorkday,
	)
	suite.userID = uuid.NewString()
}

func (suite *TimesheetServiceTestSuite) expectOpenMonth(year, month int) {
	suite.mockPaymentRepo.On("FindPaymentByUserAndMonth", mock.Anything, suite.userID, year, month).
		Return(nil, apperrors.ErrNotFound).Once()
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_SavesNewPeriods() {
	ctx := context.Background()
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	suite.expectOpenMonth(2026, 4)
	suite.mockHolidayRepo.On("FindHolidaysByYear", ctx, 2026).Return([]domain.Holiday{}, nil).Once()
	suite.mockReleaseRepo.On("FindReleasesByUserAndDate", ctx, suite.userID, date).
		Return([]domain.Release{}, nil).Once()

	suite.mockReleaseRepo.On("SaveRelease", ctx, mock.MatchedBy(func(r domain.Release) bool {
		return r.UserID == suite.userID &&
			r.Date.Equal(date) &&
			r.StartHour.Hour() == 8 &&
			r.EndHour.Hour() == 12 &&
			r.Total.Equal(decimal.NewFromInt(4)) &&
			!r.Holiday &&
			r.ReleaseID != ""
	})).Return(nil).Once()
	suite.mockReleaseRepo.On("SaveRelease", ctx, mock.MatchedBy(func(r domain.Release) bool {
		return r.StartHour.Hour() == 13 && r.EndHour.Hour() == 17
	})).Return(nil).Once()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 4, 10, []dto.PeriodInput{
		{Start: "08:00", End: "12:00", Description: "morning"},
		{Start: "13:00", End: "17:00", Description: "afternoon"},
	})

	suite.Require().NoError(err)
	suite.mockReleaseRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_UpdatesExistingPeriod() {
	ctx := context.Background()
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	releaseID := uuid.NewString()
	createdAt := time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC)

	stored := domain.Release{
		ReleaseID: releaseID,
		UserID:    suite.userID,
		Date:      date,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: createdAt,
		},
	}

	suite.expectOpenMonth(2026, 4)
	suite.mockHolidayRepo.On("FindHolidaysByYear", ctx, 2026).Return([]domain.Holiday{}, nil).Once()
	suite.mockReleaseRepo.On("FindReleasesByUserAndDate", ctx, suite.userID, date).
		Return([]domain.Release{stored}, nil).Once()

	suite.mockReleaseRepo.On("UpdateRelease", ctx, mock.MatchedBy(func(r domain.Release) bool {
		return r.ReleaseID == releaseID &&
			r.CreatedAt.Equal(createdAt) &&
			r.StartHour.Hour() == 9 &&
			r.Total.Equal(decimal.NewFromFloat(2.5))
	})).Return(nil).Once()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 4, 10, []dto.PeriodInput{
		{ID: releaseID, Start: "09:00", End: "11:30", Description: "revised"},
	})

	suite.Require().NoError(err)
	suite.mockReleaseRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_ClampsHolidayPeriod() {
	ctx := context.Background()
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)

	suite.expectOpenMonth(2026, 4)
	suite.mockHolidayRepo.On("FindHolidaysByYear", ctx, 2026).
		Return([]domain.Holiday{{HolidayID: uuid.NewString(), Year: 2026, Date: date}}, nil).Once()
	suite.mockReleaseRepo.On("FindReleasesByUserAndDate", ctx, suite.userID, date).
		Return([]domain.Release{}, nil).Once()

	suite.mockReleaseRepo.On("SaveRelease", ctx, mock.MatchedBy(func(r domain.Release) bool {
		return r.Holiday &&
			r.StartHour.Hour() == 8 &&
			r.EndHour.Hour() == 17 &&
			r.Total.Equal(decimal.NewFromInt(9))
	})).Return(nil).Once()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 4, 21, []dto.PeriodInput{
		{Start: "06:00", End: "20:00", Description: "holiday shift"},
	})

	suite.Require().NoError(err)
	suite.mockReleaseRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_RejectsClosedMonth() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("FindPaymentByUserAndMonth", mock.Anything, suite.userID, 2026, 4).
		Return(&domain.Payment{PaymentID: uuid.NewString()}, nil).Once()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 4, 10, []dto.PeriodInput{
		{Start: "08:00", End: "12:00"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrMonthClosed)
	suite.mockReleaseRepo.AssertNotCalled(suite.T(), "SaveRelease", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_RejectsOverlappingWholesale() {
	ctx := context.Background()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 4, 10, []dto.PeriodInput{
		{Start: "08:00", End: "12:30"},
		{Start: "12:00", End: "17:00"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockReleaseRepo.AssertNotCalled(suite.T(), "SaveRelease", mock.Anything, mock.Anything)
	suite.mockReleaseRepo.AssertNotCalled(suite.T(), "UpdateRelease", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_RejectsNonexistentDay() {
	ctx := context.Background()

	err := suite.service.SubmitDay(ctx, adminPerms(), suite.userID, 2026, 2, 30, []dto.PeriodInput{
		{Start: "08:00", End: "12:00"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestSubmitDay_DeniedWithoutPermission() {
	ctx := context.Background()

	err := suite.service.SubmitDay(ctx, domain.PermissionSet{}, suite.userID, 2026, 4, 10, []dto.PeriodInput{
		{Start: "08:00", End: "12:00"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimesheetServiceTestSuite) TestGetMonthlyReport_OpenMonth() {
	ctx := context.Background()
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	releases := []domain.Release{
		{
			ReleaseID: uuid.NewString(),
			UserID:    suite.userID,
			Date:      date,
			StartHour: time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC),
			EndHour:   time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC),
			Total:     decimal.NewFromInt(4),
		},
		{
			ReleaseID: uuid.NewString(),
			UserID:    suite.userID,
			Date:      date,
			StartHour: time.Date(2026, 4, 10, 13, 0, 0, 0, time.UTC),
			EndHour:   time.Date(2026, 4, 10, 17, 30, 0, 0, time.UTC),
			Total:     decimal.NewFromFloat(4.5),
		},
	}

	suite.mockReleaseRepo.On("FindReleasesByUserAndMonth", ctx, suite.userID, 2026, 4).
		Return(releases, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByUserAndMonth", ctx, suite.userID, 2026, 4).
		Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.GetMonthlyReport(ctx, adminPerms(), suite.userID, 2026, 4)

	suite.Require().NoError(err)
	suite.False(report.Closed)
	suite.Len(report.Days, 1)
	suite.Equal("2026-04-10", report.Days[0].Date)
	suite.Len(report.Days[0].Period, 2)
	suite.Equal("08:00", report.Days[0].Period[0].Start)
	suite.True(report.Total.Equal(decimal.NewFromFloat(8.5)))
}

func (suite *TimesheetServiceTestSuite) TestGetMonthlyReport_ClosedMonthOverlaysPayment() {
	ctx := context.Background()

	payment := &domain.Payment{
		PaymentID:  uuid.NewString(),
		UserID:     suite.userID,
		Year:       2026,
		Month:      3,
		TotalHours: decimal.NewFromInt(160),
		TotalValue: decimal.NewFromInt(8000),
	}

	suite.mockReleaseRepo.On("FindReleasesByUserAndMonth", ctx, suite.userID, 2026, 3).
		Return([]domain.Release{}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByUserAndMonth", ctx, suite.userID, 2026, 3).
		Return(payment, nil).Once()

	report, err := suite.service.GetMonthlyReport(ctx, adminPerms(), suite.userID, 2026, 3)

	suite.Require().NoError(err)
	suite.True(report.Closed)
	suite.True(report.Total.Equal(decimal.NewFromInt(160)))
	suite.True(report.Balance.Equal(decimal.NewFromInt(8000)))
}

func (suite *TimesheetServiceTestSuite) TestGetUserReport_RequiresGetUser() {
	ctx := context.Background()

	perms := domain.NewPermissionSet([]string{string(domain.PermGetTimesheet)})
	_, err := suite.service.GetUserReport(ctx, perms, suite.userID, 2026, 4)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
