package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/core/services"
	"github.com/pontualize/timesheet_app/internal/dto"
)

type HolidayServiceTestSuite struct {
	suite.Suite
	mockHolidayRepo *MockHolidayRepository
	service         portssvc.HolidaySvcFacade
}

func (suite *HolidayServiceTestSuite) SetupTest() {
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.service = services.NewHolidayService(suite.mockHolidayRepo)
}

func (suite *HolidayServiceTestSuite) TestCreateHolidays_Success() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("SaveHolidays", ctx, mock.MatchedBy(func(holidays []domain.Holiday) bool {
		if len(holidays) != 2 {
			return false
		}
		first := holidays[0]
		return first.Year == 2026 &&
			first.Date.Equal(time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)) &&
			first.HolidayID != ""
	})).Return(nil).Once()

	err := suite.service.CreateHolidays(ctx, adminPerms(), dto.CreateHolidayRequest{
		Year: 2026,
		Days: []string{"2026-04-21", "2026-05-01"},
	})

	suite.Require().NoError(err)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestCreateHolidays_DuplicateDate() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("SaveHolidays", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	err := suite.service.CreateHolidays(ctx, adminPerms(), dto.CreateHolidayRequest{
		Year: 2026,
		Days: []string{"2026-04-21"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *HolidayServiceTestSuite) TestCreateHolidays_DeniedWithoutPermission() {
	ctx := context.Background()

	perms := domain.NewPermissionSet([]string{string(domain.PermGetHoliday)})
	err := suite.service.CreateHolidays(ctx, perms, dto.CreateHolidayRequest{
		Year: 2026,
		Days: []string{"2026-04-21"},
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "SaveHolidays", mock.Anything, mock.Anything)
}

func (suite *HolidayServiceTestSuite) TestReplaceYear_DeletesThenRecreates() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("DeleteHolidaysByYear", ctx, 2026).Return(nil).Once()
	suite.mockHolidayRepo.On("SaveHolidays", ctx, mock.MatchedBy(func(holidays []domain.Holiday) bool {
		return len(holidays) == 1 && holidays[0].Year == 2026
	})).Return(nil).Once()

	err := suite.service.ReplaceYear(ctx, adminPerms(), 2026, []string{"2026-12-25"})

	suite.Require().NoError(err)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestReplaceYear_EmptyListClearsYear() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("DeleteHolidaysByYear", ctx, 2026).Return(nil).Once()

	err := suite.service.ReplaceYear(ctx, adminPerms(), 2026, nil)

	suite.Require().NoError(err)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "SaveHolidays", mock.Anything, mock.Anything)
}

func (suite *HolidayServiceTestSuite) TestListHolidays_GroupsByYear() {
	ctx := context.Background()

	holidays := []domain.Holiday{
		{HolidayID: uuid.NewString(), Year: 2026, Date: time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)},
		{HolidayID: uuid.NewString(), Year: 2025, Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{HolidayID: uuid.NewString(), Year: 2026, Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockHolidayRepo.On("FindHolidays", ctx).Return(holidays, nil).Once()

	out, err := suite.service.ListHolidays(ctx, adminPerms())

	suite.Require().NoError(err)
	suite.Require().Len(out, 2)
	suite.Equal(2025, out[0].Year)
	suite.Equal([]string{"25/12/2025"}, out[0].Days)
	suite.Equal(2026, out[1].Year)
	suite.Equal([]string{"21/04/2026", "01/05/2026"}, out[1].Days)
}

func TestHolidayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayServiceTestSuite))
}
