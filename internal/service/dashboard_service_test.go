package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockStatsRepo    *mocks.MockStatsRepository
	dashboardService *DashboardService
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockStatsRepo = mocks.NewMockStatsRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StatsRepoName)).
		Return(s.mockStatsRepo, nil).AnyTimes()

	dashboardService, servErr := NewDashboardService(s.mockUOW)
	s.Require().NoError(servErr)
	s.dashboardService = dashboardService
}

func (s *DashboardServiceTestSuite) TestAggregate() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	filtered := repoargs.DateRange{Start: &start, End: &end}

	breakdown := []repoargs.StatusStat{
		{Status: domain.OrderStatusPending, Count: 2, TotalAmount: decimal.NewFromInt(26000)},
		{Status: domain.OrderStatusDone, Count: 3, TotalAmount: decimal.NewFromInt(91000)},
	}
	daily := []repoargs.DailyStat{
		{Date: start, OrderCount: 5, TotalIncome: decimal.NewFromInt(91000), TotalProducts: 9},
	}

	// buyers are counted over the whole base even when a range is set
	s.mockStatsRepo.EXPECT().TotalBuyers(gomock.Any()).Return(int64(12), nil)
	s.mockStatsRepo.EXPECT().
		OrderTotals(gomock.Any(), gomock.Eq(filtered)).
		Return(&repoargs.OrderTotals{
			TotalOrders:   5,
			TotalIncome:   decimal.NewFromInt(91000),
			TotalProducts: 9,
		}, nil)
	s.mockStatsRepo.EXPECT().StatusBreakdown(gomock.Any(), gomock.Eq(filtered)).Return(breakdown, nil)
	s.mockStatsRepo.EXPECT().DailyBreakdown(gomock.Any(), gomock.Eq(filtered)).Return(daily, nil)

	stats, err := s.dashboardService.Aggregate(s.T().Context(), filtered)
	s.Require().NoError(err)

	s.Equal(int64(12), stats.TotalBuyers)
	s.Equal(int64(5), stats.TotalOrders)
	s.Equal(int64(9), stats.TotalProducts)
	s.True(decimal.NewFromInt(91000).Equal(stats.TotalIncome))

	// missing statuses stay zero
	s.Equal(int64(2), stats.StatusCounts.Pending)
	s.Equal(int64(0), stats.StatusCounts.OnProcess)
	s.Equal(int64(3), stats.StatusCounts.Done)

	s.Equal(breakdown, stats.StatusBreakdown)
	s.Equal(daily, stats.DailyBreakdown)
}

func (s *DashboardServiceTestSuite) TestRecentDaily() {
	s.mockStatsRepo.EXPECT().
		DailyBreakdown(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r repoargs.DateRange) ([]repoargs.DailyStat, error) {
			s.Require().NotNil(r.Start)
			s.Require().NotNil(r.End)
			s.Equal(30, int(r.End.Sub(*r.Start).Hours()/24))
			return nil, nil
		})

	_, err := s.dashboardService.RecentDaily(s.T().Context(), 30)
	s.Require().NoError(err)
}
