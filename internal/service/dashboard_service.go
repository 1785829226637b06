package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

// DashboardService composes the read-only rollups. Two calls with the same
// range over the same data return the same stats; nothing here writes.
type DashboardService struct {
	uow       uow.UOW
	statsRepo StatsRepository
}

func NewDashboardService(u uow.UOW) (*DashboardService, error) {
	statsRepo, repoErr := uow.GetRepositoryAs[StatsRepository](u, uow.RepositoryName(repoargs.StatsRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &DashboardService{
		uow:       u,
		statsRepo: statsRepo,
	}, nil
}

type DashboardStats struct {
	TotalBuyers     int64
	TotalOrders     int64
	TotalIncome     decimal.Decimal
	TotalProducts   int64
	StatusCounts    repoargs.StatusCount
	StatusBreakdown []repoargs.StatusStat
	DailyBreakdown  []repoargs.DailyStat
}

// Aggregate builds the dashboard for r. TotalBuyers ignores the range on
// purpose: the dashboard always reports the whole customer base. TotalProducts
// sums every status, not just done orders.
func (s *DashboardService) Aggregate(ctx context.Context, r repoargs.DateRange) (*DashboardStats, error) {
	totalBuyers, buyersErr := s.statsRepo.TotalBuyers(ctx)
	if buyersErr != nil {
		return nil, errors.Wrap(buyersErr, "aggregating dashboard")
	}

	totals, totalsErr := s.statsRepo.OrderTotals(ctx, r)
	if totalsErr != nil {
		return nil, errors.Wrap(totalsErr, "aggregating dashboard")
	}

	breakdown, breakdownErr := s.statsRepo.StatusBreakdown(ctx, r)
	if breakdownErr != nil {
		return nil, errors.Wrap(breakdownErr, "aggregating dashboard")
	}

	daily, dailyErr := s.statsRepo.DailyBreakdown(ctx, r)
	if dailyErr != nil {
		return nil, errors.Wrap(dailyErr, "aggregating dashboard")
	}

	return &DashboardStats{
		TotalBuyers:     totalBuyers,
		TotalOrders:     totals.TotalOrders,
		TotalIncome:     totals.TotalIncome,
		TotalProducts:   totals.TotalProducts,
		StatusCounts:    statusCountsOf(breakdown),
		StatusBreakdown: breakdown,
		DailyBreakdown:  daily,
	}, nil
}

// RecentDaily returns the daily breakdown of the last days days, today
// included. The unfiltered dashboard endpoint charts this window while the
// totals stay all-time.
func (s *DashboardService) RecentDaily(ctx context.Context, days int) ([]repoargs.DailyStat, error) {
	end := time.Now().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	daily, err := s.statsRepo.DailyBreakdown(ctx, repoargs.DateRange{Start: &start, End: &end})
	if err != nil {
		return nil, errors.Wrap(err, "getting recent daily stats")
	}
	return daily, nil
}

// statusCountsOf spreads the grouped rows over the closed status set. Absent
// statuses stay zero.
func statusCountsOf(breakdown []repoargs.StatusStat) repoargs.StatusCount {
	var counts repoargs.StatusCount
	for _, stat := range breakdown {
		switch stat.Status {
		case domain.OrderStatusPending:
			counts.Pending = stat.Count
		case domain.OrderStatusOnProcess:
			counts.OnProcess = stat.Count
		case domain.OrderStatusDone:
			counts.Done = stat.Count
		}
	}
	return counts
}
