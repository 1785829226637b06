package pgrepo

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

// StatsRepository serves the dashboard rollups. Every method is a pure read.
type StatsRepository struct {
	db uow.DBTX
}

func NewStatsRepository(db uow.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// TotalBuyers counts the whole customer base. Deliberately never
// date-filtered, the dashboard always shows it globally.
func (s *StatsRepository) TotalBuyers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM buyer`

	var total int64
	if err := s.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, convertErr(err, "counting buyers")
	}
	return total, nil
}

// OrderTotals returns order count, done-income and product sum inside r.
// Income counts only done orders; the product sum spans every status.
func (s *StatsRepository) OrderTotals(ctx context.Context, r repoargs.DateRange) (*repoargs.OrderTotals, error) {
	var totals repoargs.OrderTotals

	preds := newPredicates()
	preds.addDateRange("orderdate", r)

	countQuery := `
		SELECT COUNT(*), COALESCE(SUM(jumlah_produk), 0)
		FROM orders` + preds.Where()
	if err := s.db.QueryRow(ctx, countQuery, preds.Args()...).
		Scan(&totals.TotalOrders, &totals.TotalProducts); err != nil {
		return nil, convertErr(err, "aggregating order totals")
	}

	incomeQuery := `
		SELECT COALESCE(SUM(subtotal), 0)
		FROM orders
		WHERE status = 'done'` + preds.And()
	if err := s.db.QueryRow(ctx, incomeQuery, preds.Args()...).
		Scan(&totals.TotalIncome); err != nil {
		return nil, convertErr(err, "aggregating order income")
	}

	return &totals, nil
}

// StatusBreakdown groups orders inside r by status, in the fixed reporting
// order pending, on process, done. Statuses without orders are absent.
func (s *StatsRepository) StatusBreakdown(ctx context.Context, r repoargs.DateRange) ([]repoargs.StatusStat, error) {
	preds := newPredicates()
	preds.addDateRange("orderdate", r)

	query := `
		SELECT status, COUNT(*), COALESCE(SUM(subtotal), 0)
		FROM orders` + preds.Where() + `
		GROUP BY status
		ORDER BY CASE status
			WHEN 'pending' THEN 1
			WHEN 'on process' THEN 2
			ELSE 3
		END`

	rows, err := s.db.Query(ctx, query, preds.Args()...)
	if err != nil {
		return nil, convertErr(err, "aggregating status breakdown")
	}
	defer rows.Close()

	var stats []repoargs.StatusStat
	for rows.Next() {
		var stat repoargs.StatusStat
		var status string
		if scanErr := rows.Scan(&status, &stat.Count, &stat.TotalAmount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning status breakdown")
		}
		stat.Status = domain.OrderStatusType(status)
		stats = append(stats, stat)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "aggregating status breakdown")
	}
	return stats, nil
}

// DailyBreakdown groups orders inside r by orderdate, ascending. Only dates
// with at least one order appear.
func (s *StatsRepository) DailyBreakdown(ctx context.Context, r repoargs.DateRange) ([]repoargs.DailyStat, error) {
	preds := newPredicates()
	preds.addDateRange("orderdate", r)

	query := `
		SELECT orderdate, COUNT(*), COALESCE(SUM(subtotal), 0), COALESCE(SUM(jumlah_produk), 0)
		FROM orders` + preds.Where() + `
		GROUP BY orderdate
		ORDER BY orderdate`

	rows, err := s.db.Query(ctx, query, preds.Args()...)
	if err != nil {
		return nil, convertErr(err, "aggregating daily breakdown")
	}
	defer rows.Close()

	var stats []repoargs.DailyStat
	for rows.Next() {
		var stat repoargs.DailyStat
		if scanErr := rows.Scan(&stat.Date, &stat.OrderCount, &stat.TotalIncome, &stat.TotalProducts); scanErr != nil {
			return nil, convertErr(scanErr, "scanning daily breakdown")
		}
		stats = append(stats, stat)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "aggregating daily breakdown")
	}
	return stats, nil
}
