package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
)

// OrderTotals are the date-filtered scalar aggregates of the orders table.
type OrderTotals struct {
	TotalOrders   int64
	TotalIncome   decimal.Decimal
	TotalProducts int64
}

type StatusCount struct {
	Pending   int64
	OnProcess int64
	Done      int64
}

type StatusStat struct {
	Status      domain.OrderStatusType
	Count       int64
	TotalAmount decimal.Decimal
}

type DailyStat struct {
	Date          time.Time
	OrderCount    int64
	TotalIncome   decimal.Decimal
	TotalProducts int64
}
