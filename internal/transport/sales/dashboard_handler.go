package sales

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/pricing"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service"
)

// recentDailyDays is the chart window of the unfiltered dashboard.
const recentDailyDays = 30

type DashboardHandler struct {
	dashboardService DashboardServicer
}

func NewDashboardHandler(dashboardService DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type StatusStatResponse struct {
	Status      string          `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type DailyStatResponse struct {
	Tanggal       string          `json:"tanggal"`
	JumlahOrder   int64           `json:"jumlah_order"`
	TotalIncome   decimal.Decimal `json:"total_pendapatan"`
	TotalProducts int64           `json:"total_produk"`
}

type StatsResponse struct {
	TotalBuyers   int64                `json:"total_buyers"`
	TotalOrders   int64                `json:"total_orders"`
	TotalIncome   decimal.Decimal      `json:"total_income"`
	TotalProducts int64                `json:"total_products"`
	PendingOrders int64                `json:"pending_orders"`
	ProcessOrders int64                `json:"process_orders"`
	DoneOrders    int64                `json:"done_orders"`
	OrderStats    []StatusStatResponse `json:"order_stats"`
	DailyStats    []DailyStatResponse  `json:"daily_stats"`
}

func statsResponseOf(stats *service.DashboardStats) StatsResponse {
	orderStats := make([]StatusStatResponse, len(stats.StatusBreakdown))
	for i, stat := range stats.StatusBreakdown {
		orderStats[i] = StatusStatResponse{
			Status:      string(stat.Status),
			Count:       stat.Count,
			TotalAmount: stat.TotalAmount,
		}
	}

	return StatsResponse{
		TotalBuyers:   stats.TotalBuyers,
		TotalOrders:   stats.TotalOrders,
		TotalIncome:   stats.TotalIncome,
		TotalProducts: stats.TotalProducts,
		PendingOrders: stats.StatusCounts.Pending,
		ProcessOrders: stats.StatusCounts.OnProcess,
		DoneOrders:    stats.StatusCounts.Done,
		OrderStats:    orderStats,
		DailyStats:    dailyStatsOf(stats.DailyBreakdown),
	}
}

func dailyStatsOf(daily []repoargs.DailyStat) []DailyStatResponse {
	response := make([]DailyStatResponse, len(daily))
	for i, stat := range daily {
		response[i] = DailyStatResponse{
			Tanggal:       stat.Date.Format(dateLayout),
			JumlahOrder:   stat.OrderCount,
			TotalIncome:   stat.TotalIncome,
			TotalProducts: stat.TotalProducts,
		}
	}
	return response
}

// Stats GET /dashboard-stats. All-time totals; the daily chart covers only
// the last 30 days.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, aggErr := h.dashboardService.Aggregate(ctx, repoargs.DateRange{})
	if aggErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, aggErr).SetType(gin.ErrorTypePrivate)
		return
	}

	daily, dailyErr := h.dashboardService.RecentDaily(ctx, recentDailyDays)
	if dailyErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, dailyErr).SetType(gin.ErrorTypePrivate)
		return
	}

	response := statsResponseOf(stats)
	response.DailyStats = dailyStatsOf(daily)

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": response})
}

// FilterStats GET /dashboard-filter?start_date&end_date. Everything except
// total_buyers honors the window.
func (h *DashboardHandler) FilterStats(c *gin.Context) {
	dateRange, ok := parseDateRange(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid date filter")).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, aggErr := h.dashboardService.Aggregate(ctx, dateRange)
	if aggErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, aggErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": statsResponseOf(stats)})
}

// ProductPrice GET /product-price. Public, no auth needed.
func (h *DashboardHandler) ProductPrice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"price_per_product": pricing.UnitPrice,
	})
}
