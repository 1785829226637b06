package sales

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service"
)

type OrdersHandler struct {
	orderService OrderServicer
}

func NewOrdersHandler(orderService OrderServicer) *OrdersHandler {
	return &OrdersHandler{orderService: orderService}
}

// OrderParams covers create and update. There is no jumlah_produk field on
// purpose: the unit count is always derived server-side.
type OrderParams struct {
	BuyerID   int64           `binding:"required"                     json:"buyer_id"`
	OrderDate string          `binding:"required,datetime=2006-01-02" json:"orderdate"`
	Subtotal  decimal.Decimal `binding:"required"                     json:"subtotal"`
	Status    string          `binding:"omitempty,orderstatus"        json:"status"`
}

type OrderResponse struct {
	OrderID      int64           `json:"order_id"`
	BuyerID      int64           `json:"buyer_id"`
	Nama         string          `json:"nama"`
	NoHP         string          `json:"no_hp"`
	Alamat       string          `json:"alamat"`
	OrderDate    string          `json:"orderdate"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	JumlahProduk int64           `json:"jumlah_produk"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"dibuat_pada"`
}

func orderResponseOf(order domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:      order.ID,
		BuyerID:      order.BuyerID,
		Nama:         order.BuyerNama,
		NoHP:         order.BuyerNoHP,
		Alamat:       order.BuyerAlamat,
		OrderDate:    order.OrderDate.Format(dateLayout),
		Subtotal:     order.Subtotal,
		JumlahProduk: order.JumlahProduk,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt.Format("02-01-2006 15:04"),
	}
}

// Index GET /order. All orders, newest orderdate first.
func (h *OrdersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderService.Filter(ctx, repoargs.OrderFilter{})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = orderResponseOf(order)
	}
	c.JSON(http.StatusOK, response)
}

// FilterIndex GET /order/filter?start_date&end_date&status.
func (h *OrdersHandler) FilterIndex(c *gin.Context) {
	dateRange, ok := parseDateRange(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid date filter")).SetType(gin.ErrorTypeBind)
		return
	}

	filter := repoargs.OrderFilter{Range: dateRange}
	if status := c.Query("status"); status != "" && status != "all" {
		if !domain.ValidOrderStatus(status) {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid status filter")).SetType(gin.ErrorTypeBind)
			return
		}
		filter.Status = domain.OrderStatusType(status)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderService.Filter(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = orderResponseOf(order)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET /order/:id.
func (h *OrdersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid order id")).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Order tidak ditemukan")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orderResponseOf(*order)})
}

// Create POST /order.
func (h *OrdersHandler) Create(c *gin.Context) {
	var params OrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Buyer, tanggal, dan subtotal harus diisi",
		})
		return
	}
	orderDate, _ := time.Parse(dateLayout, params.OrderDate)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, createErr := h.orderService.Create(ctx, service.CreateOrderArgs{
		BuyerID:   params.BuyerID,
		OrderDate: orderDate,
		Subtotal:  params.Subtotal,
		Status:    domain.OrderStatusType(params.Status),
	})
	if createErr != nil {
		h.writeOrderError(c, createErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Order berhasil disimpan",
		"order_id":      order.ID,
		"jumlah_produk": order.JumlahProduk,
	})
}

// Update PUT /order/:id. All fields required, jumlah_produk re-derived.
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid order id")).SetType(gin.ErrorTypeBind)
		return
	}

	var params OrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || params.Status == "" {
		if bindErr != nil {
			_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Semua field harus diisi",
		})
		return
	}
	orderDate, _ := time.Parse(dateLayout, params.OrderDate)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	units, updateErr := h.orderService.Update(ctx, service.UpdateOrderArgs{
		ID:        id,
		BuyerID:   params.BuyerID,
		OrderDate: orderDate,
		Subtotal:  params.Subtotal,
		Status:    domain.OrderStatusType(params.Status),
	})
	if updateErr != nil {
		h.writeOrderError(c, updateErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Order berhasil diperbarui",
		"jumlah_produk": units,
	})
}

// Delete DELETE /order/:id.
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid order id")).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deleteErr := h.orderService.Delete(ctx, id)
	if deleteErr != nil {
		if errors.Is(deleteErr, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Order tidak ditemukan")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, deleteErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order berhasil dihapus"})
}

// writeOrderError maps the write-path sentinels shared by Create and Update.
func (h *OrdersHandler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSubtotal):
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("Subtotal harus kelipatan 13.000")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrUnknownBuyer):
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("Buyer tidak ditemukan")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, errors.New("Order tidak ditemukan")).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
