package sales

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/service"
)

type BuyerHandler struct {
	buyerService BuyerServicer
}

func NewBuyerHandler(buyerService BuyerServicer) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

type BuyerParams struct {
	Nama   string `binding:"required" json:"nama"`
	Alamat string `binding:"required" json:"alamat"`
	NoHP   string `binding:"required" json:"no_hp"`
}

type BuyerResponse struct {
	BuyerID   int64  `json:"buyer_id"`
	Nama      string `json:"nama"`
	Alamat    string `json:"alamat"`
	NoHP      string `json:"no_hp"`
	CreatedAt string `json:"tanggal_daftar"`
}

func buyerResponseOf(buyer domain.Buyer) BuyerResponse {
	return BuyerResponse{
		BuyerID:   buyer.ID,
		Nama:      buyer.Nama,
		Alamat:    buyer.Alamat,
		NoHP:      buyer.NoHP,
		CreatedAt: buyer.CreatedAt.Format("02-01-2006"),
	}
}

// Index GET /buyers.
func (h *BuyerHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	buyers, err := h.buyerService.GetAll(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]BuyerResponse, len(buyers))
	for i, buyer := range buyers {
		response[i] = buyerResponseOf(buyer)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET /buyer/:id.
func (h *BuyerHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid buyer id")).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	buyer, err := h.buyerService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Buyer tidak ditemukan")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": buyerResponseOf(*buyer)})
}

// Create POST /buyer.
func (h *BuyerHandler) Create(c *gin.Context) {
	var params BuyerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Semua field harus diisi",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	buyer, createErr := h.buyerService.Create(ctx, service.CreateBuyerArgs{
		Nama:   params.Nama,
		Alamat: params.Alamat,
		NoHP:   params.NoHP,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Buyer berhasil disimpan",
		"id":      buyer.ID,
	})
}

// Update PUT /buyer/:id.
func (h *BuyerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid buyer id")).SetType(gin.ErrorTypeBind)
		return
	}

	var params BuyerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Semua field harus diisi",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updateErr := h.buyerService.Update(ctx, service.UpdateBuyerArgs{
		ID:     id,
		Nama:   params.Nama,
		Alamat: params.Alamat,
		NoHP:   params.NoHP,
	})
	if updateErr != nil {
		if errors.Is(updateErr, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Buyer tidak ditemukan")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, updateErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Buyer berhasil diperbarui"})
}

// Delete DELETE /buyer/:id. A buyer with orders cannot be removed; that check
// wins over existence.
func (h *BuyerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid buyer id")).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deleteErr := h.buyerService.Delete(ctx, id)
	if deleteErr != nil {
		switch {
		case errors.Is(deleteErr, domain.ErrBuyerReferenced):
			_ = c.AbortWithError(http.StatusConflict,
				errors.New("Buyer tidak dapat dihapus karena memiliki order")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(deleteErr, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Buyer tidak ditemukan")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, deleteErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Buyer berhasil dihapus"})
}
