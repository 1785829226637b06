package portal

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/service"
)

type ReportHandler struct {
	reportService ReportServicer
}

func NewReportHandler(reportService ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type ReportParams struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Kategori string `json:"kategori"`
	Laporan  string `binding:"required" json:"laporan"`
}

type UpdateReportParams struct {
	ID       int64  `binding:"required,gt=0" json:"id"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Kategori string `json:"kategori"`
	Isi      string `binding:"required" json:"isi"`
}

type DeleteReportParams struct {
	ID int64 `binding:"required,gt=0" json:"id"`
}

type ReportStatusParams struct {
	ID     int64  `binding:"required,gt=0" json:"id"`
	Status string `binding:"required" json:"status"`
}

type ReportResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Kategori string `json:"kategori"`
	Isi      string `json:"isi"`
	Status   string `json:"status"`
	Dibuat   string `json:"dibuat_pada"`
	Username string `json:"username,omitempty"`
}

func reportResponseOf(r domain.Report) ReportResponse {
	return ReportResponse{
		ID:       r.ID,
		UserID:   r.UserID,
		Nama:     r.Nama,
		Email:    r.Email,
		Kategori: r.Kategori,
		Isi:      r.Isi,
		Status:   r.Status,
		Dibuat:   r.CreatedAt.Format("02-01-2006 15:04"),
		Username: r.Username,
	}
}

func reportListOf(reports []domain.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportResponseOf(r))
	}
	return out
}

// writeReportError maps the service sentinels onto the HTTP taxonomy. The
// policy error carries its own message per action.
func writeReportError(c *gin.Context, err error, deniedMsg string) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Laporan tidak ditemukan",
		})
	case errors.Is(err, domain.ErrAccessDenied):
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": deniedMsg,
		})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// Create POST /laporan. Only the report body itself is required.
func (h *ReportHandler) Create(c *gin.Context) {
	var params ReportParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Isi laporan!",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, createErr := h.reportService.Create(ctx, service.CreateReportArgs{
		UserID:   getCurrentActor(c).ID,
		Nama:     params.Nama,
		Email:    params.Email,
		Kategori: params.Kategori,
		Isi:      params.Laporan,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laporan berhasil dikirim!",
		"id":      report.ID,
	})
}

// Index GET /laporan/user. The actor's own reports, newest first.
func (h *ReportHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reports, err := h.reportService.GetByUser(ctx, getCurrentActor(c).ID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, reportListOf(reports))
}

// All GET /laporan/all. Admin-only, includes the reporter username.
func (h *ReportHandler) All(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reports, err := h.reportService.GetAll(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, reportListOf(reports))
}

// Show GET /laporan/:id. Owner or admin only; a missing report answers 404
// before any policy check.
func (h *ReportHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID laporan tidak valid",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.reportService.GetDetail(ctx, getCurrentActor(c), id)
	if err != nil {
		writeReportError(c, err, "Akses ditolak")
		return
	}
	c.JSON(http.StatusOK, reportResponseOf(*report))
}

// Edit POST /laporan/edit.
func (h *ReportHandler) Edit(c *gin.Context) {
	var params UpdateReportParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Data laporan tidak lengkap",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updateErr := h.reportService.Update(ctx, getCurrentActor(c), service.UpdateReportArgs{
		ID:       params.ID,
		Nama:     params.Nama,
		Email:    params.Email,
		Kategori: params.Kategori,
		Isi:      params.Isi,
	})
	if updateErr != nil {
		writeReportError(c, updateErr, "Anda tidak berhak mengedit laporan ini")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laporan berhasil diubah",
	})
}

// Delete POST /laporan/hapus.
func (h *ReportHandler) Delete(c *gin.Context) {
	var params DeleteReportParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID laporan tidak valid",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deleteErr := h.reportService.Delete(ctx, getCurrentActor(c), params.ID)
	if deleteErr != nil {
		writeReportError(c, deleteErr, "Anda tidak berhak menghapus laporan ini")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laporan dihapus",
	})
}

// Status POST /laporan/status. Admin-only, accepts any non-empty status.
func (h *ReportHandler) Status(c *gin.Context) {
	var params ReportStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID dan status harus diisi",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.reportService.UpdateStatus(ctx, params.ID, params.Status); err != nil {
		writeReportError(c, err, "Akses ditolak")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status berhasil diupdate",
	})
}
