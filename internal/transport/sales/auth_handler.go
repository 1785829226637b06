package sales

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/service"
	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
)

// TokenExpire is how long an issued bearer token stays valid.
const TokenExpire = 24 * time.Hour

type AuthHandler struct {
	sellerService SellerServicer
	jwtSecret     []byte
}

func NewAuthHandler(sellerService SellerServicer, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{
		sellerService: sellerService,
		jwtSecret:     jwtSecret,
	}
}

type SellerLoginParams struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

type SellerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nama     string `json:"nama"`
}

// Login POST /login. The response never says whether the username or the
// password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var params SellerLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Username dan password harus diisi",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	seller, loginErr := h.sellerService.Login(ctx, service.LoginSellerArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrRecordNotFound) || errors.Is(loginErr, domain.ErrPasswordMissMatch) {
			_ = c.Error(loginErr)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Username atau password salah",
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	token, tokenErr := tokens.GenerateSellerJWT(
		seller.ID, seller.Username, seller.NamaLengkap, TokenExpire, h.jwtSecret)
	if tokenErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, tokenErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login berhasil",
		"token":   token,
		"user": SellerResponse{
			ID:       seller.ID,
			Username: seller.Username,
			Nama:     seller.NamaLengkap,
		},
	})
}

// CheckAuth GET /check-auth. Echoes the identity carried by the token.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	claims := getCurrentSeller(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": SellerResponse{
			ID:       claims.ID,
			Username: claims.Username,
			Nama:     claims.Nama,
		},
	})
}
