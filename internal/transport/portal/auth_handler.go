package portal

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/service"
	"github.com/yogasw/portal-jualan/internal/transport/portal/middlewares"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type CredentialParams struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

const landingPage = `<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Portal Lapor Korupsi</title></head>
<body>
<h1>Portal Lapor Korupsi</h1>
<p>Gunakan API /register dan /login untuk mulai melapor.</p>
</body>
</html>`

// Landing GET /. The only non-JSON response the service serves.
func (h *AuthHandler) Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

// Register POST /register. A fresh account always gets the user role and is
// logged in right away.
func (h *AuthHandler) Register(c *gin.Context) {
	var params CredentialParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Isi semua kolom!",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, registerErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if registerErr != nil {
		if errors.Is(registerErr, domain.ErrDuplicateKey) {
			_ = c.Error(registerErr)
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Username sudah ada!",
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, registerErr).SetType(gin.ErrorTypePrivate)
		return
	}

	actor := domain.Actor{ID: user.ID, Username: user.Username, Role: user.Role}
	if saveErr := middlewares.SaveActor(c, actor); saveErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, saveErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Akun berhasil dibuat!",
		"user":    actorResponseOf(actor),
	})
}

// Login POST /login. An unknown username and a wrong password produce the same
// response.
func (h *AuthHandler) Login(c *gin.Context) {
	var params CredentialParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Isi semua kolom!",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, loginErr := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrRecordNotFound) || errors.Is(loginErr, domain.ErrPasswordMissMatch) {
			_ = c.Error(loginErr)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Username/password salah",
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	actor := domain.Actor{ID: user.ID, Username: user.Username, Role: user.Role}
	if saveErr := middlewares.SaveActor(c, actor); saveErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, saveErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login berhasil!",
		"user":    actorResponseOf(actor),
	})
}

// Logout POST /logout. Safe to call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if clearErr := middlewares.ClearActor(c); clearErr != nil {
		_ = c.Error(clearErr)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Logout gagal",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout berhasil",
	})
}

// CheckSession GET /check-session. Never errors, reports whether a valid
// session cookie came along.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	actor, ok := middlewares.ActorFromSession(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"user":     actorResponseOf(actor),
	})
}

// Dashboard GET /dashboard. Echoes the session identity for the logged-in
// landing view.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": actorResponseOf(getCurrentActor(c))})
}
