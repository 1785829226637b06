package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentSellerKey = "currentSeller"

// Machine-readable codes on 401/403 bodies so clients can tell missing or
// broken credentials apart from an authorization denial.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
)

// checkAuthorization extracts and validates the bearer token. Returns
// ErrTokenNotExist when no token was sent at all.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.SellerClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateSellerJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AuthRequired rejects unauthenticated requests with 401 and stores the
// seller claims under CurrentSellerKey for handlers.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			message := "Silahkan login terlebih dahulu"
			if !errors.Is(err, ErrTokenNotExist) {
				message = "Sesi login telah berakhir"
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
				"code":    CodeUnauthenticated,
			})
			return
		}

		c.Set(CurrentSellerKey, claims)
		c.Next()
	}
}
