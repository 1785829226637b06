package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SellerClaims identifies the logged-in seller on every request.
type SellerClaims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nama     string `json:"nama"`
}

func GenerateSellerJWT(id int64, username, nama string, expire time.Duration, key []byte) (string, error) {
	claims := SellerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID:       id,
		Username: username,
		Nama:     nama,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating seller jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateSellerJWT(tokenString string, key []byte) (*SellerClaims, error) {
	token, err := validateJWT(tokenString, new(SellerClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating seller jwt token: %w", err)
	}

	claims, ok := token.Claims.(*SellerClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
