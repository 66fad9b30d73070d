package utils

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	DNI     string `json:"dni"`
	EsAdmin bool   `json:"es_admin"`
	jwt.RegisteredClaims
}

func GenerateJWT(dni string, esAdmin bool) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		DNI:     dni,
		EsAdmin: esAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetDNIFromClaims returns the DNI of the authenticated user, as stored in the
// gin context by the auth middleware.
func GetDNIFromClaims(c *gin.Context) (string, error) {
	claims, exists := c.Get("claims")
	if !exists {
		return "", errors.New("claims not found in context")
	}

	authClaims, ok := claims.(*Claims)
	if !ok {
		return "", errors.New("claims are not of type *Claims")
	}

	if authClaims.DNI == "" {
		return "", errors.New("empty DNI in claims")
	}

	return authClaims.DNI, nil
}
