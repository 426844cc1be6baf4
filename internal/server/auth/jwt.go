// Package auth mints and verifies the HS256 bearer tokens presented by the
// trigger source on event delivery.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fkkmemi/boardsync/internal/common"
)

// Claims includes the registered claims plus the identifier of the trigger
// source the token was minted for.
type Claims struct {
	jwt.RegisteredClaims
	Source string
}

func GenerateToken(source string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Source: source,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetSourceFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Source, nil
}
