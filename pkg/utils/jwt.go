package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sareeMarket/domain"
)

// JWTClaims carries the authenticated identity inside a session token.
type JWTClaims struct {
	UserID  string `json:"id"`
	Mobile  string `json:"mobile"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the given user, valid for ttl.
func GenerateJWT(user domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:  user.ID,
		Mobile:  user.Mobile,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseJWT verifies the signature and expiry of a session token and
// returns its claims.
func ParseJWT(tokenString, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
