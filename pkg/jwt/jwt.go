package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errEmptySecret = errors.New("jwt: empty secret")

// Claims standard registered claims plus the shop identifier.
// The "id" claim name is shared with the identity service that issues the tokens.
type Claims struct {
	jwt.RegisteredClaims
	ShopID string `json:"id"`
}

// Generate signs an HS256 token for shopID. Used by the seed tool and tests;
// production tokens come from the identity service.
func Generate(secret, shopID, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   shopID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ShopID: shopID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the shop id it carries.
// Fails on bad signature, expiry, non-HMAC algorithms or a missing id claim.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errors.New("jwt: invalid claims")
	}
	if claims.ShopID == "" {
		return "", errors.New("jwt: missing id claim")
	}
	return claims.ShopID, nil
}
