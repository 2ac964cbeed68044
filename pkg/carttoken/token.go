package carttoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jdrosales/playmerch-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// Claims identifies the anonymous cart session a browser is working against.
type Claims struct {
	CartID string `json:"cart_id"`
	jwt.RegisteredClaims
}

// Mint issues a signed token naming a fresh cart identifier.
func Mint(cfg config.CartTokenConfig, now time.Time) (token string, cartID string, err error) {
	return MintFor(cfg, now, uuid.NewString())
}

// MintFor issues a signed token for an existing cart identifier (token renewal).
func MintFor(cfg config.CartTokenConfig, now time.Time, cartID string) (string, string, error) {
	if cfg.Secret == "" {
		return "", "", fmt.Errorf("cart token secret is required")
	}
	if cfg.TTL() <= 0 {
		return "", "", fmt.Errorf("cart token ttl must be positive")
	}
	if cartID == "" {
		return "", "", fmt.Errorf("cart id is required")
	}

	claims := Claims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL())),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("signing cart token: %w", err)
	}
	return signed, cartID, nil
}

// Parse validates the token string and returns typed claims.
func Parse(cfg config.CartTokenConfig, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("cart token secret is required")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}
	if claims.CartID == "" {
		return nil, fmt.Errorf("cart token missing cart id")
	}

	return claims, nil
}
