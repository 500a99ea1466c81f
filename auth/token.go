package auth

import (
	perrors "flight-parser/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "flight-parser"

// Claims is what a /parse bearer token carries.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer signs and checks HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// Enabled reports whether a secret is configured. Without one, /parse is open.
func (i *TokenIssuer) Enabled() bool {
	return len(i.secret) > 0
}

// Generate creates a signed token for subject, valid for the configured duration.
func (i *TokenIssuer) Generate(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate parses tokenString and checks its signature, issuer and expiration.
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", perrors.ErrUnauthorized, err)
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: %w", perrors.ErrUnauthorized, jwt.ErrSignatureInvalid)
}
