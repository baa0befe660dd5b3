package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fintrack/internal/core"
)

// TokenIssuer signs and verifies stateless bearer tokens. Tokens carry the
// user's email as subject and an absolute expiry; there is no revocation,
// an expired token requires a fresh login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue produces a signed HS256 token for the given identity, valid for the
// issuer's configured TTL.
func (i *TokenIssuer) Issue(identity string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string and returns the identity it
// carries. Any failure (bad signature, wrong algorithm, missing subject,
// past expiry, malformed structure) collapses to core.ErrInvalidToken.
func (i *TokenIssuer) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", core.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", core.ErrInvalidToken
	}
	return claims.Subject, nil
}
