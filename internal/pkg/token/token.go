// internal/pkg/token/token.go
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the single numeric subject the front-end relies on.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Config holds the symmetric signing secret and token lifetime.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Service issues and parses HS256 session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg Config) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Generate creates a signed token carrying userId, iat and exp.
func (s *Service) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token taken from an Authorization header value. It
// accepts either the raw token or a "Bearer <token>" form (prefix matched
// case-insensitively). Any failure (expired, bad signature, malformed
// input, missing or non-numeric userId) yields nil, never an error, so
// callers can treat the result as "authenticated or not".
func (s *Service) Parse(headerValue string) *Claims {
	raw := StripBearer(headerValue)
	if raw == "" {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return nil
	}
	return claims
}

// StripBearer trims whitespace and removes a leading "Bearer " prefix,
// matched case-insensitively. A bare bearer marker with no token yields
// the empty string.
func StripBearer(headerValue string) string {
	v := strings.TrimSpace(headerValue)
	if strings.EqualFold(v, "bearer") {
		return ""
	}
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		v = strings.TrimSpace(v[7:])
	}
	return v
}
