// internal/pkg/token/token_test.go
package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(Config{Secret: "test-secret", TTL: ttl})
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()
	svc := newTestService(time.Hour)

	tok, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims := svc.Parse(tok)
	require.NotNil(t, claims)
	require.Equal(t, int64(42), claims.UserID)
}

func TestParseAcceptsBearerPrefix(t *testing.T) {
	t.Parallel()
	svc := newTestService(time.Hour)

	tok, err := svc.Generate(7)
	require.NoError(t, err)

	for _, header := range []string{
		tok,
		"Bearer " + tok,
		"bearer " + tok,
		"BEARER " + tok,
		"  Bearer " + tok + "  ",
	} {
		claims := svc.Parse(header)
		require.NotNil(t, claims, header)
		require.Equal(t, int64(7), claims.UserID)
	}
}

func TestParseIsTotal(t *testing.T) {
	t.Parallel()
	svc := newTestService(time.Hour)

	for _, input := range []string{
		"",
		"Bearer ",
		"garbage",
		"a.b.c",
	} {
		require.Nil(t, svc.Parse(input), input)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(-time.Minute)

	tok, err := svc.Generate(1)
	require.NoError(t, err)
	require.Nil(t, svc.Parse(tok))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestService(time.Hour).Generate(1)
	require.NoError(t, err)

	other := NewService(Config{Secret: "other-secret", TTL: time.Hour})
	require.Nil(t, other.Parse(tok))
}

func TestParseRejectsZeroUserID(t *testing.T) {
	t.Parallel()
	svc := newTestService(time.Hour)

	tok, err := svc.Generate(0)
	require.NoError(t, err)
	require.Nil(t, svc.Parse(tok))
}

func TestParseRejectsTokenWithoutExpiry(t *testing.T) {
	t.Parallel()
	svc := newTestService(time.Hour)

	// Signed with the right secret but carrying no exp claim.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": 42})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.Nil(t, svc.Parse(signed))
}

func TestStripBearer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", StripBearer("Bearer abc"))
	require.Equal(t, "abc", StripBearer("bearer abc"))
	require.Equal(t, "abc", StripBearer("  abc  "))
	require.Equal(t, "", StripBearer("Bearer "))
	require.Equal(t, "", StripBearer("Bearer"))
	require.Equal(t, "", StripBearer("  bearer  "))
	require.Equal(t, "", StripBearer(""))
}
