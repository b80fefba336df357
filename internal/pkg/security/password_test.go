// internal/pkg/security/password_test.go
package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "{bcrypt}"))

	require.True(t, VerifyPassword("admin123", hash))
	require.False(t, VerifyPassword("admin124", hash))
	require.False(t, VerifyPassword("", hash))
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := HashPassword(raw)
		require.ErrorIs(t, err, ErrEmptyPassword)
	}
}

func TestVerifyPasswordAcceptsUnprefixedHash(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hello")
	require.NoError(t, err)

	bare := strings.TrimPrefix(hash, "{bcrypt}")
	require.True(t, VerifyPassword("hello", bare))
}

func TestVerifyPasswordEmptyEncoded(t *testing.T) {
	t.Parallel()
	require.False(t, VerifyPassword("whatever", ""))
}

func TestLongPasswordsTruncateAt72Bytes(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("a", 72)
	first := prefix + "tail-one"
	second := prefix + "tail-two"

	hash, err := HashPassword(first)
	require.NoError(t, err)

	// Only the first 72 bytes count, so both variants verify.
	require.True(t, VerifyPassword(first, hash))
	require.True(t, VerifyPassword(second, hash))
	require.True(t, VerifyPassword(prefix, hash))

	// A difference inside the first 72 bytes still matters.
	require.False(t, VerifyPassword("b"+prefix[1:], hash))
}

func TestTruncationDoesNotSplitMultibyteRunes(t *testing.T) {
	t.Parallel()

	// 25 three-byte runes occupy 75 bytes; the cut lands exactly after
	// the 24th rune, so no partial sequence survives.
	raw := strings.Repeat("密", 25)
	hash, err := HashPassword(raw)
	require.NoError(t, err)
	require.True(t, VerifyPassword(raw, hash))
	require.True(t, VerifyPassword(strings.Repeat("密", 24), hash))
}
