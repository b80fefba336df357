// internal/pkg/security/password.go
package security

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix marks the hash scheme in stored password values, compatible
// with Spring Security's DelegatingPasswordEncoder output.
const bcryptPrefix = "{bcrypt}"

// ErrEmptyPassword is returned when hashing an empty password.
var ErrEmptyPassword = errors.New("password must not be empty")

// truncate72Bytes cuts a password to bcrypt's 72-byte input limit. The cut
// is applied explicitly so hashing and verification see identical input
// across all server implementations issuing these hashes; a trailing
// partial multi-byte sequence is discarded rather than kept broken.
func truncate72Bytes(s string) string {
	const limit = 72
	if len(s) <= limit {
		return s
	}
	b := []byte(s)[:limit]
	for i := 0; i < utf8.UTFMax-1 && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			break
		}
		b = b[:len(b)-1]
	}
	return string(b)
}

// HashPassword generates a {bcrypt}-prefixed hash for storage.
func HashPassword(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(truncate72Bytes(raw)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return bcryptPrefix + string(hashed), nil
}

// VerifyPassword reports whether raw matches the stored hash. The optional
// {bcrypt} prefix is stripped; an empty or malformed stored value verifies
// false rather than returning an error.
func VerifyPassword(raw, encoded string) bool {
	if encoded == "" {
		return false
	}
	encoded = strings.TrimPrefix(encoded, bcryptPrefix)
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(truncate72Bytes(raw)))
	return err == nil
}
