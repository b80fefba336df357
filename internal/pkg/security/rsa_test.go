// internal/pkg/security/rsa_test.go
package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDecryptor(t *testing.T) (*RSADecryptor, *rsa.PrivateKey) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	dec, err := NewRSADecryptorFromBase64(base64.StdEncoding.EncodeToString(der))
	require.NoError(t, err)
	return dec, priv
}

func TestRSADecryptorRoundTrip(t *testing.T) {
	t.Parallel()
	dec, priv := newTestDecryptor(t)

	for _, plaintext := range []string{"admin123", "p@ssw0rd!", "密码测试", "x"} {
		cipherBytes, err := rsa.EncryptPKCS1v15(rand.Reader, &priv.PublicKey, []byte(plaintext))
		require.NoError(t, err)

		got, err := dec.DecryptBase64(base64.StdEncoding.EncodeToString(cipherBytes))
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

func TestRSADecryptorRejectsBadInputs(t *testing.T) {
	t.Parallel()
	dec, priv := newTestDecryptor(t)

	cipherBytes, err := rsa.EncryptPKCS1v15(rand.Reader, &priv.PublicKey, []byte("secret"))
	require.NoError(t, err)
	valid := base64.StdEncoding.EncodeToString(cipherBytes)

	cases := map[string]string{
		"empty":            "",
		"not base64":       "!!not-base64!!",
		"wrong length":     base64.StdEncoding.EncodeToString(cipherBytes[:len(cipherBytes)-1]),
		"all-zero block": base64.StdEncoding.EncodeToString(make([]byte, len(cipherBytes))),
	}
	for name, input := range cases {
		_, err := dec.DecryptBase64(input)
		require.Error(t, err, name)
		// All failures collapse into the same generic error.
		require.EqualError(t, err, errDecryption.Error(), name)
	}

	// Flipping a ciphertext byte must not leak a distinct error either.
	tampered := make([]byte, len(cipherBytes))
	copy(tampered, cipherBytes)
	tampered[len(tampered)/2] ^= 0xff
	if _, err := dec.DecryptBase64(base64.StdEncoding.EncodeToString(tampered)); err != nil {
		require.EqualError(t, err, errDecryption.Error())
	}

	// The valid ciphertext still decrypts after the failures above.
	got, err := dec.DecryptBase64(valid)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
}

func TestNewRSADecryptorFromBase64Errors(t *testing.T) {
	t.Parallel()

	_, err := NewRSADecryptorFromBase64("")
	require.Error(t, err)

	_, err = NewRSADecryptorFromBase64("not base64")
	require.Error(t, err)

	_, err = NewRSADecryptorFromBase64(base64.StdEncoding.EncodeToString([]byte("not a key")))
	require.Error(t, err)
}
