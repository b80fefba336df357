// internal/pkg/security/rsa.go
package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
)

var errDecryption = errors.New("rsa: decryption error")

// RSADecryptor decrypts Base64 ciphertexts produced by the front-end login
// form. The key is parsed once at construction and immutable afterwards.
//
// This is not a general-purpose RSA implementation: it reimplements PKCS#1
// v1.5 unpadding in a deliberately permissive way so the legacy 512-bit key
// shipped with the admin front-end keeps working (crypto/rsa refuses keys
// that small). It is not constant-time and not padding-oracle hardened;
// callers must surface failures as a single generic error.
type RSADecryptor struct {
	n *big.Int
	d *big.Int
	k int
}

// NewRSADecryptorFromBase64 creates a decryptor from a Base64-encoded
// PKCS#8 DER private key.
func NewRSADecryptorFromBase64(b64Key string) (*RSADecryptor, error) {
	if b64Key == "" {
		return nil, errors.New("rsa private key is empty")
	}
	der, err := base64.StdEncoding.DecodeString(b64Key)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse pkcs8 private key: %w", err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unexpected private key type %T", key)
	}
	return &RSADecryptor{
		n: priv.N,
		d: priv.D,
		k: (priv.N.BitLen() + 7) / 8,
	}, nil
}

// DecryptBase64 decrypts a Base64-encoded ciphertext and returns the UTF-8
// plaintext. Every failure mode collapses into the same generic error.
func (r *RSADecryptor) DecryptBase64(cipherB64 string) (string, error) {
	if r == nil || r.n == nil {
		return "", errors.New("rsa decryptor not initialized")
	}
	if cipherB64 == "" {
		return "", errDecryption
	}
	cipherBytes, err := base64.StdEncoding.DecodeString(cipherB64)
	if err != nil {
		return "", errDecryption
	}
	plain, err := r.decryptPKCS1v15(cipherBytes)
	if err != nil {
		return "", errDecryption
	}
	return string(plain), nil
}

// decryptPKCS1v15 performs raw modular exponentiation followed by relaxed
// PKCS#1 v1.5 unpadding. Relaxations vs. the strict spec: padding bytes are
// not required to be non-zero (only the separator position is checked),
// matching the behavior of the sibling server implementations.
func (r *RSADecryptor) decryptPKCS1v15(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != r.k {
		return nil, errors.New("rsa: incorrect ciphertext length")
	}
	if r.k < 11 {
		return nil, errDecryption
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(r.n) >= 0 {
		return nil, errDecryption
	}

	m := new(big.Int).Exp(c, r.d, r.n)
	em := m.FillBytes(make([]byte, r.k))

	// Expect 0x00 || 0x02 || PS || 0x00 || M with PS at least 8 bytes.
	if em[0] != 0x00 || em[1] != 0x02 {
		return nil, errDecryption
	}
	sep := -1
	for i := 2; i < len(em); i++ {
		if em[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 10 {
		return nil, errDecryption
	}
	return em[sep+1:], nil
}
