// Package cryptoutils provides the primitive cryptographic operations
// of a trustee: hashing, RSA signing and verification, symmetric
// protection of key-share material at rest, and PEM key loading.
package cryptoutils

import (
	"crypto"
	"crypto/aes"
	"crypto/sha256"
	"hash"

	"golang.org/x/xerrors"
)

var (
	// ErrRead signals a key or data source that cannot be fully read.
	ErrRead = xerrors.New("source unreadable")

	// ErrKeyFormat signals malformed PEM, base64 or key encoding.
	ErrKeyFormat = xerrors.New("malformed key material")

	// ErrPadding signals structurally invalid padding after symmetric
	// decryption, typically a wrong key or corrupted ciphertext.
	ErrPadding = xerrors.New("invalid padding")
)

// Scheme fixes the primitive algorithms of a trustee: SHA-256 digests,
// RSA PKCS#1 v1.5 signatures over those digests, and AES-128-CBC with
// PKCS#7 padding and a fixed initialization vector. The fixed IV makes
// encryption of identical inputs deterministic.
//
// A Scheme is immutable and safe for concurrent use.
type Scheme struct {
	hashID  crypto.Hash
	newHash func() hash.Hash
	keyLen  int
	iv      []byte
}

// DefaultScheme returns the scheme used by the nMix protocol.
func DefaultScheme() *Scheme {
	return &Scheme{
		hashID:  crypto.SHA256,
		newHash: sha256.New,
		keyLen:  16,
		iv:      make([]byte, aes.BlockSize),
	}
}

// KeyLen returns the symmetric key length in bytes.
func (s *Scheme) KeyLen() int {
	return s.keyLen
}

func (s *Scheme) digest(content []byte) []byte {
	h := s.newHash()
	h.Write(content)
	return h.Sum(nil)
}
