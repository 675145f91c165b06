package cryptoutils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// RandomKey draws a fresh symmetric key from a cryptographically secure
// random source.
func (s *Scheme) RandomKey() ([]byte, error) {
	key := make([]byte, s.keyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, xerrors.Errorf("drawing key: %v: %w", err, ErrRead)
	}
	return key, nil
}

// Encrypt encrypts the content under the scheme's block mode. The
// content is padded to the block size first. Identical (content, key)
// inputs produce identical ciphertext under the fixed IV.
func (s *Scheme) Encrypt(content, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, xerrors.Errorf("building cipher: %v: %w", err, ErrKeyFormat)
	}
	padded := pad(content, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, s.iv).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt decrypts a ciphertext produced by Encrypt and removes the
// padding. A wrong key or corrupted ciphertext surfaces as ErrPadding.
func (s *Scheme) Decrypt(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, xerrors.Errorf("building cipher: %v: %w", err, ErrKeyFormat)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, xerrors.Errorf("ciphertext of %d bytes is not block aligned: %w",
			len(ciphertext), ErrPadding)
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, s.iv).CryptBlocks(out, ciphertext)
	return unpad(out, aes.BlockSize)
}

// EncryptString encrypts the UTF-8 encoding of the text and returns the
// ciphertext base64 encoded.
func (s *Scheme) EncryptString(content string, key []byte) (string, error) {
	ct, err := s.Encrypt([]byte(content), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// DecryptString decrypts a base64-encoded ciphertext and decodes the
// plaintext as UTF-8 text.
func (s *Scheme) DecryptString(ciphertext string, key []byte) (string, error) {
	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", xerrors.Errorf("decoding ciphertext: %w", err)
	}
	content, err := s.Decrypt(ct, key)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// EncodeKey returns the key-file string form of a symmetric key.
func (s *Scheme) EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses the key-file string form of a symmetric key.
func (s *Scheme) DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, xerrors.Errorf("decoding key: %v: %w", err, ErrKeyFormat)
	}
	if len(key) != s.keyLen {
		return nil, xerrors.Errorf("key of %d bytes, want %d: %w",
			len(key), s.keyLen, ErrKeyFormat)
	}
	return key, nil
}

// ReadKeyFile loads a symmetric key from its key file.
func (s *Scheme) ReadKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading %s: %v: %w", path, err, ErrRead)
	}
	return s.DecodeKey(string(data))
}

// pad extends the content to a multiple of the block size, each added
// byte holding the pad length.
func pad(content []byte, size int) []byte {
	n := size - len(content)%size
	return append(content, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad removes the padding, checking every pad byte.
func unpad(content []byte, size int) ([]byte, error) {
	n := int(content[len(content)-1])
	if n == 0 || n > size || n > len(content) {
		return nil, xerrors.Errorf("pad length %d: %w", n, ErrPadding)
	}
	for _, b := range content[len(content)-n:] {
		if int(b) != n {
			return nil, xerrors.Errorf("inconsistent pad bytes: %w", ErrPadding)
		}
	}
	return content[:len(content)-n], nil
}
