package cryptoutils

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/xerrors"
)

// Hash digests the source to exhaustion and returns the hex-encoded
// digest. Identical input bytes always produce an identical string.
func (s *Scheme) Hash(source io.Reader) (string, error) {
	h := s.newHash()
	if _, err := io.Copy(h, source); err != nil {
		return "", xerrors.Errorf("digesting source: %v: %w", err, ErrRead)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes returns the hex-encoded digest of the given bytes.
func (s *Scheme) HashBytes(content []byte) string {
	return hex.EncodeToString(s.digest(content))
}

// HashString returns the hex-encoded digest of the UTF-8 encoding of
// the given text.
func (s *Scheme) HashString(content string) string {
	return s.HashBytes([]byte(content))
}

// HashFile returns the hex-encoded digest of a file's contents.
func (s *Scheme) HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", xerrors.Errorf("opening %s: %v: %w", path, err, ErrRead)
	}
	defer f.Close()
	return s.Hash(f)
}
