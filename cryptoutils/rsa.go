package cryptoutils

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"

	"golang.org/x/xerrors"
)

// Sign computes an RSA PKCS#1 v1.5 signature over the scheme's digest
// of the content. Signer and verifier must agree on the byte encoding
// of the content; SignString fixes UTF-8 for text.
func (s *Scheme) Sign(content []byte, key *rsa.PrivateKey) ([]byte, error) {
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, s.hashID, s.digest(content))
	if err != nil {
		return nil, xerrors.Errorf("signing content: %w", err)
	}
	return sig, nil
}

// SignString signs the UTF-8 encoding of the given text.
func (s *Scheme) SignString(content string, key *rsa.PrivateKey) ([]byte, error) {
	return s.Sign([]byte(content), key)
}

// Verify reports whether the signature is valid for the content under
// the given public key. A signature that parses but does not match
// yields (false, nil); only a signature that cannot be interpreted at
// all yields an error.
func (s *Scheme) Verify(content, signature []byte, key *rsa.PublicKey) (bool, error) {
	err := rsa.VerifyPKCS1v15(key, s.hashID, s.digest(content), signature)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, rsa.ErrVerification) {
		return false, nil
	}
	return false, xerrors.Errorf("interpreting signature: %w", err)
}

// VerifyString verifies a signature over the UTF-8 encoding of the
// given text.
func (s *Scheme) VerifyString(content string, signature []byte, key *rsa.PublicKey) (bool, error) {
	return s.Verify([]byte(content), signature, key)
}
