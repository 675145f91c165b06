package cryptoutils

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"golang.org/x/xerrors"
)

const (
	pemTypePrivate = "PRIVATE KEY"
	pemTypePublic  = "PUBLIC KEY"
)

// ParsePrivateKey parses an RSA private key from PEM text with a
// PKCS#8 body between PRIVATE KEY delimiters.
func ParsePrivateKey(pemText string) (*rsa.PrivateKey, error) {
	block, err := decodePEM(pemText, pemTypePrivate)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, xerrors.Errorf("parsing PKCS#8 body: %v: %w", err, ErrKeyFormat)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, xerrors.Errorf("%T is not an RSA private key: %w", key, ErrKeyFormat)
	}
	return rsaKey, nil
}

// ParsePublicKey parses an RSA public key from PEM text with an X.509
// PKIX body between PUBLIC KEY delimiters.
func ParsePublicKey(pemText string) (*rsa.PublicKey, error) {
	block, err := decodePEM(pemText, pemTypePublic)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, xerrors.Errorf("parsing PKIX body: %v: %w", err, ErrKeyFormat)
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, xerrors.Errorf("%T is not an RSA public key: %w", key, ErrKeyFormat)
	}
	return rsaKey, nil
}

// ReadPrivateKey loads an RSA private key from a PEM file.
func ReadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading %s: %v: %w", path, err, ErrRead)
	}
	return ParsePrivateKey(string(data))
}

// ReadPublicKey loads an RSA public key from a PEM file.
func ReadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading %s: %v: %w", path, err, ErrRead)
	}
	return ParsePublicKey(string(data))
}

func decodePEM(pemText, wantType string) (*pem.Block, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, xerrors.Errorf("no PEM block found: %w", ErrKeyFormat)
	}
	if block.Type != wantType {
		return nil, xerrors.Errorf("PEM block is %q, want %q: %w",
			block.Type, wantType, ErrKeyFormat)
	}
	return block, nil
}
