package lib

import (
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/encoding"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// ciphertextSep joins the two hex-encoded points of an ElGamal pair.
const ciphertextSep = ":"

// EncodePoint serializes a point in the canonical hexadecimal form.
func (g *GroupSettings) EncodePoint(p kyber.Point) (string, error) {
	s, err := encoding.PointToStringHex(g.Suite, p)
	if err != nil {
		return "", xerrors.Errorf("encoding point: %v: %w", err, ErrCrypto)
	}
	return s, nil
}

// DecodePoint parses a point from its canonical hexadecimal form.
func (g *GroupSettings) DecodePoint(s string) (kyber.Point, error) {
	p, err := encoding.StringHexToPoint(g.Suite, s)
	if err != nil {
		return nil, xerrors.Errorf("decoding point %q: %v: %w", s, err, ErrParse)
	}
	return p, nil
}

// EncodeScalar serializes a scalar in the canonical hexadecimal form.
func (g *GroupSettings) EncodeScalar(x kyber.Scalar) (string, error) {
	s, err := encoding.ScalarToStringHex(g.Suite, x)
	if err != nil {
		return "", xerrors.Errorf("encoding scalar: %v: %w", err, ErrCrypto)
	}
	return s, nil
}

// DecodeScalar parses a scalar from its canonical hexadecimal form.
func (g *GroupSettings) DecodeScalar(s string) (kyber.Scalar, error) {
	x, err := encoding.StringHexToScalar(g.Suite, s)
	if err != nil {
		return nil, xerrors.Errorf("decoding scalar: %v: %w", err, ErrParse)
	}
	return x, nil
}

// EncodeCiphertext serializes an ElGamal pair as a single string of the
// form "alpha:beta" with both points hex encoded.
func (g *GroupSettings) EncodeCiphertext(c *Ciphertext) (string, error) {
	alpha, err := g.EncodePoint(c.Alpha)
	if err != nil {
		return "", err
	}
	beta, err := g.EncodePoint(c.Beta)
	if err != nil {
		return "", err
	}
	return alpha + ciphertextSep + beta, nil
}

// DecodeCiphertext parses a single serialized ElGamal pair.
func (g *GroupSettings) DecodeCiphertext(s string) (*Ciphertext, error) {
	parts := strings.Split(s, ciphertextSep)
	if len(parts) != 2 {
		return nil, xerrors.Errorf("ciphertext %q is not an alpha:beta pair: %w",
			s, ErrParse)
	}
	alpha, err := g.DecodePoint(parts[0])
	if err != nil {
		return nil, err
	}
	beta, err := g.DecodePoint(parts[1])
	if err != nil {
		return nil, err
	}
	return &Ciphertext{Alpha: alpha, Beta: beta}, nil
}

// EncodeCiphertexts serializes a batch of ElGamal pairs, preserving
// order.
func (g *GroupSettings) EncodeCiphertexts(cs []*Ciphertext) ([]string, error) {
	out := make([]string, len(cs))
	for i, c := range cs {
		s, err := g.EncodeCiphertext(c)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// DecodeCiphertexts parses a batch of serialized ElGamal pairs. The
// elements are parsed in parallel but collected into input order, since
// downstream proofs are positional. A single failing element fails the
// whole batch.
func (g *GroupSettings) DecodeCiphertexts(ss []string) ([]*Ciphertext, error) {
	out := make([]*Ciphertext, len(ss))
	var group errgroup.Group
	for i, s := range ss {
		i, s := i, s
		group.Go(func() error {
			c, err := g.DecodeCiphertext(s)
			if err != nil {
				return xerrors.Errorf("ciphertext %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
