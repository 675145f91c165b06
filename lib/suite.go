package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/suites"
	"go.dedis.ch/kyber/v3/util/random"

	"golang.org/x/xerrors"
)

var (
	// ErrParse signals a string that does not decode to a group
	// element under the stated group settings.
	ErrParse = xerrors.New("element does not decode under group settings")

	// ErrCrypto signals a well-formed input rejected by the
	// underlying cryptographic library.
	ErrCrypto = xerrors.New("rejected by crypto library")
)

// GroupSettings is an immutable description of the algebraic group in
// which all ElGamal operations of one call take place. Every string
// crossing this layer's boundary must be encoded and decoded under the
// same settings, or parsing fails.
type GroupSettings struct {
	// Suite provides the group arithmetic and element encodings.
	Suite suites.Suite
	// Base overrides the suite's standard base point when non-nil.
	Base kyber.Point
}

// DefaultGroupSettings returns settings over the Ed25519 curve.
func DefaultGroupSettings() *GroupSettings {
	return &GroupSettings{Suite: suites.MustFind("Ed25519")}
}

// Generator returns the group generator the settings operate with.
func (g *GroupSettings) Generator() kyber.Point {
	if g.Base != nil {
		return g.Base.Clone()
	}
	return g.Suite.Point().Base()
}

// RandomKeyPair creates a random public/private Diffie-Hellman key pair.
func (g *GroupSettings) RandomKeyPair() (x kyber.Scalar, X kyber.Point) {
	x = g.Suite.Scalar().Pick(random.New())
	X = g.Suite.Point().Mul(x, g.Base)
	return
}
