package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/proof/dleq"
	"go.dedis.ch/kyber/v3/sign/schnorr"

	"golang.org/x/xerrors"
)

// KeyGen is the kyber-backed key generation capability. It creates a
// trustee's additive share of the distributed election key and computes
// partial decryptions under that share.
type KeyGen struct{}

// NewKeyGen returns a key generation capability.
func NewKeyGen() *KeyGen {
	return &KeyGen{}
}

// CreateShare picks a fresh secret scalar, computes the trustee's
// public contribution and attaches a proof of knowledge bound to the
// given identifier. The returned string is the secret scalar in its
// canonical encoding; parsing it under the same settings yields the
// unique secret matching the share's public point.
func (k *KeyGen) CreateShare(id string, settings *GroupSettings) (*KeyShare, string, error) {
	x, X := settings.RandomKeyPair()

	sig, err := schnorr.Sign(settings.Suite, x, shareMessage(id, X))
	if err != nil {
		return nil, "", xerrors.Errorf("proving share knowledge: %v: %w", err, ErrCrypto)
	}
	secret, err := settings.EncodeScalar(x)
	if err != nil {
		return nil, "", err
	}
	return &KeyShare{Node: id, X: X, Proof: sig}, secret, nil
}

// PartialDecrypt computes one decryption factor per ciphertext under
// the trustee's secret share, each with a Chaum-Pedersen proof that the
// factor matches the share's public point. An empty batch yields an
// empty, well-formed result.
func (k *KeyGen) PartialDecrypt(ciphertexts []*Ciphertext, secret kyber.Scalar,
	id string, settings *GroupSettings) (*Partial, error) {

	points := make([]kyber.Point, len(ciphertexts))
	proofs := make([]*dleq.Proof, len(ciphertexts))
	for i, c := range ciphertexts {
		pr, _, factor, err := dleq.NewDLEQProof(settings.Suite,
			settings.Generator(), c.Alpha, secret)
		if err != nil {
			return nil, xerrors.Errorf("ciphertext %d: %v: %w", i, err, ErrCrypto)
		}
		points[i] = factor
		proofs[i] = pr
	}
	return &Partial{Node: id, Points: points, Proofs: proofs}, nil
}

// VerifyKeyShare checks the proof of knowledge carried by a key share.
func VerifyKeyShare(settings *GroupSettings, share *KeyShare) error {
	err := schnorr.Verify(settings.Suite, share.X, shareMessage(share.Node, share.X), share.Proof)
	if err != nil {
		return xerrors.Errorf("key share of %s: %v: %w", share.Node, err, ErrCrypto)
	}
	return nil
}

// VerifyPartial checks every decryption factor of a partial decryption
// against the input batch and the trustee's public share.
func VerifyPartial(settings *GroupSettings, partial *Partial,
	ciphertexts []*Ciphertext, public kyber.Point) error {

	if len(partial.Points) != len(ciphertexts) || len(partial.Proofs) != len(ciphertexts) {
		return xerrors.Errorf("partial of %s covers %d of %d ciphertexts: %w",
			partial.Node, len(partial.Points), len(ciphertexts), ErrCrypto)
	}
	for i, pr := range partial.Proofs {
		err := pr.Verify(settings.Suite, settings.Generator(),
			ciphertexts[i].Alpha, public, partial.Points[i])
		if err != nil {
			return xerrors.Errorf("factor %d of %s: %v: %w", i, partial.Node, err, ErrCrypto)
		}
	}
	return nil
}

func shareMessage(id string, X kyber.Point) []byte {
	data, _ := X.MarshalBinary()
	return append(data, []byte(id)...)
}
