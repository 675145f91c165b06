package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/proof/dleq"
	"go.dedis.ch/onet/v3/network"
	"go.dedis.ch/protobuf"

	"golang.org/x/xerrors"
)

// Ciphertext is an ElGamal pair of two group elements. Alpha carries
// the ephemeral Diffie-Hellman contribution, Beta the blinded message.
type Ciphertext struct {
	Alpha kyber.Point
	Beta  kyber.Point
}

// KeyShare is a trustee's public contribution to the distributed
// election key, together with a proof that the trustee knows the
// corresponding secret scalar.
type KeyShare struct {
	// Node identifies the trustee that produced the share.
	Node string
	// X is the public contribution.
	X kyber.Point
	// Proof is a Schnorr proof of knowledge of the secret scalar,
	// bound to the node identifier.
	Proof []byte
}

// Partial holds one decryption factor and one proof of correct partial
// decryption per input ciphertext, in input order.
type Partial struct {
	Node   string
	Points []kyber.Point
	Proofs []*dleq.Proof
}

// Mix holds a permuted, re-encrypted ciphertext batch and the proof of
// a valid Neff shuffle.
type Mix struct {
	Node        string
	Ciphertexts []*Ciphertext
	Proof       []byte
}

// Marshal encodes the key share for transmission or storage.
func (k *KeyShare) Marshal() ([]byte, error) {
	return protobuf.Encode(k)
}

// Marshal encodes the partial decryption for transmission or storage.
func (p *Partial) Marshal() ([]byte, error) {
	return protobuf.Encode(p)
}

// Marshal encodes the mix for transmission or storage.
func (m *Mix) Marshal() ([]byte, error) {
	return protobuf.Encode(m)
}

// UnmarshalKeyShare decodes a key share under the given group settings.
func UnmarshalKeyShare(settings *GroupSettings, data []byte) (*KeyShare, error) {
	share := &KeyShare{}
	if err := decode(settings, data, share); err != nil {
		return nil, err
	}
	return share, nil
}

// UnmarshalPartial decodes a partial decryption under the given group
// settings.
func UnmarshalPartial(settings *GroupSettings, data []byte) (*Partial, error) {
	partial := &Partial{}
	if err := decode(settings, data, partial); err != nil {
		return nil, err
	}
	return partial, nil
}

// UnmarshalMix decodes a mix under the given group settings.
func UnmarshalMix(settings *GroupSettings, data []byte) (*Mix, error) {
	mix := &Mix{}
	if err := decode(settings, data, mix); err != nil {
		return nil, err
	}
	return mix, nil
}

func decode(settings *GroupSettings, data []byte, obj interface{}) error {
	cons := network.DefaultConstructors(settings.Suite)
	if err := protobuf.DecodeWithConstructors(data, obj, cons); err != nil {
		return xerrors.Errorf("decoding %T: %v: %w", obj, err, ErrParse)
	}
	return nil
}
