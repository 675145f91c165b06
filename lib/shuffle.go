package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/proof"
	"go.dedis.ch/kyber/v3/shuffle"
	"go.dedis.ch/kyber/v3/util/random"

	"golang.org/x/xerrors"
)

// NeffShuffler is the kyber-backed shuffle capability. It re-encrypts
// and permutes a ciphertext batch and proves the shuffle valid.
type NeffShuffler struct{}

// NewNeffShuffler returns a shuffle capability.
func NewNeffShuffler() *NeffShuffler {
	return &NeffShuffler{}
}

// Shuffle permutes and re-encrypts the batch under the election key and
// attaches a proof of valid shuffle. Batches of fewer than two
// ciphertexts cannot be shuffled.
func (n *NeffShuffler) Shuffle(ciphertexts []*Ciphertext, key kyber.Point,
	settings *GroupSettings, id string) (*Mix, error) {

	if len(ciphertexts) < 2 {
		return nil, xerrors.Errorf("cannot shuffle %d ciphertexts: %w",
			len(ciphertexts), ErrCrypto)
	}
	alpha, beta := Split(ciphertexts)
	v, w, prover := shuffle.Shuffle(settings.Suite, settings.Base, key,
		alpha, beta, random.New())
	pr, err := proof.HashProve(settings.Suite, "", prover)
	if err != nil {
		return nil, xerrors.Errorf("proving shuffle: %v: %w", err, ErrCrypto)
	}
	return &Mix{Node: id, Ciphertexts: Combine(v, w), Proof: pr}, nil
}

// VerifyMix checks the proof of a Neff shuffle against the batch it was
// produced from.
func VerifyMix(settings *GroupSettings, mix *Mix, input []*Ciphertext,
	key kyber.Point) error {

	x, y := Split(input)
	v, w := Split(mix.Ciphertexts)
	verifier := shuffle.Verifier(settings.Suite, settings.Base, key, x, y, v, w)
	if err := proof.HashVerify(settings.Suite, "", verifier, mix.Proof); err != nil {
		return xerrors.Errorf("mix of %s: %v: %w", mix.Node, err, ErrCrypto)
	}
	return nil
}
