package nmix

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"

	"github.com/nVotes/nMix/lib"
)

// KeyGeneration is the external capability producing distributed key
// shares and partial decryptions. Implementations own the DTO layouts
// and the proofs carried inside them.
type KeyGeneration interface {
	CreateShare(id string, settings *lib.GroupSettings) (*lib.KeyShare, string, error)
	PartialDecrypt(ciphertexts []*lib.Ciphertext, secret kyber.Scalar,
		id string, settings *lib.GroupSettings) (*lib.Partial, error)
}

// Shuffler is the external capability producing verifiable shuffles.
type Shuffler interface {
	Shuffle(ciphertexts []*lib.Ciphertext, key kyber.Point,
		settings *lib.GroupSettings, id string) (*lib.Mix, error)
}

// Trustee performs the cryptographic operations of a single trustee
// node. It converts the orchestrator's serialized inputs into group
// objects, makes exactly one delegated call per operation and hands the
// proof-bearing result back unmodified. A Trustee keeps no state
// between calls; the id is carried opaquely into the result.
type Trustee struct {
	keygen KeyGeneration
	mixer  Shuffler
}

// NewTrustee returns a trustee backed by the kyber capabilities.
func NewTrustee() *Trustee {
	return NewTrusteeWith(lib.NewKeyGen(), lib.NewNeffShuffler())
}

// NewTrusteeWith returns a trustee composed of the given capabilities.
func NewTrusteeWith(keygen KeyGeneration, mixer Shuffler) *Trustee {
	return &Trustee{keygen: keygen, mixer: mixer}
}

// CreateKeyShare produces the trustee's share of the distributed
// election key. It returns the public share with its proof, and the
// secret scalar serialized under the given settings; storing the scalar
// securely is the caller's responsibility. Parsing the returned string
// under the same settings yields the unique secret matching the share's
// public contribution.
func (t *Trustee) CreateKeyShare(id string, settings *lib.GroupSettings) (
	*lib.KeyShare, string, error) {

	log.Lvl2("creating key share for", id)
	share, secret, err := t.keygen.CreateShare(id, settings)
	if err != nil {
		return nil, "", ErrorOrNil(err, "creating key share")
	}
	return share, secret, nil
}

// PartialDecrypt parses the ciphertext batch and the private share
// under the given settings and delegates the whole ordered batch in one
// call. A single unparsable ciphertext fails the operation before any
// decryption is attempted.
func (t *Trustee) PartialDecrypt(id string, ciphertexts []string, share string,
	settings *lib.GroupSettings) (*lib.Partial, error) {

	log.Lvl2("partially decrypting", len(ciphertexts), "ciphertexts for", id)
	batch, err := settings.DecodeCiphertexts(ciphertexts)
	if err != nil {
		return nil, ErrorOrNil(err, "parsing ciphertext batch")
	}
	secret, err := settings.DecodeScalar(share)
	if err != nil {
		return nil, ErrorOrNil(err, "parsing private share")
	}
	partial, err := t.keygen.PartialDecrypt(batch, secret, id, settings)
	if err != nil {
		return nil, ErrorOrNil(err, "partial decryption")
	}
	log.Lvl3("partial decryption for", id, "done")
	return partial, nil
}

// Shuffle parses the public key and the ciphertext batch under the
// given settings, preserving input order, and delegates once to the
// shuffle capability. The returned mix permutes and re-encrypts the
// batch; its proof certifies the correspondence without revealing the
// permutation.
func (t *Trustee) Shuffle(ciphertexts []string, publicKey string, id string,
	settings *lib.GroupSettings) (*lib.Mix, error) {

	log.Lvl2("shuffling", len(ciphertexts), "ciphertexts for", id)
	key, err := settings.DecodePoint(publicKey)
	if err != nil {
		return nil, ErrorOrNil(err, "parsing public key")
	}
	batch, err := settings.DecodeCiphertexts(ciphertexts)
	if err != nil {
		return nil, ErrorOrNil(err, "parsing ciphertext batch")
	}
	mix, err := t.mixer.Shuffle(batch, key, settings, id)
	if err != nil {
		return nil, ErrorOrNil(err, "shuffle")
	}
	log.Lvl3("shuffle for", id, "done")
	return mix, nil
}
