package lib

import (
	"go.dedis.ch/kyber/v3"

	"golang.org/x/xerrors"
)

// AggregateKeys combines the trustees' public contributions into the
// joint election key.
func AggregateKeys(settings *GroupSettings, shares ...kyber.Point) kyber.Point {
	key := settings.Suite.Point().Null()
	for _, share := range shares {
		key.Add(key, share)
	}
	return key
}

// CombinePartials recovers the embedded message points of a batch by
// combining the decryption factors of all trustees. Every partial must
// cover the full batch.
func CombinePartials(settings *GroupSettings, ciphertexts []*Ciphertext,
	partials ...*Partial) ([]kyber.Point, error) {

	for _, partial := range partials {
		if len(partial.Points) != len(ciphertexts) {
			return nil, xerrors.Errorf("partial of %s covers %d of %d ciphertexts: %w",
				partial.Node, len(partial.Points), len(ciphertexts), ErrCrypto)
		}
	}
	messages := make([]kyber.Point, len(ciphertexts))
	for i, c := range ciphertexts {
		S := settings.Suite.Point().Null()
		for _, partial := range partials {
			S.Add(S, partial.Points[i])
		}
		messages[i] = settings.Suite.Point().Sub(c.Beta, S)
	}
	return messages, nil
}
