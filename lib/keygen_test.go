package lib

import (
	"testing"

	"go.dedis.ch/kyber/v3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShare(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()

	share, secret, err := keygen.CreateShare("trustee-1", settings)
	require.NoError(t, err)
	require.NoError(t, VerifyKeyShare(settings, share))

	// The serialized scalar is the unique secret behind the share.
	x, err := settings.DecodeScalar(secret)
	require.NoError(t, err)
	X := settings.Suite.Point().Mul(x, settings.Base)
	assert.True(t, share.X.Equal(X))
}

func TestVerifyKeyShareRejectsForgery(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()

	share, _, err := keygen.CreateShare("trustee-1", settings)
	require.NoError(t, err)

	// Proof bound to another identifier.
	forged := &KeyShare{Node: "trustee-2", X: share.X, Proof: share.Proof}
	assert.Error(t, VerifyKeyShare(settings, forged))

	// Proof for another public point.
	_, other := settings.RandomKeyPair()
	forged = &KeyShare{Node: share.Node, X: other, Proof: share.Proof}
	assert.Error(t, VerifyKeyShare(settings, forged))
}

func TestPartialDecrypt(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()

	share, secretStr, err := keygen.CreateShare("trustee-1", settings)
	require.NoError(t, err)
	secret, err := settings.DecodeScalar(secretStr)
	require.NoError(t, err)

	messages := [][]byte{[]byte("yes"), []byte("no"), []byte("blank")}
	batch := make([]*Ciphertext, len(messages))
	for i, m := range messages {
		batch[i] = Encrypt(settings, share.X, m)
	}

	partial, err := keygen.PartialDecrypt(batch, secret, "trustee-1", settings)
	require.NoError(t, err)
	require.Len(t, partial.Points, len(batch))
	require.Len(t, partial.Proofs, len(batch))
	require.NoError(t, VerifyPartial(settings, partial, batch, share.X))

	// A single share is the whole key here, so combining the one
	// partial must reveal the plaintexts in order.
	points, err := CombinePartials(settings, batch, partial)
	require.NoError(t, err)
	for i, p := range points {
		data, err := p.Data()
		require.NoError(t, err)
		assert.Equal(t, messages[i], data)
	}
}

func TestPartialDecryptEmptyBatch(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()
	secret, _ := settings.RandomKeyPair()

	partial, err := keygen.PartialDecrypt(nil, secret, "trustee-1", settings)
	require.NoError(t, err)
	assert.Empty(t, partial.Points)
	assert.Empty(t, partial.Proofs)
	assert.Equal(t, "trustee-1", partial.Node)
}

func TestVerifyPartialRejectsMismatch(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()

	share, secretStr, err := keygen.CreateShare("trustee-1", settings)
	require.NoError(t, err)
	secret, err := settings.DecodeScalar(secretStr)
	require.NoError(t, err)

	batch := []*Ciphertext{
		Encrypt(settings, share.X, []byte("a")),
		Encrypt(settings, share.X, []byte("b")),
	}
	partial, err := keygen.PartialDecrypt(batch, secret, "trustee-1", settings)
	require.NoError(t, err)

	// Wrong public share.
	_, other := settings.RandomKeyPair()
	assert.Error(t, VerifyPartial(settings, partial, batch, other))

	// Factor swapped between positions.
	swapped := &Partial{
		Node:   partial.Node,
		Points: []kyber.Point{partial.Points[1], partial.Points[0]},
		Proofs: partial.Proofs,
	}
	assert.Error(t, VerifyPartial(settings, swapped, batch, share.X))

	// Batch length mismatch.
	assert.Error(t, VerifyPartial(settings, partial, batch[:1], share.X))
}

func TestThresholdRecombination(t *testing.T) {
	settings := DefaultGroupSettings()
	keygen := NewKeyGen()

	// Three trustees form a joint key; all must cooperate to decrypt.
	shares := make([]*KeyShare, 3)
	secrets := make([]string, 3)
	publics := make([]kyber.Point, 3)
	for i := range shares {
		var err error
		shares[i], secrets[i], err = keygen.CreateShare("trustee", settings)
		require.NoError(t, err)
		publics[i] = shares[i].X
	}
	key := AggregateKeys(settings, publics...)

	messages := [][]byte{[]byte("yes"), []byte("no")}
	batch := make([]*Ciphertext, len(messages))
	for i, m := range messages {
		batch[i] = Encrypt(settings, key, m)
	}

	partials := make([]*Partial, 3)
	for i, s := range secrets {
		secret, err := settings.DecodeScalar(s)
		require.NoError(t, err)
		partials[i], err = keygen.PartialDecrypt(batch, secret, "trustee", settings)
		require.NoError(t, err)
		require.NoError(t, VerifyPartial(settings, partials[i], batch, shares[i].X))
	}

	points, err := CombinePartials(settings, batch, partials...)
	require.NoError(t, err)
	for i, p := range points {
		data, err := p.Data()
		require.NoError(t, err)
		assert.Equal(t, messages[i], data)
	}

	// Two of three factors are not enough.
	points, err = CombinePartials(settings, batch, partials[:2]...)
	require.NoError(t, err)
	data, err := points[0].Data()
	if err == nil {
		assert.NotEqual(t, messages[0], data)
	}
}
