package cryptoutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	s := DefaultScheme()
	priv, err := ReadPrivateKey("testdata/trustee.pem")
	require.NoError(t, err)
	pub, err := ReadPublicKey("testdata/trustee_pub.pem")
	require.NoError(t, err)

	sig, err := s.SignString("nvotes-test", priv)
	require.NoError(t, err)

	ok, err := s.VerifyString("nvotes-test", sig, pub)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyWrongKey(t *testing.T) {
	s := DefaultScheme()
	priv, err := ReadPrivateKey("testdata/trustee.pem")
	require.NoError(t, err)
	other, err := ReadPublicKey("testdata/other_pub.pem")
	require.NoError(t, err)

	sig, err := s.SignString("nvotes-test", priv)
	require.NoError(t, err)

	ok, err := s.VerifyString("nvotes-test", sig, other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyTampered(t *testing.T) {
	s := DefaultScheme()
	priv, err := ReadPrivateKey("testdata/trustee.pem")
	require.NoError(t, err)
	pub := &priv.PublicKey

	content := []byte("nvotes-test")
	sig, err := s.Sign(content, priv)
	require.NoError(t, err)

	for bit := 0; bit < 8; bit++ {
		flipped := append([]byte(nil), content...)
		flipped[0] ^= 1 << bit
		ok, err := s.Verify(flipped, sig, pub)
		require.NoError(t, err)
		assert.False(t, ok, "bit %d of content", bit)
	}

	garbled := append([]byte(nil), sig...)
	garbled[len(garbled)/2] ^= 0x01
	ok, err := s.Verify(content, garbled, pub)
	require.NoError(t, err)
	assert.False(t, ok)

	// Truncated garbage of plausible shape is a mismatch, not an error.
	ok, err = s.Verify(content, sig[:len(sig)-1], pub)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFixtureKeyPair(t *testing.T) {
	priv, err := ReadPrivateKey("testdata/trustee.pem")
	require.NoError(t, err)
	pub, err := ReadPublicKey("testdata/trustee_pub.pem")
	require.NoError(t, err)

	// Fixture-recorded expectations for testdata/trustee.pem.
	assert.Equal(t, 4096, priv.N.BitLen())
	assert.Equal(t, 65537, priv.E)
	modulus := fmt.Sprintf("%X", priv.N)
	assert.Equal(t, "E2200F05A234C378B0338AFBF10E96CC", modulus[:32])
	assert.Equal(t, "A0ABFBCFEEA2A32DAB61B23885FA634F", modulus[len(modulus)-32:])

	// Private and public keys from the same source share the modulus.
	assert.Equal(t, 0, priv.N.Cmp(pub.N))
	assert.Equal(t, priv.E, pub.E)
}
