package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
)

// Encrypt performs the ElGamal encryption algorithm.
func Encrypt(settings *GroupSettings, public kyber.Point, message []byte) *Ciphertext {
	M := settings.Suite.Point().Embed(message, random.New())

	// ElGamal-encrypt the point to produce ciphertext (Alpha, Beta).
	k := settings.Suite.Scalar().Pick(random.New())       // ephemeral private key
	alpha := settings.Suite.Point().Mul(k, settings.Base) // ephemeral DH public key
	S := settings.Suite.Point().Mul(k, public)            // ephemeral DH shared secret
	beta := S.Add(S, M)                                   // message blinded with secret
	return &Ciphertext{Alpha: alpha, Beta: beta}
}

// Decrypt performs the ElGamal decryption algorithm.
func Decrypt(settings *GroupSettings, private kyber.Scalar, c *Ciphertext) kyber.Point {
	S := settings.Suite.Point().Mul(private, c.Alpha) // regenerate shared secret
	return settings.Suite.Point().Sub(c.Beta, S)      // use to un-blind the message
}

// Split separates the ElGamal pairs of a list of ciphertexts into
// separate lists of points.
func Split(ciphertexts []*Ciphertext) (alpha, beta []kyber.Point) {
	n := len(ciphertexts)
	alpha, beta = make([]kyber.Point, n), make([]kyber.Point, n)
	for i := range ciphertexts {
		alpha[i] = ciphertexts[i].Alpha
		beta[i] = ciphertexts[i].Beta
	}
	return
}

// Combine creates a list of ciphertexts from two lists of points.
func Combine(alpha, beta []kyber.Point) []*Ciphertext {
	ciphertexts := make([]*Ciphertext, len(alpha))
	for i := range ciphertexts {
		ciphertexts[i] = &Ciphertext{Alpha: alpha[i], Beta: beta[i]}
	}
	return ciphertexts
}
