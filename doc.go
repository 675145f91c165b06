package nmix

/*
This repository implements the cryptographic operations performed by a
single trustee node in the nMix distributed e-voting protocol. A trustee
holds one share of a threshold ElGamal decryption key and contributes
three operations to an election: generation of its key share, partial
decryption of a ciphertext batch, and verifiable shuffling (mixing) of a
ciphertext batch. Each operation produces a proof-bearing result that an
external orchestrator transmits and stores; this layer itself keeps no
state between calls.

The heavy algebra lives in the kyber library: group arithmetic, the Neff
shuffle and its proof, and the Chaum-Pedersen style proofs of correct
partial decryption. This layer is responsible for everything around it:
canonical string encodings of group elements, ordered batch conversion,
RSA signing of trustee artifacts, and symmetric protection of private
key-share material at rest.
*/
