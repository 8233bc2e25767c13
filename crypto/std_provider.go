package crypto

import (
	"crypto/ed25519"

	"golang.org/x/crypto/sha3"
)

// StdProvider is the default SigningProvider: SHA3-256 via
// golang.org/x/crypto/sha3 (the same package the reference's own
// default provider, crypto/devstd.go, reaches for) and Ed25519
// (stdlib crypto/ed25519), whose scalar clamping already matches the
// donna-style construction the reference calls for. No third-party
// signature library is needed for the signing half of this pair.
type StdProvider struct{}

var _ SigningProvider = StdProvider{}

// Hash returns SHA3-256 of the concatenation of data.
func (StdProvider) Hash(data ...[]byte) [32]byte {
	h := sha3.New256()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Sign produces a detached Ed25519 signature over hash.
func (StdProvider) Sign(priv ed25519.PrivateKey, hash [32]byte) [64]byte {
	sig := ed25519.Sign(priv, hash[:])
	var out [64]byte
	copy(out[:], sig)
	return out
}

// Verify reports whether sig is a valid Ed25519 signature by pub over
// hash.
func (StdProvider) Verify(pub ed25519.PublicKey, hash [32]byte, sig [64]byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, hash[:], sig[:])
}
