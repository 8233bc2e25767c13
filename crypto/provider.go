// Package crypto implements the hashing, signing, password-digest, and
// wallet-secret-encryption primitives the ledger core relies on.
package crypto

import "crypto/ed25519"

// SigningProvider is the narrow crypto interface used by the block and
// ledger packages. It generalizes the reference's pluggable backend
// pattern (a single hash/verify surface swappable for a hardware or
// software implementation) to the SHA3-256/Ed25519 pair this ledger
// uses throughout.
type SigningProvider interface {
	// Hash returns SHA3-256 of the concatenation of data.
	Hash(data ...[]byte) [32]byte
	// Sign produces a detached 512-bit signature over hash.
	Sign(priv ed25519.PrivateKey, hash [32]byte) [64]byte
	// Verify reports whether sig is a valid signature by pub over hash.
	Verify(pub ed25519.PublicKey, hash [32]byte, sig [64]byte) bool
}
