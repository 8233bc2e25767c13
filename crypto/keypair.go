package crypto

import (
	"crypto/ed25519"

	"lattice.dev/ledger/primitives"
)

// ExpandPrivateKey turns the 256-bit private key material the ledger
// stores and signs blocks with into the 64-byte seed-plus-public-key
// form crypto/ed25519 operates on, and returns the matching public key
// (account address).
func ExpandPrivateKey(priv primitives.PrivateKey) (ed25519.PrivateKey, primitives.Address) {
	seed := priv.Bytes()
	sk := ed25519.NewKeyFromSeed(seed[:])
	pub := sk.Public().(ed25519.PublicKey)
	addr, _ := primitives.Uint256FromBytes(pub)
	return sk, addr
}

// PublicKey converts an Address into the ed25519.PublicKey form
// Verify expects.
func PublicKey(addr primitives.Address) ed25519.PublicKey {
	b := addr.Bytes()
	return ed25519.PublicKey(b[:])
}
