package block

import "lattice.dev/ledger/primitives"

// Block is implemented by each of the four variants. There is no
// visitor-style dispatch; callers type-switch on the concrete type
// when they need variant-specific fields.
type Block interface {
	// Hash returns the block's identity: SHA3-256 of its hashable
	// fields in the order given by the variant's table.
	Hash(hasher Hasher) primitives.BlockHash

	// Previous returns the predecessor block hash this block extends.
	// Open blocks have no predecessor and return the zero hash.
	Previous() primitives.BlockHash

	// Root returns Previous() for send/receive/change, and for open
	// returns the account address being opened.
	Root() primitives.BlockHash

	// Source returns the referenced send block's hash for
	// receive/open blocks, and false for send/change.
	Source() (primitives.BlockHash, bool)

	// Type reports the block's variant tag.
	Type() Type

	// Serialize returns the wire encoding: type byte followed by the
	// variant body.
	Serialize() []byte

	// Equal reports whether two blocks have identical fields.
	Equal(Block) bool

	// Clone returns an independent copy.
	Clone() Block
}

// Hasher computes the SHA3-256 digest of concatenated byte strings.
// block.Block.Hash takes one explicitly rather than reaching for a
// package-level default so callers can swap in any
// crypto.SigningProvider (or a test double) without the block package
// importing crypto and creating a cycle.
type Hasher interface {
	Hash(data ...[]byte) [32]byte
}

func hashToBlockHash(h Hasher, parts ...[]byte) primitives.BlockHash {
	sum := h.Hash(parts...)
	bh, _ := primitives.Uint256FromBytes(sum[:])
	return bh
}
