package primitives

// A single 256-bit representation serves several roles in the data
// model; these aliases name the role at each call site without
// introducing a distinct type.
type (
	// Address identifies an account; it is that account's public key.
	Address = Uint256
	// BlockHash identifies a block by its canonical hash.
	BlockHash = Uint256
	// Balance is an account's balance at some point in its chain.
	Balance = Uint256
	// Amount is a quantity transferred by a send/receive pair.
	Amount = Uint256
	// PrivateKey is a 256-bit Ed25519-variant private key.
	PrivateKey = Uint256
	// Checksum is a 256-bit XOR accumulator over a region of the
	// address space.
	Checksum = Uint256
)

// Signature is a detached 512-bit signature over a block's hash.
type Signature = Uint512
