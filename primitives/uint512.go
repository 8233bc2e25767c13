package primitives

// Uint512Bytes is the fixed on-wire size of a Uint512.
const Uint512Bytes = 64

// Uint512 is a 512-bit unsigned integer with big-endian byte layout.
// It doubles as a detached Ed25519-variant signature.
type Uint512 [Uint512Bytes]byte

// Uint512FromBytes reads a big-endian 64-byte slice into a Uint512.
func Uint512FromBytes(b []byte) (Uint512, error) {
	var u Uint512
	if len(b) != Uint512Bytes {
		return u, errLen("uint512", Uint512Bytes, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns the big-endian 64-byte encoding.
func (u Uint512) Bytes() [Uint512Bytes]byte {
	return u
}

// Equal reports whether u and o hold the same value.
func (u Uint512) Equal(o Uint512) bool {
	return u == o
}

// IsZero reports whether u is the zero value.
func (u Uint512) IsZero() bool {
	return u == Uint512{}
}

// Xor returns u ^ o.
func (u Uint512) Xor(o Uint512) Uint512 {
	var r Uint512
	for i := range r {
		r[i] = u[i] ^ o[i]
	}
	return r
}

// Halves splits u into its two 256-bit halves, big-endian (high half
// first), matching how the keystream derivation and wallet signature
// container treat a 512-bit value as a pair of 256-bit words.
func (u Uint512) Halves() (hi, lo Uint256) {
	hi, _ = Uint256FromBytes(u[:32])
	lo, _ = Uint256FromBytes(u[32:])
	return hi, lo
}
