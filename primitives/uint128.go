package primitives

// Uint128Bytes is the fixed on-wire size of a Uint128.
const Uint128Bytes = 16

// Uint128 is a 128-bit unsigned integer with big-endian byte layout.
// The reference declares this width alongside Uint256/Uint512 for
// completeness; the data model does not give it a dedicated role the
// way it does for Uint256 (addresses/hashes/balances) and Uint512
// (signatures).
type Uint128 [Uint128Bytes]byte

// Uint128FromBytes reads a big-endian 16-byte slice into a Uint128.
func Uint128FromBytes(b []byte) (Uint128, error) {
	var u Uint128
	if len(b) != Uint128Bytes {
		return u, errLen("uint128", Uint128Bytes, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns the big-endian 16-byte encoding.
func (u Uint128) Bytes() [Uint128Bytes]byte {
	return u
}

// Equal reports whether u and o hold the same value.
func (u Uint128) Equal(o Uint128) bool {
	return u == o
}

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool {
	return u == Uint128{}
}

// Xor returns u ^ o.
func (u Uint128) Xor(o Uint128) Uint128 {
	var r Uint128
	for i := range r {
		r[i] = u[i] ^ o[i]
	}
	return r
}
