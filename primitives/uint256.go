// Package primitives implements the fixed-width unsigned integers and
// text encodings the ledger core is built on (128/256/512-bit values,
// hex/decimal/base58check codecs).
package primitives

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Uint256Bytes is the fixed on-wire size of a Uint256.
const Uint256Bytes = 32

// Uint256 is a 256-bit unsigned integer with big-endian byte layout.
// It doubles as a block hash, an account address, a balance or amount,
// an identifier, and a checksum, per the data model.
type Uint256 struct {
	inner uint256.Int
}

// Uint256FromBytes reads a big-endian 32-byte slice into a Uint256.
func Uint256FromBytes(b []byte) (Uint256, error) {
	if len(b) != Uint256Bytes {
		return Uint256{}, fmt.Errorf("uint256: want %d bytes, got %d", Uint256Bytes, len(b))
	}
	var u Uint256
	u.inner.SetBytes32(b)
	return u, nil
}

// Uint256FromUint64 builds a small Uint256 from a native integer, useful
// for constants and tests.
func Uint256FromUint64(v uint64) Uint256 {
	var u Uint256
	u.inner.SetUint64(v)
	return u
}

// MaxUint256 returns the all-ones 256-bit value (genesis supply uses
// this in the reference test vectors).
func MaxUint256() Uint256 {
	var u Uint256
	u.inner.SetAllOne()
	return u
}

// Bytes returns the big-endian 32-byte encoding.
func (u Uint256) Bytes() [32]byte {
	return u.inner.Bytes32()
}

// Equal reports whether u and o hold the same value.
func (u Uint256) Equal(o Uint256) bool {
	return u.inner.Eq(&o.inner)
}

// Less reports whether u < o.
func (u Uint256) Less(o Uint256) bool {
	return u.inner.Lt(&o.inner)
}

// Greater reports whether u > o.
func (u Uint256) Greater(o Uint256) bool {
	return u.inner.Gt(&o.inner)
}

// IsZero reports whether u is the zero value.
func (u Uint256) IsZero() bool {
	return u.inner.IsZero()
}

// Xor returns u ^ o.
func (u Uint256) Xor(o Uint256) Uint256 {
	var r Uint256
	r.inner.Xor(&u.inner, &o.inner)
	return r
}

// Add returns u + o, wrapping on overflow (balance math is not secret;
// callers that need overflow detection compare against operands first).
func (u Uint256) Add(o Uint256) Uint256 {
	var r Uint256
	r.inner.Add(&u.inner, &o.inner)
	return r
}

// Sub returns u - o, wrapping on underflow.
func (u Uint256) Sub(o Uint256) Uint256 {
	var r Uint256
	r.inner.Sub(&u.inner, &o.inner)
	return r
}

// AddOverflows reports whether u + o would wrap past the 256-bit range.
func (u Uint256) AddOverflows(o Uint256) bool {
	var r Uint256
	_, overflow := r.inner.AddOverflow(&u.inner, &o.inner)
	return overflow
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than o.
func (u Uint256) Cmp(o Uint256) int {
	return u.inner.Cmp(&o.inner)
}

// String renders the canonical decimal form (no leading zeros, "0" for
// the zero value).
func (u Uint256) String() string {
	return u.inner.Dec()
}
