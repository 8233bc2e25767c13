package primitives

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// base58CheckPayloadLen is the size of the value a base58check string
// encodes (a 32-byte address), before the trailing 4-byte checksum.
const base58CheckPayloadLen = 32
const base58CheckChecksumLen = 4

// EncodeHex256 renders a Uint256 as 64 fixed-length, big-endian hex
// characters.
func EncodeHex256(u Uint256) string {
	b := u.Bytes()
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// DecodeHex256 parses exactly 64 hex characters into a Uint256. Any
// non-hex character, or a string of the wrong length, fails the decode.
func DecodeHex256(s string) (Uint256, error) {
	b, err := decodeFixedHex(s, Uint256Bytes)
	if err != nil {
		return Uint256{}, err
	}
	return Uint256FromBytes(b)
}

// EncodeHex512 renders a Uint512 as 128 fixed-length, big-endian hex
// characters.
func EncodeHex512(u Uint512) string {
	b := u.Bytes()
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// DecodeHex512 parses exactly 128 hex characters into a Uint512.
func DecodeHex512(s string) (Uint512, error) {
	b, err := decodeFixedHex(s, Uint512Bytes)
	if err != nil {
		return Uint512{}, err
	}
	return Uint512FromBytes(b)
}

func decodeFixedHex(s string, wantBytes int) ([]byte, error) {
	if len(s) != wantBytes*2 {
		return nil, fmt.Errorf("hex: want %d chars, got %d", wantBytes*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex: %w", err)
	}
	return b, nil
}

// EncodeDecimal renders u in canonical decimal form: no leading zeros,
// except the single digit "0" for the zero value.
func EncodeDecimal(u Uint256) string {
	return u.String()
}

// DecodeDecimal parses a canonical decimal string into a Uint256. It
// rejects leading zeros (other than the literal "0"), a leading sign,
// and non-digit characters.
func DecodeDecimal(s string) (Uint256, error) {
	if s == "" {
		return Uint256{}, fmt.Errorf("decimal: empty string")
	}
	if s != "0" && s[0] == '0' {
		return Uint256{}, fmt.Errorf("decimal: leading zero in %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Uint256{}, fmt.Errorf("decimal: invalid digit %q", c)
		}
	}
	inner, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint256{}, fmt.Errorf("decimal: %w", err)
	}
	return Uint256{inner: *inner}, nil
}

// EncodeBase58Check renders a 32-byte address/payload using the
// reference alphabet with a trailing 4-byte checksum, the first four
// bytes of SHA3-256(payload).
func EncodeBase58Check(payload Uint256) string {
	p := payload.Bytes()
	sum := sha3.Sum256(p[:])
	buf := make([]byte, 0, base58CheckPayloadLen+base58CheckChecksumLen)
	buf = append(buf, p[:]...)
	buf = append(buf, sum[:base58CheckChecksumLen]...)
	return base58.Encode(buf)
}

// DecodeBase58Check reverses EncodeBase58Check, failing on any
// non-alphabet character, a decoded length other than 36 bytes, or a
// checksum mismatch.
func DecodeBase58Check(s string) (Uint256, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Uint256{}, fmt.Errorf("base58check: %w", err)
	}
	if len(raw) != base58CheckPayloadLen+base58CheckChecksumLen {
		return Uint256{}, fmt.Errorf("base58check: want %d bytes, got %d", base58CheckPayloadLen+base58CheckChecksumLen, len(raw))
	}
	payload := raw[:base58CheckPayloadLen]
	wantSum := sha3.Sum256(payload)
	gotSum := raw[base58CheckPayloadLen:]
	for i := 0; i < base58CheckChecksumLen; i++ {
		if wantSum[i] != gotSum[i] {
			return Uint256{}, fmt.Errorf("base58check: checksum mismatch")
		}
	}
	return Uint256FromBytes(payload)
}
