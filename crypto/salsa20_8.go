package crypto

import "encoding/binary"

// salsa20Core8 is the 8-round Salsa20 core permutation (4 double
// rounds of the standard quarter-round network, little-endian words,
// feed-forward addition), applied here as a keyless bit-mixing
// function over a full 512-bit block rather than as a stream cipher.
// golang.org/x/crypto/salsa20/salsa only exports the 20-round Core
// with no round-count parameter, so this is reimplemented directly
// from the public quarter-round definition; see DESIGN.md.
func salsa20Core8(block *[16]uint32) {
	x := *block
	for i := 0; i < 4; i++ {
		// column round
		x[4] ^= rotl(x[0]+x[12], 7)
		x[8] ^= rotl(x[4]+x[0], 9)
		x[12] ^= rotl(x[8]+x[4], 13)
		x[0] ^= rotl(x[12]+x[8], 18)

		x[9] ^= rotl(x[5]+x[1], 7)
		x[13] ^= rotl(x[9]+x[5], 9)
		x[1] ^= rotl(x[13]+x[9], 13)
		x[5] ^= rotl(x[1]+x[13], 18)

		x[14] ^= rotl(x[10]+x[6], 7)
		x[2] ^= rotl(x[14]+x[10], 9)
		x[6] ^= rotl(x[2]+x[14], 13)
		x[10] ^= rotl(x[6]+x[2], 18)

		x[3] ^= rotl(x[15]+x[11], 7)
		x[7] ^= rotl(x[3]+x[15], 9)
		x[11] ^= rotl(x[7]+x[3], 13)
		x[15] ^= rotl(x[11]+x[7], 18)

		// row round
		x[1] ^= rotl(x[0]+x[3], 7)
		x[2] ^= rotl(x[1]+x[0], 9)
		x[3] ^= rotl(x[2]+x[1], 13)
		x[0] ^= rotl(x[3]+x[2], 18)

		x[6] ^= rotl(x[5]+x[4], 7)
		x[7] ^= rotl(x[6]+x[5], 9)
		x[4] ^= rotl(x[7]+x[6], 13)
		x[5] ^= rotl(x[4]+x[7], 18)

		x[11] ^= rotl(x[10]+x[9], 7)
		x[8] ^= rotl(x[11]+x[10], 9)
		x[9] ^= rotl(x[8]+x[11], 13)
		x[10] ^= rotl(x[9]+x[8], 18)

		x[12] ^= rotl(x[15]+x[14], 7)
		x[13] ^= rotl(x[12]+x[15], 9)
		x[14] ^= rotl(x[13]+x[12], 13)
		x[15] ^= rotl(x[14]+x[13], 18)
	}
	for i := range x {
		x[i] += block[i]
	}
	*block = x
}

func rotl(v uint32, n uint) uint32 {
	return v<<n | v>>(32-n)
}

// salsa20_8Block512 runs the permutation over a raw 64-byte block.
func salsa20_8Block512(in [64]byte) [64]byte {
	var words [16]uint32
	for i := 0; i < 16; i++ {
		words[i] = binary.LittleEndian.Uint32(in[i*4 : i*4+4])
	}
	salsa20Core8(&words)
	var out [64]byte
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], words[i])
	}
	return out
}
