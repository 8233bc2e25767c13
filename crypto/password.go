package crypto

import "golang.org/x/crypto/sha3"

// passwordDigestInputBytes is the number of input bytes absorbed
// before the password digest is finalized.
const passwordDigestInputBytes = 1024

// DigestPassword implements the reference's password-to-key digest:
// feed the password's bytes into SHA3-256, repeating the password as
// needed, until 1024 input bytes have been absorbed, then finalize to
// 256 bits.
func DigestPassword(password []byte) [32]byte {
	if len(password) == 0 {
		password = []byte{0}
	}
	h := sha3.New256()
	fed := 0
	for fed < passwordDigestInputBytes {
		n := passwordDigestInputBytes - fed
		if n > len(password) {
			n = len(password)
		}
		h.Write(password[:n])
		fed += n
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
