package store

import (
	"encoding/binary"

	"lattice.dev/ledger/primitives"
)

func checksumKey(region uint64, depth byte) []byte {
	key := make([]byte, 9)
	binary.BigEndian.PutUint64(key[0:8], region)
	key[8] = depth
	return key
}

// PutChecksum writes the XOR checksum for (region, depth).
func (t *Tx) PutChecksum(region uint64, depth byte, sum primitives.Checksum) error {
	val := sum.Bytes()
	return t.bucket(bucketChecksum).Put(checksumKey(region, depth), val[:])
}

// GetChecksum reads the checksum for (region, depth), or the zero
// checksum if it has never been computed.
func (t *Tx) GetChecksum(region uint64, depth byte) (primitives.Checksum, error) {
	v := t.bucket(bucketChecksum).Get(checksumKey(region, depth))
	if v == nil {
		return primitives.Checksum{}, nil
	}
	return primitives.Uint256FromBytes(v)
}

// DelChecksum removes a checksum row.
func (t *Tx) DelChecksum(region uint64, depth byte) error {
	return t.bucket(bucketChecksum).Delete(checksumKey(region, depth))
}
