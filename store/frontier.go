package store

import (
	"encoding/binary"
	"fmt"

	"lattice.dev/ledger/primitives"
)

// Frontier is an account's head record: the per-account row of the
// addresses table (§3, §4.2).
type Frontier struct {
	Head           primitives.BlockHash
	Representative primitives.Address
	Balance        primitives.Balance
	Timestamp      int64
}

const frontierSize = 32 + 32 + 32 + 8

func encodeFrontier(f Frontier) []byte {
	out := make([]byte, frontierSize)
	head := f.Head.Bytes()
	rep := f.Representative.Bytes()
	bal := f.Balance.Bytes()
	copy(out[0:32], head[:])
	copy(out[32:64], rep[:])
	copy(out[64:96], bal[:])
	binary.BigEndian.PutUint64(out[96:104], uint64(f.Timestamp))
	return out
}

func decodeFrontier(b []byte) (Frontier, error) {
	if len(b) != frontierSize {
		return Frontier{}, fmt.Errorf("store: frontier: want %d bytes, got %d", frontierSize, len(b))
	}
	head, err := primitives.Uint256FromBytes(b[0:32])
	if err != nil {
		return Frontier{}, err
	}
	rep, err := primitives.Uint256FromBytes(b[32:64])
	if err != nil {
		return Frontier{}, err
	}
	bal, err := primitives.Uint256FromBytes(b[64:96])
	if err != nil {
		return Frontier{}, err
	}
	ts := int64(binary.BigEndian.Uint64(b[96:104]))
	return Frontier{Head: head, Representative: rep, Balance: bal, Timestamp: ts}, nil
}

// PutFrontier writes addr's frontier record.
func (t *Tx) PutFrontier(addr primitives.Address, f Frontier) error {
	key := addr.Bytes()
	return t.bucket(bucketAddresses).Put(key[:], encodeFrontier(f))
}

// GetFrontier reads addr's frontier record.
func (t *Tx) GetFrontier(addr primitives.Address) (Frontier, bool, error) {
	key := addr.Bytes()
	v := t.bucket(bucketAddresses).Get(key[:])
	if v == nil {
		return Frontier{}, false, nil
	}
	f, err := decodeFrontier(v)
	if err != nil {
		return Frontier{}, false, err
	}
	return f, true, nil
}

// DelFrontier removes addr's frontier record.
func (t *Tx) DelFrontier(addr primitives.Address) error {
	key := addr.Bytes()
	return t.bucket(bucketAddresses).Delete(key[:])
}

// ExistsFrontier reports whether addr has an open account chain.
func (t *Tx) ExistsFrontier(addr primitives.Address) bool {
	key := addr.Bytes()
	return t.bucket(bucketAddresses).Get(key[:]) != nil
}
