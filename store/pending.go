package store

import (
	"fmt"

	"lattice.dev/ledger/primitives"
)

// Pending is an unreceived send's record, keyed by the send's hash
// (§3).
type Pending struct {
	Source      primitives.Address
	Amount      primitives.Amount
	Destination primitives.Address
}

const pendingSize = 32 + 32 + 32

func encodePending(p Pending) []byte {
	out := make([]byte, pendingSize)
	src := p.Source.Bytes()
	amt := p.Amount.Bytes()
	dst := p.Destination.Bytes()
	copy(out[0:32], src[:])
	copy(out[32:64], amt[:])
	copy(out[64:96], dst[:])
	return out
}

func decodePending(b []byte) (Pending, error) {
	if len(b) != pendingSize {
		return Pending{}, fmt.Errorf("store: pending: want %d bytes, got %d", pendingSize, len(b))
	}
	src, err := primitives.Uint256FromBytes(b[0:32])
	if err != nil {
		return Pending{}, err
	}
	amt, err := primitives.Uint256FromBytes(b[32:64])
	if err != nil {
		return Pending{}, err
	}
	dst, err := primitives.Uint256FromBytes(b[64:96])
	if err != nil {
		return Pending{}, err
	}
	return Pending{Source: src, Amount: amt, Destination: dst}, nil
}

// PutPending records send as not-yet-received, keyed by its hash.
func (t *Tx) PutPending(sendHash primitives.BlockHash, p Pending) error {
	key := sendHash.Bytes()
	return t.bucket(bucketPending).Put(key[:], encodePending(p))
}

// GetPending reads a pending entry by its send's hash.
func (t *Tx) GetPending(sendHash primitives.BlockHash) (Pending, bool, error) {
	key := sendHash.Bytes()
	v := t.bucket(bucketPending).Get(key[:])
	if v == nil {
		return Pending{}, false, nil
	}
	p, err := decodePending(v)
	if err != nil {
		return Pending{}, false, err
	}
	return p, true, nil
}

// DelPending removes a pending entry once its matching receive/open
// has been applied.
func (t *Tx) DelPending(sendHash primitives.BlockHash) error {
	key := sendHash.Bytes()
	return t.bucket(bucketPending).Delete(key[:])
}

// ExistsPending reports whether a send is still unreceived.
func (t *Tx) ExistsPending(sendHash primitives.BlockHash) bool {
	key := sendHash.Bytes()
	return t.bucket(bucketPending).Get(key[:]) != nil
}
