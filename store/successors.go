package store

import "lattice.dev/ledger/primitives"

// Successors maps a block hash to whichever block was appended
// directly after it in the same account chain, letting Ledger.Successor
// find "the next block" in O(1) without a table scan. Rollback walks
// back from the frontier head and only removes these links.
// Grounded on the reference's own block_store, which keeps this exact
// mapping in a dedicated successors table ("Tracking successors for
// bootstrapping") separate from blocks, rather than folding it into
// the block row itself.

// PutSuccessor records that successor directly follows hash.
func (t *Tx) PutSuccessor(hash, successor primitives.BlockHash) error {
	key := hash.Bytes()
	val := successor.Bytes()
	return t.bucket(bucketSuccessors).Put(key[:], val[:])
}

// GetSuccessor returns the block that follows hash, if any.
func (t *Tx) GetSuccessor(hash primitives.BlockHash) (primitives.BlockHash, bool, error) {
	key := hash.Bytes()
	v := t.bucket(bucketSuccessors).Get(key[:])
	if v == nil {
		return primitives.BlockHash{}, false, nil
	}
	successor, err := primitives.Uint256FromBytes(v)
	if err != nil {
		return primitives.BlockHash{}, false, err
	}
	return successor, true, nil
}

// DelSuccessor removes the successor link recorded for hash, if any.
func (t *Tx) DelSuccessor(hash primitives.BlockHash) error {
	key := hash.Bytes()
	return t.bucket(bucketSuccessors).Delete(key[:])
}
