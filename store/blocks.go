package store

import (
	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

// PutBlock writes b under its own hash, with the byte-exact value
// §4.2 specifies: 1B type ‖ serialized block body. No extra context is
// stored alongside it — the owning account is resolved separately (see
// opens.go) and the successor link lives in its own table
// (successors.go), so the blocks table stays readable by any
// conformant implementation of the on-disk layout.
func (t *Tx) PutBlock(hash primitives.BlockHash, b block.Block) error {
	key := hash.Bytes()
	return t.bucket(bucketBlocks).Put(key[:], b.Serialize())
}

// GetBlock reads the block stored under hash.
func (t *Tx) GetBlock(hash primitives.BlockHash) (b block.Block, ok bool, err error) {
	key := hash.Bytes()
	v := t.bucket(bucketBlocks).Get(key[:])
	if v == nil {
		return nil, false, nil
	}
	b, err = block.DeserializeBlock(v)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// DelBlock removes a block (used only by Rollback).
func (t *Tx) DelBlock(hash primitives.BlockHash) error {
	key := hash.Bytes()
	return t.bucket(bucketBlocks).Delete(key[:])
}

// ExistsBlock reports whether hash names a stored block.
func (t *Tx) ExistsBlock(hash primitives.BlockHash) bool {
	key := hash.Bytes()
	return t.bucket(bucketBlocks).Get(key[:]) != nil
}
