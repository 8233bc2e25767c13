package store

import (
	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

// PutFork records a competing block observed on an already-extended
// previous hash. Forks are kept as evidence, not consensus input.
func (t *Tx) PutFork(previous primitives.BlockHash, competing block.Block) error {
	key := previous.Bytes()
	return t.bucket(bucketForks).Put(key[:], competing.Serialize())
}

// GetFork reads the recorded competing block for previous, if any.
func (t *Tx) GetFork(previous primitives.BlockHash) (block.Block, bool, error) {
	key := previous.Bytes()
	v := t.bucket(bucketForks).Get(key[:])
	if v == nil {
		return nil, false, nil
	}
	b, err := block.DeserializeBlock(v)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// DelFork removes a fork record.
func (t *Tx) DelFork(previous primitives.BlockHash) error {
	key := previous.Bytes()
	return t.bucket(bucketForks).Delete(key[:])
}

// ExistsFork reports whether a fork has been recorded for previous.
func (t *Tx) ExistsFork(previous primitives.BlockHash) bool {
	key := previous.Bytes()
	return t.bucket(bucketForks).Get(key[:]) != nil
}
