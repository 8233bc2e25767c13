package store

import (
	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

// PutBootstrap stashes a block received out of order by an external
// sync process, keyed by its hash, until its dependencies arrive.
func (t *Tx) PutBootstrap(hash primitives.BlockHash, b block.Block) error {
	key := hash.Bytes()
	return t.bucket(bucketBootstrap).Put(key[:], b.Serialize())
}

// GetBootstrap reads a stashed block by hash.
func (t *Tx) GetBootstrap(hash primitives.BlockHash) (block.Block, bool, error) {
	key := hash.Bytes()
	v := t.bucket(bucketBootstrap).Get(key[:])
	if v == nil {
		return nil, false, nil
	}
	b, err := block.DeserializeBlock(v)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// DelBootstrap removes a stashed block once it has been applied.
func (t *Tx) DelBootstrap(hash primitives.BlockHash) error {
	key := hash.Bytes()
	return t.bucket(bucketBootstrap).Delete(key[:])
}

// ExistsBootstrap reports whether a block is stashed under hash.
func (t *Tx) ExistsBootstrap(hash primitives.BlockHash) bool {
	key := hash.Bytes()
	return t.bucket(bucketBootstrap).Get(key[:]) != nil
}
