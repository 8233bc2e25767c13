package store

import (
	bolt "go.etcd.io/bbolt"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

// AddressIterator walks the addresses table in lexicographic key
// order. It borrows t's read view at construction and is invalidated
// by writes to the addresses table in that same transaction.
type AddressIterator struct {
	cur *bolt.Cursor
	key []byte
	val []byte
}

// AddressIterator constructs a forward-only cursor over the addresses
// table.
func (t *Tx) AddressIterator() *AddressIterator {
	return &AddressIterator{cur: t.bucket(bucketAddresses).Cursor()}
}

// SeekFirst positions the iterator at the lexicographically smallest
// address, reporting whether the table is non-empty.
func (it *AddressIterator) SeekFirst() bool {
	it.key, it.val = it.cur.First()
	return it.key != nil
}

// SeekLast positions the iterator at the lexicographically largest
// address.
func (it *AddressIterator) SeekLast() bool {
	it.key, it.val = it.cur.Last()
	return it.key != nil
}

// Seek positions the iterator at the first address >= addr.
func (it *AddressIterator) Seek(addr primitives.Address) bool {
	k := addr.Bytes()
	it.key, it.val = it.cur.Seek(k[:])
	return it.key != nil
}

// Next advances the iterator, reporting whether a further entry
// exists.
func (it *AddressIterator) Next() bool {
	it.key, it.val = it.cur.Next()
	return it.key != nil
}

// Valid reports whether the iterator currently references an entry.
func (it *AddressIterator) Valid() bool {
	return it.key != nil
}

// Address returns the address at the current position.
func (it *AddressIterator) Address() primitives.Address {
	a, _ := primitives.Uint256FromBytes(it.key)
	return a
}

// Frontier returns the frontier record at the current position.
func (it *AddressIterator) Frontier() (Frontier, error) {
	return decodeFrontier(it.val)
}

// BlockIterator walks the blocks table in lexicographic hash order.
type BlockIterator struct {
	cur *bolt.Cursor
	key []byte
	val []byte
}

// BlockIterator constructs a forward-only cursor over the blocks
// table.
func (t *Tx) BlockIterator() *BlockIterator {
	return &BlockIterator{cur: t.bucket(bucketBlocks).Cursor()}
}

func (it *BlockIterator) SeekFirst() bool {
	it.key, it.val = it.cur.First()
	return it.key != nil
}

func (it *BlockIterator) SeekLast() bool {
	it.key, it.val = it.cur.Last()
	return it.key != nil
}

func (it *BlockIterator) Seek(hash primitives.BlockHash) bool {
	k := hash.Bytes()
	it.key, it.val = it.cur.Seek(k[:])
	return it.key != nil
}

func (it *BlockIterator) Next() bool {
	it.key, it.val = it.cur.Next()
	return it.key != nil
}

func (it *BlockIterator) Valid() bool {
	return it.key != nil
}

// Hash returns the block hash at the current position.
func (it *BlockIterator) Hash() primitives.BlockHash {
	h, _ := primitives.Uint256FromBytes(it.key)
	return h
}

// Block decodes the block at the current position.
func (it *BlockIterator) Block() (block.Block, error) {
	return block.DeserializeBlock(it.val)
}
