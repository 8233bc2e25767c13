package store

import "lattice.dev/ledger/primitives"

// OpenAccounts maps an open block's hash to the account it opened.
// An OpenBlock's wire body carries no account field (§4.4: the account
// is resolved from the pending entry it receives, which is deleted
// once consumed), so once an open block is no longer the newest thing
// on its chain there is nothing in the blocks table that names its
// account. This table is the one discrete, addresses-sized lookup
// needed to recover it; every other block on a chain resolves its
// account by walking previous() back to its chain's open block (see
// ledger's accountOf), so only open blocks need an entry here.

// PutOpenAccount records that hash opened account's chain.
func (t *Tx) PutOpenAccount(hash primitives.BlockHash, account primitives.Address) error {
	key := hash.Bytes()
	val := account.Bytes()
	return t.bucket(bucketOpenAccounts).Put(key[:], val[:])
}

// GetOpenAccount returns the account hash opened, if hash names an
// open block this store has recorded.
func (t *Tx) GetOpenAccount(hash primitives.BlockHash) (primitives.Address, bool, error) {
	key := hash.Bytes()
	v := t.bucket(bucketOpenAccounts).Get(key[:])
	if v == nil {
		return primitives.Address{}, false, nil
	}
	account, err := primitives.Uint256FromBytes(v)
	if err != nil {
		return primitives.Address{}, false, err
	}
	return account, true, nil
}

// DelOpenAccount removes the record for hash (used only by Rollback).
func (t *Tx) DelOpenAccount(hash primitives.BlockHash) error {
	key := hash.Bytes()
	return t.bucket(bucketOpenAccounts).Delete(key[:])
}
