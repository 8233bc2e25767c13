package ledger

import (
	"fmt"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/store"
)

// InitGenesis bootstraps an empty store with the one account allowed
// to exist without a preceding, ledger-visible send: it writes ob's
// frontier and representative weight directly, bypassing the normal
// pending-entry lookup Process requires, because the genesis account's
// funding send is a protocol constant rather than a block any account
// actually produced. Grounded on the reference's own
// node/store/init_genesis.go, which applies the chain's genesis block
// by writing the derived state straight into the store rather than
// running it through the ordinary per-block validation path.
func (l *Ledger) InitGenesis(ob *block.OpenBlock) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !ob.Account.Equal(l.genesis.Address) {
		return fmt.Errorf("ledger: InitGenesis: open block account does not match configured genesis address")
	}
	if !ob.SourceH.Equal(l.genesis.OpenSourceHash) {
		return fmt.Errorf("ledger: InitGenesis: open block source does not match configured genesis source")
	}

	hash := ob.Hash(l.signer)
	if !verify(l.signer, publicKeyOf(l.genesis.Address), hash, ob.Signature) {
		return fmt.Errorf("ledger: InitGenesis: signature does not verify")
	}

	return l.store.Update(func(tx *store.Tx) error {
		if tx.ExistsFrontier(l.genesis.Address) {
			return fmt.Errorf("ledger: InitGenesis: genesis account already initialized")
		}
		if err := tx.PutBlock(hash, ob); err != nil {
			return err
		}
		if err := tx.PutOpenAccount(hash, l.genesis.Address); err != nil {
			return err
		}
		if err := tx.PutFrontier(l.genesis.Address, store.Frontier{
			Head:           hash,
			Representative: ob.Representative,
			Balance:        l.genesis.Supply,
			Timestamp:      l.clock().Unix(),
		}); err != nil {
			return err
		}
		if err := tx.AddWeight(ob.Representative, l.genesis.Supply); err != nil {
			return err
		}
		return l.checksumUpdate(tx, l.genesis.Address)
	})
}
