package ledger

import (
	"fmt"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

// accountOf resolves the account a block belongs to by walking
// previous() back to the chain's open block, whose account was
// recorded in the open-accounts table when it was processed (an
// OpenBlock's wire body carries no account field of its own).
func accountOf(tx *store.Tx, hash primitives.BlockHash) (primitives.Address, error) {
	b, ok, err := tx.GetBlock(hash)
	if err != nil {
		return primitives.Address{}, err
	}
	if !ok {
		return primitives.Address{}, fmt.Errorf("ledger: account: %s not found", primitives.EncodeHex256(hash))
	}
	switch v := b.(type) {
	case *block.OpenBlock:
		account, ok, err := tx.GetOpenAccount(hash)
		if err != nil {
			return primitives.Address{}, err
		}
		if !ok {
			return primitives.Address{}, fmt.Errorf("ledger: account: open block %s has no recorded account", primitives.EncodeHex256(hash))
		}
		return account, nil
	case *block.SendBlock:
		return accountOf(tx, v.PreviousH)
	case *block.ReceiveBlock:
		return accountOf(tx, v.PreviousH)
	case *block.ChangeBlock:
		return accountOf(tx, v.PreviousH)
	default:
		return primitives.Address{}, fmt.Errorf("ledger: account: unknown block variant")
	}
}

func balanceOf(tx *store.Tx, hash primitives.BlockHash) (primitives.Balance, error) {
	b, ok, err := tx.GetBlock(hash)
	if err != nil {
		return primitives.Balance{}, err
	}
	if !ok {
		return primitives.Balance{}, fmt.Errorf("ledger: balance: %s not found", primitives.EncodeHex256(hash))
	}
	switch v := b.(type) {
	case *block.SendBlock:
		return v.Balance, nil
	case *block.ChangeBlock:
		return balanceOf(tx, v.PreviousH)
	case *block.ReceiveBlock:
		prevBal, err := balanceOf(tx, v.PreviousH)
		if err != nil {
			return primitives.Balance{}, err
		}
		amt, err := amountOf(tx, v.SourceH)
		if err != nil {
			return primitives.Balance{}, err
		}
		return prevBal.Add(amt), nil
	case *block.OpenBlock:
		return amountOf(tx, v.SourceH)
	default:
		return primitives.Balance{}, fmt.Errorf("ledger: balance: unknown block variant")
	}
}

func amountOf(tx *store.Tx, hash primitives.BlockHash) (primitives.Amount, error) {
	b, ok, err := tx.GetBlock(hash)
	if err != nil {
		return primitives.Amount{}, err
	}
	if !ok {
		return primitives.Amount{}, fmt.Errorf("ledger: amount: %s not found", primitives.EncodeHex256(hash))
	}
	switch v := b.(type) {
	case *block.SendBlock:
		prevBal, err := balanceOf(tx, v.PreviousH)
		if err != nil {
			return primitives.Amount{}, err
		}
		return prevBal.Sub(v.Balance), nil
	case *block.ReceiveBlock:
		return amountOf(tx, v.SourceH)
	case *block.OpenBlock:
		return amountOf(tx, v.SourceH)
	default:
		return primitives.Amount{}, fmt.Errorf("ledger: amount: change blocks have no amount")
	}
}

func representativeCalculatedOf(tx *store.Tx, hash primitives.BlockHash) (primitives.Address, error) {
	b, ok, err := tx.GetBlock(hash)
	if err != nil {
		return primitives.Address{}, err
	}
	if !ok {
		return primitives.Address{}, fmt.Errorf("ledger: representative: %s not found", primitives.EncodeHex256(hash))
	}
	switch v := b.(type) {
	case *block.OpenBlock:
		return v.Representative, nil
	case *block.ChangeBlock:
		return v.Representative, nil
	case *block.SendBlock:
		return representativeCalculatedOf(tx, v.PreviousH)
	case *block.ReceiveBlock:
		return representativeCalculatedOf(tx, v.PreviousH)
	default:
		return primitives.Address{}, fmt.Errorf("ledger: representative: unknown block variant")
	}
}

// Balance returns the chain balance at hash.
func (l *Ledger) Balance(hash primitives.BlockHash) (primitives.Balance, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out primitives.Balance
	err := l.store.View(func(tx *store.Tx) error {
		var err error
		out, err = balanceOf(tx, hash)
		return err
	})
	return out, err
}

// Amount returns the amount transferred by the send/receive/open at
// hash.
func (l *Ledger) Amount(hash primitives.BlockHash) (primitives.Amount, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out primitives.Amount
	err := l.store.View(func(tx *store.Tx) error {
		var err error
		out, err = amountOf(tx, hash)
		return err
	})
	return out, err
}

// Representative returns hash's account's representative: the cached
// value from the frontier if hash is the current head, or the walked
// value otherwise.
func (l *Ledger) Representative(hash primitives.BlockHash) (primitives.Address, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out primitives.Address
	err := l.store.View(func(tx *store.Tx) error {
		if !tx.ExistsBlock(hash) {
			return fmt.Errorf("ledger: representative: %s not found", primitives.EncodeHex256(hash))
		}
		account, err := accountOf(tx, hash)
		if err != nil {
			return err
		}
		frontier, ok, err := tx.GetFrontier(account)
		if err != nil {
			return err
		}
		if ok && frontier.Head.Equal(hash) {
			out = frontier.Representative
			return nil
		}
		out, err = representativeCalculatedOf(tx, hash)
		return err
	})
	return out, err
}

// RepresentativeCalculated always walks the chain backward rather
// than consulting the frontier cache, for use during rollback or
// against non-head hashes.
func (l *Ledger) RepresentativeCalculated(hash primitives.BlockHash) (primitives.Address, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out primitives.Address
	err := l.store.View(func(tx *store.Tx) error {
		var err error
		out, err = representativeCalculatedOf(tx, hash)
		return err
	})
	return out, err
}

// Weight returns the aggregate balance currently delegated to rep.
func (l *Ledger) Weight(rep primitives.Address) (primitives.Uint256, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out primitives.Uint256
	err := l.store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.GetWeight(rep)
		return err
	})
	return out, err
}

// Supply returns the sum of all live frontier balances.
func (l *Ledger) Supply() (primitives.Uint256, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total primitives.Uint256
	err := l.store.View(func(tx *store.Tx) error {
		it := tx.AddressIterator()
		for ok := it.SeekFirst(); ok; ok = it.Next() {
			f, err := it.Frontier()
			if err != nil {
				return err
			}
			total = total.Add(f.Balance)
		}
		return nil
	})
	return total, err
}

// Latest returns addr's current head block hash.
func (l *Ledger) Latest(addr primitives.Address) (primitives.BlockHash, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var (
		head primitives.BlockHash
		ok   bool
	)
	err := l.store.View(func(tx *store.Tx) error {
		f, exists, err := tx.GetFrontier(addr)
		if err != nil {
			return err
		}
		ok = exists
		if exists {
			head = f.Head
		}
		return nil
	})
	return head, ok, err
}

// AccountBalance returns addr's current balance.
func (l *Ledger) AccountBalance(addr primitives.Address) (primitives.Balance, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var (
		bal primitives.Balance
		ok  bool
	)
	err := l.store.View(func(tx *store.Tx) error {
		f, exists, err := tx.GetFrontier(addr)
		if err != nil {
			return err
		}
		ok = exists
		if exists {
			bal = f.Balance
		}
		return nil
	})
	return bal, ok, err
}

// Successor returns the hash of the block appended directly after
// hash in its account chain, if any. Supplements §4.3 with a query
// the original implementation exposes for chain traversal (walking
// forward from a known block) that the distilled spec does not name
// but does not exclude either.
func (l *Ledger) Successor(hash primitives.BlockHash) (primitives.BlockHash, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var (
		succ primitives.BlockHash
		ok   bool
	)
	err := l.store.View(func(tx *store.Tx) error {
		if !tx.ExistsBlock(hash) {
			return fmt.Errorf("ledger: successor: %s not found", primitives.EncodeHex256(hash))
		}
		var err error
		succ, ok, err = tx.GetSuccessor(hash)
		return err
	})
	return succ, ok, err
}

// ChecksumRange returns the checksum covering [begin, end). The
// ledger currently tracks a single region spanning the whole address
// space (see checksum.go), so begin/end are accepted for forward
// compatibility with a future multi-region partitioning but do not
// yet narrow the result.
func (l *Ledger) ChecksumRange(begin, end primitives.Address) (primitives.Checksum, error) {
	return l.Checksum()
}
