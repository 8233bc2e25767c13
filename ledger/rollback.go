package ledger

import (
	"fmt"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

// Rollback undoes target and every block appended after it in its
// account chain, restoring the chain to the state it had immediately
// before target was processed. Each popped block's undo is its own
// atomic store transaction, per §4.3's "rollback must be atomic per
// block" — the multi-block walk itself is not a single transaction,
// so a crash partway through leaves a valid (if partially rolled
// back) chain rather than a torn one.
func (l *Ledger) Rollback(target primitives.BlockHash) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, stopAtPrevious, isOpen, err := l.rollbackTargetInfo(target)
	if err != nil {
		return err
	}

	for {
		done, err := l.rollbackOneStep(account, stopAtPrevious, isOpen)
		if err != nil {
			l.logRollback(target, err)
			return err
		}
		if done {
			break
		}
	}
	l.logRollback(target, nil)
	return nil
}

func (l *Ledger) rollbackTargetInfo(target primitives.BlockHash) (account, stopAtPrevious primitives.Address, isOpen bool, err error) {
	err = l.store.View(func(tx *store.Tx) error {
		b, ok, gerr := tx.GetBlock(target)
		if gerr != nil {
			return gerr
		}
		if !ok {
			return fmt.Errorf("ledger: rollback: %s not found", primitives.EncodeHex256(target))
		}
		acc, aerr := accountOf(tx, target)
		if aerr != nil {
			return aerr
		}
		account = acc
		if _, open := b.(*block.OpenBlock); open {
			isOpen = true
			return nil
		}
		stopAtPrevious = b.Previous()
		return nil
	})
	return account, stopAtPrevious, isOpen, err
}

// rollbackOneStep pops the current head of account's chain, reporting
// whether the chain has reached the rollback target's predecessor (or
// been fully emptied, for an open target).
func (l *Ledger) rollbackOneStep(account, stopAtPrevious primitives.Address, isOpen bool) (bool, error) {
	done := false
	err := l.store.Update(func(tx *store.Tx) error {
		frontier, ok, ferr := tx.GetFrontier(account)
		if ferr != nil {
			return ferr
		}
		if !ok {
			if isOpen {
				done = true
				return nil
			}
			return fmt.Errorf("ledger: rollback: account has no frontier")
		}
		if !isOpen && frontier.Head.Equal(stopAtPrevious) {
			done = true
			return nil
		}

		if rerr := l.undoHead(tx, account, frontier); rerr != nil {
			return rerr
		}
		if isOpen {
			_, stillOpen, gerr := tx.GetFrontier(account)
			if gerr != nil {
				return gerr
			}
			done = !stillOpen
		}
		return nil
	})
	return done, err
}

func (l *Ledger) undoHead(tx *store.Tx, account primitives.Address, frontier store.Frontier) error {
	headHash := frontier.Head
	b, ok, err := tx.GetBlock(headHash)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("ledger: rollback: head block %s missing", primitives.EncodeHex256(headHash))
	}

	switch v := b.(type) {
	case *block.SendBlock:
		pending, ok, perr := tx.GetPending(headHash)
		if perr != nil {
			return perr
		}
		if !ok {
			return fmt.Errorf("ledger: rollback: send %s already received, cannot undo", primitives.EncodeHex256(headHash))
		}
		priorBalance := frontier.Balance.Add(pending.Amount)
		if err := tx.PutFrontier(account, store.Frontier{
			Head:           v.PreviousH,
			Representative: frontier.Representative,
			Balance:        priorBalance,
			Timestamp:      l.clock().Unix(),
		}); err != nil {
			return err
		}
		if err := tx.DelPending(headHash); err != nil {
			return err
		}
		if err := tx.AddWeight(frontier.Representative, pending.Amount); err != nil {
			return err
		}
		if err := tx.DelSuccessor(v.PreviousH); err != nil {
			return err
		}
		if err := tx.DelBlock(headHash); err != nil {
			return err
		}
		return l.checksumUpdate(tx, account)

	case *block.ReceiveBlock:
		amount, aerr := amountOf(tx, v.SourceH)
		if aerr != nil {
			return aerr
		}
		if !tx.ExistsBlock(v.SourceH) {
			return fmt.Errorf("ledger: rollback: source %s missing", primitives.EncodeHex256(v.SourceH))
		}
		sender, serr := accountOf(tx, v.SourceH)
		if serr != nil {
			return serr
		}
		priorBalance := frontier.Balance.Sub(amount)
		if err := tx.PutFrontier(account, store.Frontier{
			Head:           v.PreviousH,
			Representative: frontier.Representative,
			Balance:        priorBalance,
			Timestamp:      l.clock().Unix(),
		}); err != nil {
			return err
		}
		if err := tx.PutPending(v.SourceH, store.Pending{Source: sender, Amount: amount, Destination: account}); err != nil {
			return err
		}
		if err := tx.SubWeight(frontier.Representative, amount); err != nil {
			return err
		}
		if err := tx.DelSuccessor(v.PreviousH); err != nil {
			return err
		}
		if err := tx.DelBlock(headHash); err != nil {
			return err
		}
		return l.checksumUpdate(tx, account)

	case *block.OpenBlock:
		amount, aerr := amountOf(tx, v.SourceH)
		if aerr != nil {
			return aerr
		}
		if !tx.ExistsBlock(v.SourceH) {
			return fmt.Errorf("ledger: rollback: source %s missing", primitives.EncodeHex256(v.SourceH))
		}
		sender, serr := accountOf(tx, v.SourceH)
		if serr != nil {
			return serr
		}
		if err := tx.PutPending(v.SourceH, store.Pending{Source: sender, Amount: amount, Destination: account}); err != nil {
			return err
		}
		if err := tx.SubWeight(v.Representative, amount); err != nil {
			return err
		}
		if err := tx.DelFrontier(account); err != nil {
			return err
		}
		if err := tx.DelOpenAccount(headHash); err != nil {
			return err
		}
		if err := tx.DelBlock(headHash); err != nil {
			return err
		}
		return l.checksumUpdate(tx, account)

	case *block.ChangeBlock:
		oldRep, rerr := representativeCalculatedOf(tx, v.PreviousH)
		if rerr != nil {
			return rerr
		}
		if err := tx.SubWeight(v.Representative, frontier.Balance); err != nil {
			return err
		}
		if err := tx.AddWeight(oldRep, frontier.Balance); err != nil {
			return err
		}
		if err := tx.PutFrontier(account, store.Frontier{
			Head:           v.PreviousH,
			Representative: oldRep,
			Balance:        frontier.Balance,
			Timestamp:      l.clock().Unix(),
		}); err != nil {
			return err
		}
		if err := tx.DelSuccessor(v.PreviousH); err != nil {
			return err
		}
		if err := tx.DelBlock(headHash); err != nil {
			return err
		}
		return l.checksumUpdate(tx, account)

	default:
		return fmt.Errorf("ledger: rollback: unknown block variant")
	}
}
