package ledger

import (
	"crypto/ed25519"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

func publicKeyOf(addr primitives.Address) ed25519.PublicKey {
	b := addr.Bytes()
	return ed25519.PublicKey(b[:])
}

// Process applies b to the ledger, returning progress on acceptance
// or the specific reason it was rejected. Every check in the variant
// handlers below runs before any store mutation, so a non-progress
// result's surrounding store.Update always commits cleanly — with an
// empty diff for every result except fork, which commits exactly the
// evidence write to the forks table and nothing else.
func (l *Ledger) Process(b block.Block) (ProcessResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hash := b.Hash(l.signer)
	var result ProcessResult

	if err := l.store.Update(func(tx *store.Tx) error {
		r, err := l.processLocked(tx, hash, b)
		if err != nil {
			return err
		}
		result = r
		return nil
	}); err != nil {
		return "", err
	}

	l.logProcess(result, hash, b)
	return result, nil
}

func (l *Ledger) processLocked(tx *store.Tx, hash primitives.BlockHash, b block.Block) (ProcessResult, error) {
	if tx.ExistsBlock(hash) {
		return Old, nil
	}

	switch v := b.(type) {
	case *block.SendBlock:
		return l.processSend(tx, hash, v)
	case *block.ReceiveBlock:
		return l.processReceive(tx, hash, v)
	case *block.OpenBlock:
		return l.processOpen(tx, hash, v)
	case *block.ChangeBlock:
		return l.processChange(tx, hash, v)
	default:
		return BadSignature, nil
	}
}

func (l *Ledger) processSend(tx *store.Tx, hash primitives.BlockHash, sb *block.SendBlock) (ProcessResult, error) {
	if !tx.ExistsBlock(sb.PreviousH) {
		return GapPrevious, nil
	}
	account, err := accountOf(tx, sb.PreviousH)
	if err != nil {
		return "", err
	}

	if !verify(l.signer, publicKeyOf(account), hash, sb.Signature) {
		return BadSignature, nil
	}

	frontier, ok, err := tx.GetFrontier(account)
	if err != nil {
		return "", err
	}
	if !ok || !frontier.Head.Equal(sb.PreviousH) {
		if err := tx.PutFork(sb.Root(), sb); err != nil {
			return "", err
		}
		return Fork, nil
	}

	if sb.Balance.Greater(frontier.Balance) {
		return Overspend, nil
	}
	amount := frontier.Balance.Sub(sb.Balance)

	if err := tx.PutSuccessor(sb.PreviousH, hash); err != nil {
		return "", err
	}
	if err := tx.PutBlock(hash, sb); err != nil {
		return "", err
	}
	if err := tx.PutFrontier(account, store.Frontier{
		Head:           hash,
		Representative: frontier.Representative,
		Balance:        sb.Balance,
		Timestamp:      l.clock().Unix(),
	}); err != nil {
		return "", err
	}
	if err := tx.PutPending(hash, store.Pending{Source: account, Amount: amount, Destination: sb.Destination}); err != nil {
		return "", err
	}
	if err := tx.SubWeight(frontier.Representative, amount); err != nil {
		return "", err
	}
	if err := l.checksumUpdate(tx, account); err != nil {
		return "", err
	}
	return Progress, nil
}

func (l *Ledger) processReceive(tx *store.Tx, hash primitives.BlockHash, rb *block.ReceiveBlock) (ProcessResult, error) {
	if !tx.ExistsBlock(rb.PreviousH) {
		return GapPrevious, nil
	}
	account, err := accountOf(tx, rb.PreviousH)
	if err != nil {
		return "", err
	}

	if !verify(l.signer, publicKeyOf(account), hash, rb.Signature) {
		return BadSignature, nil
	}

	sourceBlock, ok, err := tx.GetBlock(rb.SourceH)
	if err != nil {
		return "", err
	}
	if !ok {
		return GapSource, nil
	}
	if _, isSend := sourceBlock.(*block.SendBlock); !isSend {
		return NotReceiveFromSend, nil
	}

	frontier, ok, err := tx.GetFrontier(account)
	if err != nil {
		return "", err
	}
	if !ok || !frontier.Head.Equal(rb.PreviousH) {
		if err := tx.PutFork(rb.Root(), rb); err != nil {
			return "", err
		}
		return Fork, nil
	}

	pending, ok, err := tx.GetPending(rb.SourceH)
	if err != nil {
		return "", err
	}
	if !ok || !pending.Destination.Equal(account) {
		return Overreceive, nil
	}
	if frontier.Balance.AddOverflows(pending.Amount) {
		return Overspend, nil
	}
	newBalance := frontier.Balance.Add(pending.Amount)

	if err := tx.PutSuccessor(rb.PreviousH, hash); err != nil {
		return "", err
	}
	if err := tx.PutBlock(hash, rb); err != nil {
		return "", err
	}
	if err := tx.PutFrontier(account, store.Frontier{
		Head:           hash,
		Representative: frontier.Representative,
		Balance:        newBalance,
		Timestamp:      l.clock().Unix(),
	}); err != nil {
		return "", err
	}
	if err := tx.DelPending(rb.SourceH); err != nil {
		return "", err
	}
	if err := tx.AddWeight(frontier.Representative, pending.Amount); err != nil {
		return "", err
	}
	if err := l.checksumUpdate(tx, account); err != nil {
		return "", err
	}
	return Progress, nil
}

func (l *Ledger) processOpen(tx *store.Tx, hash primitives.BlockHash, ob *block.OpenBlock) (ProcessResult, error) {
	sourceBlock, ok, err := tx.GetBlock(ob.SourceH)
	if err != nil {
		return "", err
	}
	if !ok {
		return GapSource, nil
	}
	if _, isSend := sourceBlock.(*block.SendBlock); !isSend {
		return NotReceiveFromSend, nil
	}

	pending, ok, err := tx.GetPending(ob.SourceH)
	if err != nil {
		return "", err
	}
	if !ok {
		return Overreceive, nil
	}
	account := pending.Destination
	ob.Account = account

	if !verify(l.signer, publicKeyOf(account), hash, ob.Signature) {
		return BadSignature, nil
	}

	if tx.ExistsFrontier(account) {
		if err := tx.PutFork(ob.Root(), ob); err != nil {
			return "", err
		}
		return Fork, nil
	}

	if err := tx.PutBlock(hash, ob); err != nil {
		return "", err
	}
	if err := tx.PutOpenAccount(hash, account); err != nil {
		return "", err
	}
	if err := tx.PutFrontier(account, store.Frontier{
		Head:           hash,
		Representative: ob.Representative,
		Balance:        pending.Amount,
		Timestamp:      l.clock().Unix(),
	}); err != nil {
		return "", err
	}
	if err := tx.DelPending(ob.SourceH); err != nil {
		return "", err
	}
	if err := tx.AddWeight(ob.Representative, pending.Amount); err != nil {
		return "", err
	}
	if err := l.checksumUpdate(tx, account); err != nil {
		return "", err
	}
	return Progress, nil
}

func (l *Ledger) processChange(tx *store.Tx, hash primitives.BlockHash, cb *block.ChangeBlock) (ProcessResult, error) {
	if !tx.ExistsBlock(cb.PreviousH) {
		return GapPrevious, nil
	}
	account, err := accountOf(tx, cb.PreviousH)
	if err != nil {
		return "", err
	}

	if !verify(l.signer, publicKeyOf(account), hash, cb.Signature) {
		return BadSignature, nil
	}

	frontier, ok, err := tx.GetFrontier(account)
	if err != nil {
		return "", err
	}
	if !ok || !frontier.Head.Equal(cb.PreviousH) {
		if err := tx.PutFork(cb.Root(), cb); err != nil {
			return "", err
		}
		return Fork, nil
	}

	if err := tx.PutSuccessor(cb.PreviousH, hash); err != nil {
		return "", err
	}
	if err := tx.PutBlock(hash, cb); err != nil {
		return "", err
	}
	if err := tx.PutFrontier(account, store.Frontier{
		Head:           hash,
		Representative: cb.Representative,
		Balance:        frontier.Balance,
		Timestamp:      l.clock().Unix(),
	}); err != nil {
		return "", err
	}
	if err := tx.SubWeight(frontier.Representative, frontier.Balance); err != nil {
		return "", err
	}
	if err := tx.AddWeight(cb.Representative, frontier.Balance); err != nil {
		return "", err
	}
	if err := l.checksumUpdate(tx, account); err != nil {
		return "", err
	}
	return Progress, nil
}

func verify(signer Signer, pub ed25519.PublicKey, hash primitives.BlockHash, sig primitives.Signature) bool {
	h := hash.Bytes()
	s := sig.Bytes()
	return signer.Verify(pub, h, s)
}
