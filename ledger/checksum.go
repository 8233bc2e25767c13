package ledger

import (
	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

// checksumRegion and checksumDepth name the single opaque region this
// ledger maintains: §9 leaves the address-space partitioning of the
// checksum tree unspecified, and nothing in the retrieval pack grounds
// a richer scheme, so the whole address space is treated as one
// region at depth zero.
const (
	checksumRegion uint64 = 0
	checksumDepth  byte   = 0
)

// checksumUpdate XORs account into the tracked checksum region. It is
// called once for every block applied or undone, so an account touched
// an even number of times cancels out of the sum.
func (l *Ledger) checksumUpdate(tx *store.Tx, account primitives.Address) error {
	cur, err := tx.GetChecksum(checksumRegion, checksumDepth)
	if err != nil {
		return err
	}
	return tx.PutChecksum(checksumRegion, checksumDepth, cur.Xor(account))
}

// Checksum returns the current tamper-evident digest over the tracked
// region.
func (l *Ledger) Checksum() (primitives.Checksum, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var sum primitives.Checksum
	err := l.store.View(func(tx *store.Tx) error {
		var err error
		sum, err = tx.GetChecksum(checksumRegion, checksumDepth)
		return err
	})
	return sum, err
}
