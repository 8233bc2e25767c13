// Package ledger implements the block-lattice state machine: applying
// and rolling back send/receive/open/change blocks against the
// store's seven tables, with full double-spend, double-receive, and
// fork detection (§4.3).
package ledger

// ProcessResult reports the outcome of processing a single block. It
// is a plain value, not an error — most results (fork, overspend,
// gap_previous, ...) describe an orderly rejection the caller is
// expected to branch on, not an I/O failure. Genuine I/O failures
// (store corruption, codec errors) are still returned as a distinct
// error, per §7's two-taxonomy error design.
type ProcessResult string

const (
	// Progress means the block was newly accepted.
	Progress ProcessResult = "progress"
	// BadSignature means the signature did not verify.
	BadSignature ProcessResult = "bad_signature"
	// Old means the block's hash is already present in the blocks table.
	Old ProcessResult = "old"
	// Overspend means a send's new balance exceeds its previous
	// balance, or a receive's balance computation overflows.
	Overspend ProcessResult = "overspend"
	// Overreceive means a receive/open's source is not a pending
	// entry (already received, or never sent).
	Overreceive ProcessResult = "overreceive"
	// Fork means a different block already extends the same previous
	// hash (or the same account, for open).
	Fork ProcessResult = "fork"
	// GapPrevious means previous is not present in the store.
	GapPrevious ProcessResult = "gap_previous"
	// GapSource means source is not present in the store.
	GapSource ProcessResult = "gap_source"
	// NotReceiveFromSend means source exists but is not a send block.
	NotReceiveFromSend ProcessResult = "not_receive_from_send"
)
