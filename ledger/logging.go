package ledger

import (
	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

func (l *Ledger) logProcess(result ProcessResult, hash primitives.BlockHash, b block.Block) {
	l.log.WithFields(map[string]interface{}{
		"result":     string(result),
		"block_hash": primitives.EncodeHex256(hash),
		"block_type": b.Type().String(),
	}).Info("ledger.process")
}

func (l *Ledger) logRollback(hash primitives.BlockHash, result error) {
	fields := map[string]interface{}{
		"block_hash": primitives.EncodeHex256(hash),
	}
	if result != nil {
		l.log.WithFields(fields).WithError(result).Warn("ledger.rollback failed")
		return
	}
	l.log.WithFields(fields).Info("ledger.rollback")
}
