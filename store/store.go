// Package store implements the seven-table persistent key-value
// schema the ledger is built on (plus two small supplemental tables,
// see successors.go and opens.go), backed by go.etcd.io/bbolt (the
// same ordered, transactional, single-writer/multi-reader embedded
// store the reference uses for its own chain state in
// node/store/db.go).
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAddresses      = []byte("addresses")
	bucketBlocks         = []byte("blocks")
	bucketPending        = []byte("pending")
	bucketRepresentation = []byte("representation")
	bucketForks          = []byte("forks")
	bucketBootstrap      = []byte("bootstrap")
	bucketChecksum       = []byte("checksum")
	bucketSuccessors     = []byte("successors")
	bucketOpenAccounts   = []byte("open_accounts")

	allBuckets = [][]byte{
		bucketAddresses,
		bucketBlocks,
		bucketPending,
		bucketRepresentation,
		bucketForks,
		bucketBootstrap,
		bucketChecksum,
		bucketSuccessors,
		bucketOpenAccounts,
	}
)

// Store wraps a single bbolt database holding the ledger's logical
// tables.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the store at path, ensuring all buckets
// exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("store: create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Tx is a single bbolt transaction scoped to all of the ledger's
// tables. All per-table accessors are methods on Tx so that a
// ledger.Process call can group its writes into one atomic unit, per
// §4.2's atomicity requirement.
type Tx struct {
	tx *bolt.Tx
}

// Update runs fn inside a read-write transaction, committing fn's
// writes as a single unit if it returns nil and rolling them all back
// otherwise.
func (s *Store) Update(fn func(*Tx) error) error {
	return s.db.Update(func(btx *bolt.Tx) error {
		return fn(&Tx{tx: btx})
	})
}

// View runs fn inside a read-only transaction.
func (s *Store) View(fn func(*Tx) error) error {
	return s.db.View(func(btx *bolt.Tx) error {
		return fn(&Tx{tx: btx})
	})
}

// BeginView starts a manual read-only transaction for callers that
// need an iterator to outlive a single View callback. The caller must
// call Rollback when done; bbolt read transactions never need commit.
func (s *Store) BeginView() (*Tx, error) {
	btx, err := s.db.Begin(false)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: btx}, nil
}

// Rollback releases a transaction started with BeginView.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) bucket(name []byte) *bolt.Bucket {
	return t.tx.Bucket(name)
}
