package ledger

import (
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

// Signer is the hashing/verification surface the ledger needs. It is
// satisfied by crypto.StdProvider without that package being imported
// here, keeping ledger's in-module dependencies to the store, block
// and primitives packages.
type Signer interface {
	Hash(data ...[]byte) [32]byte
	Verify(pub ed25519.PublicKey, hash [32]byte, sig [64]byte) bool
}

// Genesis names the one account the ledger is allowed to materialize
// without a preceding send: the address and the hash of the opening
// send it is meant to receive. It carries no private key material —
// per §9, the ledger holds no hidden singletons, so signing the
// genesis open block is the caller's concern, done once at InitGenesis
// time with whatever key the deployment chooses.
type Genesis struct {
	Address        primitives.Address
	OpenSourceHash primitives.BlockHash
	Representative primitives.Address
	Supply         primitives.Uint256
}

// Ledger applies and rolls back blocks against a store, enforcing
// §4.3's conflict detection and bookkeeping.
type Ledger struct {
	store   *store.Store
	genesis Genesis
	signer  Signer
	clock   func() time.Time
	log     logrus.FieldLogger

	mu sync.RWMutex
}

// New constructs a Ledger over an already-open store. The store must
// either already contain the genesis account's frontier (from a prior
// run) or be bootstrapped with InitGenesis before any other block is
// processed.
func New(s *store.Store, genesis Genesis, signer Signer) *Ledger {
	return &Ledger{
		store:   s,
		genesis: genesis,
		signer:  signer,
		clock:   time.Now,
		log:     logrus.StandardLogger(),
	}
}

// SetLogger overrides the default standard logrus logger, e.g. with a
// logger scoped to a particular node instance.
func (l *Ledger) SetLogger(log logrus.FieldLogger) {
	l.log = log
}
