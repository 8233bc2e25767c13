// Package votes implements the advisory vote tally an external
// consensus layer uses to pick among competing candidates for a given
// chain root; the ledger itself never calls into this package (§4.5).
package votes

import (
	"crypto/ed25519"
	"sync"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/primitives"
)

// Signer is the verification surface a Tally needs, matching
// ledger.Signer's shape so the same crypto.StdProvider satisfies both
// without votes importing ledger or crypto directly.
type Signer interface {
	Hash(data ...[]byte) [32]byte
	Verify(pub ed25519.PublicKey, hash [32]byte, sig [64]byte) bool
}

// WeightSource reports the representation weight currently delegated
// to an address. *ledger.Ledger satisfies this via its Weight method.
type WeightSource interface {
	Weight(address primitives.Address) (primitives.Uint256, error)
}

// Vote is one representative's endorsement of a candidate block for a
// given root.
type Vote struct {
	Address   primitives.Address
	Signature primitives.Signature
	Sequence  uint64
	Block     block.Block
}

type voteRecord struct {
	sequence uint64
	block    block.Block
}

// Tally accumulates votes for a single root (a previous-block hash,
// or an opening account) and reports the current winner.
type Tally struct {
	root    primitives.BlockHash
	ledger  WeightSource
	signer  Signer
	mu      sync.Mutex
	byVoter map[primitives.Address]voteRecord
	last    block.Block
}

// New constructs a Tally for root. ledger is a non-owning reference
// used only to read representation weight at evaluation time.
func New(root primitives.BlockHash, ledger WeightSource, signer Signer) *Tally {
	return &Tally{
		root:    root,
		ledger:  ledger,
		signer:  signer,
		byVoter: make(map[primitives.Address]voteRecord),
	}
}

// Root returns the chain root this tally was constructed for.
func (t *Tally) Root() primitives.BlockHash {
	return t.root
}

// Vote records v if it verifies and is newer than any vote already
// recorded from v.Address, reporting whether it was accepted.
func (t *Tally) Vote(v Vote) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.byVoter[v.Address]; ok && v.Sequence <= existing.sequence {
		return false
	}

	blockHash := v.Block.Hash(t.signer)
	seqAndHash := sequenceMessage(v.Sequence, blockHash)
	sig := v.Signature.Bytes()
	pub := publicKeyOf(v.Address)
	if !t.signer.Verify(pub, t.signer.Hash(seqAndHash), sig) {
		return false
	}

	t.byVoter[v.Address] = voteRecord{sequence: v.Sequence, block: v.Block}
	return true
}

func sequenceMessage(sequence uint64, blockHash primitives.BlockHash) []byte {
	h := blockHash.Bytes()
	out := make([]byte, 8+len(h))
	for i := 0; i < 8; i++ {
		out[i] = byte(sequence >> (56 - 8*i))
	}
	copy(out[8:], h[:])
	return out
}

func publicKeyOf(addr primitives.Address) ed25519.PublicKey {
	b := addr.Bytes()
	return ed25519.PublicKey(b[:])
}

// candidateWeights sums the weight behind every distinct candidate
// block currently voted for.
func (t *Tally) candidateWeights() (map[string]primitives.Uint256, map[string]block.Block, error) {
	sums := make(map[string]primitives.Uint256)
	blocks := make(map[string]block.Block)
	for voter, rec := range t.byVoter {
		w, err := t.ledger.Weight(voter)
		if err != nil {
			return nil, nil, err
		}
		h := rec.block.Hash(t.signer)
		key := string(func() []byte { b := h.Bytes(); return b[:] }())
		sums[key] = sums[key].Add(w)
		blocks[key] = rec.block
	}
	return sums, blocks, nil
}

// Winner returns the candidate with the greatest summed weight,
// breaking ties by whichever candidate won last time.
func (t *Tally) Winner() (block.Block, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.winnerLocked()
}

func (t *Tally) winnerLocked() (block.Block, error) {
	sums, blocks, err := t.candidateWeights()
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return t.last, nil
	}

	var (
		bestKey    string
		bestWeight primitives.Uint256
		found      bool
	)
	for key, w := range sums {
		if !found || w.Greater(bestWeight) {
			bestKey, bestWeight, found = key, w, true
			continue
		}
		if w.Equal(bestWeight) && t.last != nil {
			lastHash := t.last.Hash(t.signer)
			lh := lastHash.Bytes()
			if key == string(lh[:]) {
				bestKey = key
			}
		}
	}
	t.last = blocks[bestKey]
	return t.last, nil
}

// FlipThreshold returns the minimum additional weight a competing
// candidate would need to overtake the current winner.
func (t *Tally) FlipThreshold() (primitives.Uint256, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	winner, err := t.winnerLocked()
	if err != nil {
		return primitives.Uint256{}, err
	}
	if winner == nil {
		return primitives.Uint256{}, nil
	}

	sums, _, err := t.candidateWeights()
	if err != nil {
		return primitives.Uint256{}, err
	}
	winHash := winner.Hash(t.signer)
	wh := winHash.Bytes()
	winWeight := sums[string(wh[:])]

	var runnerUp primitives.Uint256
	for key, w := range sums {
		if key == string(wh[:]) {
			continue
		}
		if w.Greater(runnerUp) {
			runnerUp = w
		}
	}
	if runnerUp.Greater(winWeight) || runnerUp.Equal(winWeight) {
		return primitives.Uint256{}, nil
	}
	return winWeight.Sub(runnerUp), nil
}
