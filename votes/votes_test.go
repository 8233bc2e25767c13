package votes

import (
	"testing"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/crypto"
	"lattice.dev/ledger/primitives"
)

type fakeWeights map[primitives.Address]primitives.Uint256

func (f fakeWeights) Weight(addr primitives.Address) (primitives.Uint256, error) {
	return f[addr], nil
}

func newVoter(t *testing.T, seed uint64) (primitives.Address, func(primitives.BlockHash, uint64) Vote) {
	t.Helper()
	priv := primitives.Uint256FromUint64(seed + 1)
	sk, addr := crypto.ExpandPrivateKey(priv)
	var p crypto.StdProvider

	cast := func(blockHash primitives.BlockHash, sequence uint64) Vote {
		h := blockHash.Bytes()
		msg := make([]byte, 8+len(h))
		for i := 0; i < 8; i++ {
			msg[i] = byte(sequence >> (56 - 8*i))
		}
		copy(msg[8:], h[:])
		sigBytes := p.Sign(sk, p.Hash(msg))
		sig, _ := primitives.Uint512FromBytes(sigBytes[:])
		return Vote{Address: addr, Signature: sig, Sequence: sequence}
	}
	return addr, cast
}

func sampleCandidate(rep byte) *block.ChangeBlock {
	prev := primitives.Uint256FromUint64(1)
	repAddr := primitives.Uint256FromUint64(uint64(rep))
	return &block.ChangeBlock{Representative: repAddr, PreviousH: prev}
}

func TestVoteRejectsBadSignature(t *testing.T) {
	var signer crypto.StdProvider
	weights := fakeWeights{}
	voterAddr, cast := newVoter(t, 1)
	weights[voterAddr] = primitives.Uint256FromUint64(100)

	candidate := sampleCandidate(1)
	tally := New(candidate.Previous(), weights, signer)

	v := cast(candidate.Hash(signer), 1)
	v.Block = candidate
	v.Signature[0] ^= 0xff

	if tally.Vote(v) {
		t.Fatal("expected corrupted vote to be rejected")
	}
}

func TestVoteRejectsStaleSequence(t *testing.T) {
	var signer crypto.StdProvider
	weights := fakeWeights{}
	voterAddr, cast := newVoter(t, 1)
	weights[voterAddr] = primitives.Uint256FromUint64(100)

	candidate := sampleCandidate(1)
	tally := New(candidate.Previous(), weights, signer)

	v1 := cast(candidate.Hash(signer), 5)
	v1.Block = candidate
	if !tally.Vote(v1) {
		t.Fatal("expected first vote to be accepted")
	}

	v2 := cast(candidate.Hash(signer), 5)
	v2.Block = candidate
	if tally.Vote(v2) {
		t.Fatal("expected vote with non-increasing sequence to be rejected")
	}
}

func TestWinnerPicksGreatestWeight(t *testing.T) {
	var signer crypto.StdProvider
	weights := fakeWeights{}

	voterA, castA := newVoter(t, 1)
	voterB, castB := newVoter(t, 2)
	weights[voterA] = primitives.Uint256FromUint64(60)
	weights[voterB] = primitives.Uint256FromUint64(40)

	candidate1 := sampleCandidate(1)
	candidate2 := sampleCandidate(2)
	tally := New(candidate1.Previous(), weights, signer)

	vA := castA(candidate1.Hash(signer), 1)
	vA.Block = candidate1
	vB := castB(candidate2.Hash(signer), 1)
	vB.Block = candidate2

	if !tally.Vote(vA) || !tally.Vote(vB) {
		t.Fatal("expected both votes to be accepted")
	}

	winner, err := tally.Winner()
	if err != nil {
		t.Fatal(err)
	}
	winHash := winner.Hash(signer)
	wantHash := candidate1.Hash(signer)
	if !winHash.Equal(wantHash) {
		t.Fatalf("winner = %s, want candidate1 %s", primitives.EncodeHex256(winHash), primitives.EncodeHex256(wantHash))
	}
}

func TestFlipThresholdIsWinnerWeightWhenUnanimous(t *testing.T) {
	var signer crypto.StdProvider
	weights := fakeWeights{}
	voterAddr, cast := newVoter(t, 1)
	weights[voterAddr] = primitives.Uint256FromUint64(100)

	candidate := sampleCandidate(1)
	tally := New(candidate.Previous(), weights, signer)
	v := cast(candidate.Hash(signer), 1)
	v.Block = candidate
	tally.Vote(v)

	threshold, err := tally.FlipThreshold()
	if err != nil {
		t.Fatal(err)
	}
	want := primitives.Uint256FromUint64(100)
	if !threshold.Equal(want) {
		t.Fatalf("threshold = %s, want %s (the winner's full weight) with no competing candidate", threshold, want)
	}
}

func TestFlipThresholdNarrowsWithCompetitor(t *testing.T) {
	var signer crypto.StdProvider
	weights := fakeWeights{}

	voterA, castA := newVoter(t, 1)
	voterB, castB := newVoter(t, 2)
	weights[voterA] = primitives.Uint256FromUint64(70)
	weights[voterB] = primitives.Uint256FromUint64(30)

	candidate1 := sampleCandidate(1)
	candidate2 := sampleCandidate(2)
	tally := New(candidate1.Previous(), weights, signer)

	vA := castA(candidate1.Hash(signer), 1)
	vA.Block = candidate1
	vB := castB(candidate2.Hash(signer), 1)
	vB.Block = candidate2
	tally.Vote(vA)
	tally.Vote(vB)

	threshold, err := tally.FlipThreshold()
	if err != nil {
		t.Fatal(err)
	}
	want := primitives.Uint256FromUint64(40)
	if !threshold.Equal(want) {
		t.Fatalf("threshold = %s, want %s", threshold, want)
	}
}
