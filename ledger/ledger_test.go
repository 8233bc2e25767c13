package ledger

import (
	"path/filepath"
	"testing"

	"lattice.dev/ledger/block"
	"lattice.dev/ledger/crypto"
	"lattice.dev/ledger/primitives"
	"lattice.dev/ledger/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newKeypair(t *testing.T, seed uint64) (primitives.Address, signFunc) {
	t.Helper()
	priv := primitives.Uint256FromUint64(seed + 1)
	sk, addr := crypto.ExpandPrivateKey(priv)
	var p crypto.StdProvider
	sign := func(hash primitives.BlockHash) primitives.Signature {
		h := hash.Bytes()
		sig := p.Sign(sk, h)
		s, _ := primitives.Uint512FromBytes(sig[:])
		return s
	}
	return addr, sign
}

type signFunc func(primitives.BlockHash) primitives.Signature

func setupGenesis(t *testing.T) (*Ledger, primitives.Address, signFunc, primitives.BlockHash, primitives.Uint256) {
	t.Helper()
	s := newStore(t)
	var signer crypto.StdProvider

	genesisAddr, genesisSign := newKeypair(t, 1)
	openSource := primitives.Uint256FromUint64(0xdeadbeef)
	supply := primitives.Uint256FromUint64(1_000_000)

	l := New(s, Genesis{
		Address:        genesisAddr,
		OpenSourceHash: openSource,
		Representative: genesisAddr,
		Supply:         supply,
	}, signer)

	ob := &block.OpenBlock{Representative: genesisAddr, SourceH: openSource, Account: genesisAddr}
	hash := ob.Hash(signer)
	ob.Signature = genesisSign(hash)

	if err := l.InitGenesis(ob); err != nil {
		t.Fatalf("InitGenesis: %v", err)
	}

	genesisOpenHash := ob.Hash(signer)
	return l, genesisAddr, genesisSign, genesisOpenHash, supply
}

func TestGenesisInitialBalance(t *testing.T) {
	l, genesisAddr, _, _, supply := setupGenesis(t)
	bal, ok, err := l.AccountBalance(genesisAddr)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected genesis frontier to exist")
	}
	if !bal.Equal(supply) {
		t.Fatalf("genesis balance = %s, want %s", bal, supply)
	}
}

func TestSendReceiveOpenHappyPath(t *testing.T) {
	l, genesisAddr, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider

	aliceAddr, aliceSign := newKeypair(t, 2)
	amount := primitives.Uint256FromUint64(100)
	newGenesisBalance := supply.Sub(amount)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: newGenesisBalance}
	sendHash := sb.Hash(signer)
	sb.Signature = genesisSign(sendHash)

	res, err := l.Process(sb)
	if err != nil {
		t.Fatalf("process send: %v", err)
	}
	if res != Progress {
		t.Fatalf("send result = %s, want progress", res)
	}

	ob := &block.OpenBlock{Representative: aliceAddr, SourceH: sendHash}
	openHash := ob.Hash(signer)
	ob.Signature = aliceSign(openHash)

	res, err = l.Process(ob)
	if err != nil {
		t.Fatalf("process open: %v", err)
	}
	if res != Progress {
		t.Fatalf("open result = %s, want progress", res)
	}

	aliceBal, ok, err := l.AccountBalance(aliceAddr)
	if err != nil || !ok {
		t.Fatalf("alice balance: ok=%v err=%v", ok, err)
	}
	if !aliceBal.Equal(amount) {
		t.Fatalf("alice balance = %s, want %s", aliceBal, amount)
	}

	genesisBal, _, err := l.AccountBalance(genesisAddr)
	if err != nil {
		t.Fatal(err)
	}
	if !genesisBal.Equal(newGenesisBalance) {
		t.Fatalf("genesis balance = %s, want %s", genesisBal, newGenesisBalance)
	}

	total, err := l.Supply()
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(supply) {
		t.Fatalf("supply = %s, want %s (conservation violated)", total, supply)
	}
}

func TestDoubleSpendIsFork(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)
	bobAddr, _ := newKeypair(t, 3)

	sb1 := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	h1 := sb1.Hash(signer)
	sb1.Signature = genesisSign(h1)
	if res, err := l.Process(sb1); err != nil || res != Progress {
		t.Fatalf("first send: res=%s err=%v", res, err)
	}

	sb2 := &block.SendBlock{Destination: bobAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(2))}
	h2 := sb2.Hash(signer)
	sb2.Signature = genesisSign(h2)
	res, err := l.Process(sb2)
	if err != nil {
		t.Fatalf("second send: %v", err)
	}
	if res != Fork {
		t.Fatalf("second send result = %s, want fork", res)
	}
}

func TestOldBlockRejected(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	h := sb.Hash(signer)
	sb.Signature = genesisSign(h)
	if res, err := l.Process(sb); err != nil || res != Progress {
		t.Fatalf("first process: res=%s err=%v", res, err)
	}
	res, err := l.Process(sb)
	if err != nil {
		t.Fatal(err)
	}
	if res != Old {
		t.Fatalf("resubmitted block result = %s, want old", res)
	}
}

func TestBadSignatureRejected(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	h := sb.Hash(signer)
	sb.Signature = genesisSign(h)
	// corrupt the signature
	sb.Signature[0] ^= 0xff

	res, err := l.Process(sb)
	if err != nil {
		t.Fatal(err)
	}
	if res != BadSignature {
		t.Fatalf("result = %s, want bad_signature", res)
	}
}

func TestGapPrevious(t *testing.T) {
	l, _, genesisSign, _, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)

	bogusPrevious := primitives.Uint256FromUint64(0xffffffff)
	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: bogusPrevious, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	h := sb.Hash(signer)
	sb.Signature = genesisSign(h)

	res, err := l.Process(sb)
	if err != nil {
		t.Fatal(err)
	}
	if res != GapPrevious {
		t.Fatalf("result = %s, want gap_previous", res)
	}
}

func TestOverreceiveRejected(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, aliceSign := newKeypair(t, 2)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	sendHash := sb.Hash(signer)
	sb.Signature = genesisSign(sendHash)
	if res, err := l.Process(sb); err != nil || res != Progress {
		t.Fatalf("send: res=%s err=%v", res, err)
	}

	ob := &block.OpenBlock{Representative: aliceAddr, SourceH: sendHash}
	openHash := ob.Hash(signer)
	ob.Signature = aliceSign(openHash)
	if res, err := l.Process(ob); err != nil || res != Progress {
		t.Fatalf("open: res=%s err=%v", res, err)
	}

	// bob tries to open using the same already-received send
	bobAddr, bobSign := newKeypair(t, 3)
	ob2 := &block.OpenBlock{Representative: bobAddr, SourceH: sendHash}
	openHash2 := ob2.Hash(signer)
	ob2.Signature = bobSign(openHash2)

	res, err := l.Process(ob2)
	if err != nil {
		t.Fatal(err)
	}
	if res != Overreceive {
		t.Fatalf("result = %s, want overreceive", res)
	}
}

func TestOverspendRejected(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Add(primitives.Uint256FromUint64(1))}
	h := sb.Hash(signer)
	sb.Signature = genesisSign(h)

	res, err := l.Process(sb)
	if err != nil {
		t.Fatal(err)
	}
	if res != Overspend {
		t.Fatalf("result = %s, want overspend", res)
	}
}

func TestGapSourceOnReceive(t *testing.T) {
	l, _, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, aliceSign := newKeypair(t, 2)

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: supply.Sub(primitives.Uint256FromUint64(1))}
	sendHash := sb.Hash(signer)
	sb.Signature = genesisSign(sendHash)
	if res, err := l.Process(sb); err != nil || res != Progress {
		t.Fatalf("send: res=%s err=%v", res, err)
	}

	ob := &block.OpenBlock{Representative: aliceAddr, SourceH: sendHash}
	openHash := ob.Hash(signer)
	ob.Signature = aliceSign(openHash)
	if res, err := l.Process(ob); err != nil || res != Progress {
		t.Fatalf("open: res=%s err=%v", res, err)
	}

	bogusSource := primitives.Uint256FromUint64(0xfeedface)
	rb := &block.ReceiveBlock{PreviousH: openHash, SourceH: bogusSource}
	h := rb.Hash(signer)
	rb.Signature = aliceSign(h)

	res, err := l.Process(rb)
	if err != nil {
		t.Fatal(err)
	}
	if res != GapSource {
		t.Fatalf("result = %s, want gap_source", res)
	}
}

func TestNotReceiveFromSendOnOpen(t *testing.T) {
	l, _, _, genesisOpenHash, _ := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, aliceSign := newKeypair(t, 2)

	// genesisOpenHash names a real, stored block, but it's an open
	// block rather than a send — it can never fund a receive or open.
	ob := &block.OpenBlock{Representative: aliceAddr, SourceH: genesisOpenHash}
	h := ob.Hash(signer)
	ob.Signature = aliceSign(h)

	res, err := l.Process(ob)
	if err != nil {
		t.Fatal(err)
	}
	if res != NotReceiveFromSend {
		t.Fatalf("result = %s, want not_receive_from_send", res)
	}
}

func TestRollbackIsLeftInverse(t *testing.T) {
	l, genesisAddr, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	aliceAddr, _ := newKeypair(t, 2)
	amount := primitives.Uint256FromUint64(250)
	newBalance := supply.Sub(amount)

	checksumBefore, err := l.Checksum()
	if err != nil {
		t.Fatal(err)
	}

	sb := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: newBalance}
	sendHash := sb.Hash(signer)
	sb.Signature = genesisSign(sendHash)
	if res, err := l.Process(sb); err != nil || res != Progress {
		t.Fatalf("send: res=%s err=%v", res, err)
	}

	checksumAfterSend, err := l.Checksum()
	if err != nil {
		t.Fatal(err)
	}
	if checksumAfterSend.Equal(checksumBefore) {
		t.Fatal("checksum should change after processing the send")
	}

	if err := l.Rollback(sendHash); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	checksumAfterRollback, err := l.Checksum()
	if err != nil {
		t.Fatal(err)
	}
	if !checksumAfterRollback.Equal(checksumBefore) {
		t.Fatalf("checksum after rollback = %s, want %s (restored)", checksumAfterRollback, checksumBefore)
	}

	bal, ok, err := l.AccountBalance(genesisAddr)
	if err != nil || !ok {
		t.Fatalf("balance after rollback: ok=%v err=%v", ok, err)
	}
	if !bal.Equal(supply) {
		t.Fatalf("balance after rollback = %s, want %s", bal, supply)
	}

	head, _, err := l.Latest(genesisAddr)
	if err != nil {
		t.Fatal(err)
	}
	if !head.Equal(genesisOpenHash) {
		t.Fatal("head after rollback should be the genesis open block again")
	}

	// the same send can now be replayed
	sb2 := &block.SendBlock{Destination: aliceAddr, PreviousH: genesisOpenHash, Balance: newBalance}
	h2 := sb2.Hash(signer)
	sb2.Signature = genesisSign(h2)
	res, err := l.Process(sb2)
	if err != nil {
		t.Fatal(err)
	}
	if res != Progress {
		t.Fatalf("replayed send result = %s, want progress", res)
	}
}

func TestChangeRepresentative(t *testing.T) {
	l, genesisAddr, genesisSign, genesisOpenHash, supply := setupGenesis(t)
	var signer crypto.StdProvider
	newRep, _ := newKeypair(t, 9)

	cb := &block.ChangeBlock{Representative: newRep, PreviousH: genesisOpenHash}
	hash := cb.Hash(signer)
	cb.Signature = genesisSign(hash)

	res, err := l.Process(cb)
	if err != nil {
		t.Fatal(err)
	}
	if res != Progress {
		t.Fatalf("result = %s, want progress", res)
	}

	w, err := l.Weight(newRep)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Equal(supply) {
		t.Fatalf("new rep weight = %s, want %s", w, supply)
	}

	oldW, err := l.Weight(genesisAddr)
	if err != nil {
		t.Fatal(err)
	}
	if !oldW.IsZero() {
		t.Fatalf("old rep weight = %s, want 0", oldW)
	}
}
