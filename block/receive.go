package block

import "lattice.dev/ledger/primitives"

// ReceiveBlock credits the account with the amount of a prior send.
type ReceiveBlock struct {
	PreviousH primitives.BlockHash
	SourceH   primitives.BlockHash
	Signature primitives.Signature
}

var _ Block = (*ReceiveBlock)(nil)

func (b *ReceiveBlock) Hash(h Hasher) primitives.BlockHash {
	prev := b.PreviousH.Bytes()
	src := b.SourceH.Bytes()
	return hashToBlockHash(h, prev[:], src[:])
}

func (b *ReceiveBlock) Previous() primitives.BlockHash { return b.PreviousH }
func (b *ReceiveBlock) Root() primitives.BlockHash     { return b.PreviousH }

func (b *ReceiveBlock) Source() (primitives.BlockHash, bool) {
	return b.SourceH, true
}

func (b *ReceiveBlock) Type() Type { return TypeReceive }

func (b *ReceiveBlock) Serialize() []byte {
	out := make([]byte, 0, 1+32+32+64)
	out = append(out, byte(TypeReceive))
	prev := b.PreviousH.Bytes()
	src := b.SourceH.Bytes()
	sig := b.Signature.Bytes()
	out = append(out, prev[:]...)
	out = append(out, src[:]...)
	out = append(out, sig[:]...)
	return out
}

func (b *ReceiveBlock) Equal(o Block) bool {
	ob, ok := o.(*ReceiveBlock)
	if !ok {
		return false
	}
	return b.PreviousH.Equal(ob.PreviousH) &&
		b.SourceH.Equal(ob.SourceH) &&
		b.Signature.Equal(ob.Signature)
}

func (b *ReceiveBlock) Clone() Block {
	c := *b
	return &c
}
