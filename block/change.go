package block

import "lattice.dev/ledger/primitives"

// ChangeBlock reassigns an account's representative without moving
// any balance.
type ChangeBlock struct {
	Representative primitives.Address
	PreviousH      primitives.BlockHash
	Signature      primitives.Signature
}

var _ Block = (*ChangeBlock)(nil)

func (b *ChangeBlock) Hash(h Hasher) primitives.BlockHash {
	rep := b.Representative.Bytes()
	prev := b.PreviousH.Bytes()
	return hashToBlockHash(h, rep[:], prev[:])
}

func (b *ChangeBlock) Previous() primitives.BlockHash { return b.PreviousH }
func (b *ChangeBlock) Root() primitives.BlockHash     { return b.PreviousH }

func (b *ChangeBlock) Source() (primitives.BlockHash, bool) {
	return primitives.BlockHash{}, false
}

func (b *ChangeBlock) Type() Type { return TypeChange }

func (b *ChangeBlock) Serialize() []byte {
	out := make([]byte, 0, 1+32+32+64)
	out = append(out, byte(TypeChange))
	rep := b.Representative.Bytes()
	prev := b.PreviousH.Bytes()
	sig := b.Signature.Bytes()
	out = append(out, rep[:]...)
	out = append(out, prev[:]...)
	out = append(out, sig[:]...)
	return out
}

func (b *ChangeBlock) Equal(o Block) bool {
	ob, ok := o.(*ChangeBlock)
	if !ok {
		return false
	}
	return b.Representative.Equal(ob.Representative) &&
		b.PreviousH.Equal(ob.PreviousH) &&
		b.Signature.Equal(ob.Signature)
}

func (b *ChangeBlock) Clone() Block {
	c := *b
	return &c
}
