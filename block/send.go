package block

import "lattice.dev/ledger/primitives"

// SendBlock debits the sending account, naming the destination and
// the account's balance after the send.
type SendBlock struct {
	Destination primitives.Address
	PreviousH   primitives.BlockHash
	Balance     primitives.Balance
	Signature   primitives.Signature
}

var _ Block = (*SendBlock)(nil)

func (b *SendBlock) Hash(h Hasher) primitives.BlockHash {
	dest := b.Destination.Bytes()
	prev := b.PreviousH.Bytes()
	bal := b.Balance.Bytes()
	return hashToBlockHash(h, dest[:], prev[:], bal[:])
}

func (b *SendBlock) Previous() primitives.BlockHash { return b.PreviousH }
func (b *SendBlock) Root() primitives.BlockHash     { return b.PreviousH }

func (b *SendBlock) Source() (primitives.BlockHash, bool) {
	return primitives.BlockHash{}, false
}

func (b *SendBlock) Type() Type { return TypeSend }

func (b *SendBlock) Serialize() []byte {
	out := make([]byte, 0, 1+32+32+32+64)
	out = append(out, byte(TypeSend))
	dest := b.Destination.Bytes()
	prev := b.PreviousH.Bytes()
	bal := b.Balance.Bytes()
	sig := b.Signature.Bytes()
	out = append(out, dest[:]...)
	out = append(out, prev[:]...)
	out = append(out, bal[:]...)
	out = append(out, sig[:]...)
	return out
}

func (b *SendBlock) Equal(o Block) bool {
	ob, ok := o.(*SendBlock)
	if !ok {
		return false
	}
	return b.Destination.Equal(ob.Destination) &&
		b.PreviousH.Equal(ob.PreviousH) &&
		b.Balance.Equal(ob.Balance) &&
		b.Signature.Equal(ob.Signature)
}

func (b *SendBlock) Clone() Block {
	c := *b
	return &c
}
