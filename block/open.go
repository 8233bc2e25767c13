package block

import "lattice.dev/ledger/primitives"

// OpenBlock creates an account chain: the account's first block,
// crediting it with a prior send and naming its initial
// representative.
type OpenBlock struct {
	Representative primitives.Address
	SourceH        primitives.BlockHash
	Signature      primitives.Signature

	// Account is the address being opened. It is not part of the
	// wire body or the hashable fields — the ledger resolves it from
	// the source send's pending destination — but callers need it to
	// know which account chain an OpenBlock belongs to.
	Account primitives.Address
}

var _ Block = (*OpenBlock)(nil)

func (b *OpenBlock) Hash(h Hasher) primitives.BlockHash {
	rep := b.Representative.Bytes()
	src := b.SourceH.Bytes()
	return hashToBlockHash(h, rep[:], src[:])
}

// Previous returns the zero hash: open blocks have no predecessor.
func (b *OpenBlock) Previous() primitives.BlockHash { return primitives.BlockHash{} }

// Root returns the account address being opened.
func (b *OpenBlock) Root() primitives.BlockHash { return b.Account }

func (b *OpenBlock) Source() (primitives.BlockHash, bool) {
	return b.SourceH, true
}

func (b *OpenBlock) Type() Type { return TypeOpen }

func (b *OpenBlock) Serialize() []byte {
	out := make([]byte, 0, 1+32+32+64)
	out = append(out, byte(TypeOpen))
	rep := b.Representative.Bytes()
	src := b.SourceH.Bytes()
	sig := b.Signature.Bytes()
	out = append(out, rep[:]...)
	out = append(out, src[:]...)
	out = append(out, sig[:]...)
	return out
}

func (b *OpenBlock) Equal(o Block) bool {
	ob, ok := o.(*OpenBlock)
	if !ok {
		return false
	}
	return b.Representative.Equal(ob.Representative) &&
		b.SourceH.Equal(ob.SourceH) &&
		b.Account.Equal(ob.Account) &&
		b.Signature.Equal(ob.Signature)
}

func (b *OpenBlock) Clone() Block {
	c := *b
	return &c
}
