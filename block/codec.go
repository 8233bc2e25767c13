package block

import "lattice.dev/ledger/primitives"

func readBytes(b []byte, off *int, n int) ([]byte, error) {
	if *off+n > len(b) {
		return nil, codecErr(ErrShortRead, "unexpected EOF")
	}
	v := b[*off : *off+n]
	*off += n
	return v, nil
}

func readUint256(b []byte, off *int) (primitives.Uint256, error) {
	raw, err := readBytes(b, off, primitives.Uint256Bytes)
	if err != nil {
		return primitives.Uint256{}, err
	}
	return primitives.Uint256FromBytes(raw)
}

func readUint512(b []byte, off *int) (primitives.Uint512, error) {
	raw, err := readBytes(b, off, primitives.Uint512Bytes)
	if err != nil {
		return primitives.Uint512{}, err
	}
	return primitives.Uint512FromBytes(raw)
}

// DeserializeBlock reads one type byte followed by the variant body.
// Open blocks decode with a zero Account; the ledger fills it in from
// the source send's pending destination during processing.
func DeserializeBlock(data []byte) (Block, error) {
	if len(data) < 1 {
		return nil, codecErr(ErrShortRead, "missing type byte")
	}
	off := 1
	switch Type(data[0]) {
	case TypeSend:
		dest, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		prev, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		bal, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		sig, err := readUint512(data, &off)
		if err != nil {
			return nil, err
		}
		if off != len(data) {
			return nil, codecErr(ErrTrailingData, "send block has trailing bytes")
		}
		return &SendBlock{Destination: dest, PreviousH: prev, Balance: bal, Signature: sig}, nil

	case TypeReceive:
		prev, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		src, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		sig, err := readUint512(data, &off)
		if err != nil {
			return nil, err
		}
		if off != len(data) {
			return nil, codecErr(ErrTrailingData, "receive block has trailing bytes")
		}
		return &ReceiveBlock{PreviousH: prev, SourceH: src, Signature: sig}, nil

	case TypeOpen:
		rep, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		src, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		sig, err := readUint512(data, &off)
		if err != nil {
			return nil, err
		}
		if off != len(data) {
			return nil, codecErr(ErrTrailingData, "open block has trailing bytes")
		}
		return &OpenBlock{Representative: rep, SourceH: src, Signature: sig}, nil

	case TypeChange:
		rep, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		prev, err := readUint256(data, &off)
		if err != nil {
			return nil, err
		}
		sig, err := readUint512(data, &off)
		if err != nil {
			return nil, err
		}
		if off != len(data) {
			return nil, codecErr(ErrTrailingData, "change block has trailing bytes")
		}
		return &ChangeBlock{Representative: rep, PreviousH: prev, Signature: sig}, nil

	case TypeInvalid:
		return nil, codecErr(ErrInvalidType, "explicit invalid type tag")

	default:
		return nil, codecErr(ErrUnknownType, "unrecognized block type")
	}
}
