// Package block implements the four signed block variants the ledger
// processes — send, receive, open, change — their canonical hashing,
// and their wire codec.
package block

// Type tags a block's wire-serialized variant.
type Type byte

const (
	TypeInvalid Type = iota
	TypeSend
	TypeReceive
	TypeOpen
	TypeChange
)

func (t Type) String() string {
	switch t {
	case TypeSend:
		return "send"
	case TypeReceive:
		return "receive"
	case TypeOpen:
		return "open"
	case TypeChange:
		return "change"
	default:
		return "invalid"
	}
}
