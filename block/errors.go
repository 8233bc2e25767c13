package block

import "fmt"

// CodecErrorCode classifies a block decode failure, mirroring the
// reference's typed ErrorCode + error-struct pattern for parse errors.
type CodecErrorCode string

const (
	ErrShortRead    CodecErrorCode = "BLOCK_ERR_SHORT_READ"
	ErrInvalidType  CodecErrorCode = "BLOCK_ERR_INVALID_TYPE"
	ErrUnknownType  CodecErrorCode = "BLOCK_ERR_UNKNOWN_TYPE"
	ErrTrailingData CodecErrorCode = "BLOCK_ERR_TRAILING_DATA"
)

// CodecError reports a failure to decode a serialized block. Decode
// failures are reported this way rather than via panics, per §7.
type CodecError struct {
	Code CodecErrorCode
	Msg  string
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func codecErr(code CodecErrorCode, msg string) error {
	return &CodecError{Code: code, Msg: msg}
}
