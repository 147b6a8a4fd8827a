package alphabet

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty            = errors.New("nothing to decode")
	ErrInvalidCharacter = errors.New("character is not in the alphabet of the encoding")
	ErrOutOfRange       = errors.New("value does not fit in a 63 bit identifier")
	ErrNegative         = errors.New("identifiers are never negative")
	ErrUnknownEncoding  = errors.New("unknown encoding")
)

// DecodeError reports why Input could not be decoded. Offset is the byte
// offset of the offending symbol. For Base64 input whose payload is not a
// valid decimal number, Offset is the offset into the decoded payload.
type DecodeError struct {
	Encoding Encoding
	Input    string
	Offset   int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %q offset %d: %v", e.Encoding, e.Input, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
