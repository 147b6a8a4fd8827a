package snowflakeid

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-flakeid/alphabet"
)

var (
	ErrIDBytesLength = errors.New("an id is serialized as exactly 8 bytes")
	ErrNegativeID    = errors.New("ids are never negative")
)

// ID is a 63 bit snowflake id. Splitting it into its fields needs the Layout
// it was generated with, see Layout and Node.
type ID int64

func (f ID) Int64() int64 { return int64(f) }

// String returns the decimal form. It is safe for any value, including
// negative values which are not valid ids.
func (f ID) String() string { return strconv.FormatInt(int64(f), 10) }

func (f ID) Base2() string  { return alphabet.Encode(int64(f), alphabet.Base2) }
func (f ID) Base32() string { return alphabet.Encode(int64(f), alphabet.Base32) }
func (f ID) Base36() string { return alphabet.Encode(int64(f), alphabet.Base36) }
func (f ID) Base58() string { return alphabet.Encode(int64(f), alphabet.Base58) }

// Base64 is the standard base64 encoding of the decimal form, not of the
// integer bytes.
func (f ID) Base64() string { return alphabet.Encode(int64(f), alphabet.Base64) }

// Bytes returns the ASCII decimal form.
func (f ID) Bytes() []byte { return []byte(f.String()) }

// Encode renders the id in any supported encoding.
func (f ID) Encode(enc alphabet.Encoding) string { return alphabet.Encode(int64(f), enc) }

// Parse decodes an id from any supported encoding.
func Parse(s string, enc alphabet.Encoding) (ID, error) {
	v, err := alphabet.Decode(s, enc)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// IntBytes returns the id as a big endian 64bit value. Byte wise comparison
// of the result preserves the time ordering of ids.
func (f ID) IntBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(f))
	return b
}

// ParseIntBytes accepts the serialization produced by IntBytes.
func ParseIntBytes(b []byte) (ID, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%d bytes: %w", len(b), ErrIDBytesLength)
	}
	v := binary.BigEndian.Uint64(b)
	if v>>IDBits != 0 {
		return 0, fmt.Errorf("%016x: %w", v, ErrNegativeID)
	}
	return ID(v), nil
}

// Hex returns the IntBytes serialization converted to hex, always 16
// characters.
func (f ID) Hex() string {
	b := f.IntBytes()
	return hex.EncodeToString(b[:])
}

// ParseHex accepts the Hex form, optionally prefixed with 0x.
func ParseHex(s string) (ID, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return 0, err
	}
	return ParseIntBytes(b)
}

// MarshalText uses the decimal form.
func (f ID) MarshalText() ([]byte, error) {
	if f < 0 {
		return nil, fmt.Errorf("%d: %w", int64(f), ErrNegativeID)
	}
	return f.Bytes(), nil
}

func (f *ID) UnmarshalText(b []byte) error {
	id, err := Parse(string(b), alphabet.Decimal)
	if err != nil {
		return err
	}
	*f = id
	return nil
}

// MarshalJSON writes the id as a JSON string. JavaScript numbers can't hold
// 63 bits without loss.
func (f ID) MarshalJSON() ([]byte, error) {
	if f < 0 {
		return nil, fmt.Errorf("%d: %w", int64(f), ErrNegativeID)
	}
	b := make([]byte, 0, 21)
	b = append(b, '"')
	b = strconv.AppendInt(b, int64(f), 10)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts the id as a JSON string or as a bare JSON number. A
// JSON null leaves the id unchanged.
func (f *ID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return f.UnmarshalText([]byte(s))
}
