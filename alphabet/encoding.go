package alphabet

import (
	"fmt"
	"strings"
)

type Encoding int

const (
	Decimal Encoding = iota
	Base2
	Base32
	Base36
	Base58
	Base64
)

var encodingNames = [...]string{
	Decimal: "decimal",
	Base2:   "base2",
	Base32:  "base32",
	Base36:  "base36",
	Base58:  "base58",
	Base64:  "base64",
}

// Encodings lists every supported encoding.
func Encodings() []Encoding {
	return []Encoding{Decimal, Base2, Base32, Base36, Base58, Base64}
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding accepts the names returned by Encoding.String, case is ignored.
func ParseEncoding(name string) (Encoding, error) {
	for i, n := range encodingNames {
		if strings.EqualFold(n, name) {
			return Encoding(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
}
