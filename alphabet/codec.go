package alphabet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	base32Alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"
	base58Alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

	// absent marks bytes which are not symbols of a reverse lookup table
	absent = 0xFF
)

// The reverse lookup tables are built once, at package initialization, and
// are never written again.
var (
	decodeBase32 = reverseLookup(base32Alphabet)
	decodeBase58 = reverseLookup(base58Alphabet)

	// decodeDigits maps 0-9 then a-z (either case) to 0..35. The positional
	// encodings reject any symbol whose value is not below their radix.
	decodeDigits = digitLookup()
)

func reverseLookup(alphabet string) [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = absent
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}

func digitLookup() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = absent
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return t
}

// Encode renders v in the requested encoding. It panics if v is negative or
// enc is not one of the supported encodings, both are programming errors.
func Encode(v int64, enc Encoding) string {
	if v < 0 {
		panic(fmt.Errorf("%d: %w", v, ErrNegative))
	}
	switch enc {
	case Decimal:
		return strconv.FormatInt(v, 10)
	case Base2:
		return strconv.FormatInt(v, 2)
	case Base36:
		return strconv.FormatInt(v, 36)
	case Base32:
		return encodeAlphabet(v, base32Alphabet)
	case Base58:
		return encodeAlphabet(v, base58Alphabet)
	case Base64:
		var buf [19]byte // max int64 is 19 decimal digits
		return base64.StdEncoding.EncodeToString(strconv.AppendInt(buf[:0], v, 10))
	}
	panic(fmt.Errorf("%s: %w", enc, ErrUnknownEncoding))
}

// encodeAlphabet writes the digits of v least significant first, from the end
// of a fixed buffer, so the result reads most significant first without a
// reversal pass.
func encodeAlphabet(v int64, alphabet string) string {
	radix := int64(len(alphabet))
	if v < radix {
		return alphabet[v : v+1]
	}

	var buf [64]byte
	i := len(buf)
	for v >= radix {
		i--
		buf[i] = alphabet[v%radix]
		v /= radix
	}
	i--
	buf[i] = alphabet[v]
	return string(buf[i:])
}

// Decode parses s, which must be in the requested encoding. Failures are
// always a *DecodeError.
func Decode(s string, enc Encoding) (int64, error) {
	if s == "" {
		return 0, &DecodeError{Encoding: enc, Input: s, Err: ErrEmpty}
	}
	switch enc {
	case Decimal:
		return accumulate(s, &decodeDigits, 10, enc)
	case Base2:
		return accumulate(s, &decodeDigits, 2, enc)
	case Base36:
		return accumulate(s, &decodeDigits, 36, enc)
	case Base32:
		return accumulate(s, &decodeBase32, 32, enc)
	case Base58:
		return accumulate(s, &decodeBase58, 58, enc)
	case Base64:
		return decodeBase64(s)
	}
	return 0, &DecodeError{Encoding: enc, Input: s, Err: ErrUnknownEncoding}
}

// accumulate scans s most significant symbol first computing
// acc = acc*radix + value(symbol), stopping at the first symbol that is not in
// the table or that would take acc past math.MaxInt64.
func accumulate(s string, table *[256]byte, radix uint64, enc Encoding) (int64, error) {
	var acc uint64
	for i := 0; i < len(s); i++ {
		d := table[s[i]]
		if d == absent || uint64(d) >= radix {
			return 0, &DecodeError{Encoding: enc, Input: s, Offset: i, Err: ErrInvalidCharacter}
		}
		if acc > (math.MaxInt64-uint64(d))/radix {
			return 0, &DecodeError{Encoding: enc, Input: s, Offset: i, Err: ErrOutOfRange}
		}
		acc = acc*radix + uint64(d)
	}
	return int64(acc), nil
}

func decodeBase64(s string) (int64, error) {
	// The standard decoder skips line breaks, they are not symbols of the
	// alphabet.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return 0, &DecodeError{Encoding: Base64, Input: s, Offset: i, Err: ErrInvalidCharacter}
	}
	payload, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		offset := 0
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			offset = int(corrupt)
		}
		return 0, &DecodeError{Encoding: Base64, Input: s, Offset: offset, Err: ErrInvalidCharacter}
	}
	if len(payload) == 0 {
		return 0, &DecodeError{Encoding: Base64, Input: s, Err: ErrEmpty}
	}

	v, err := accumulate(string(payload), &decodeDigits, 10, Base64)
	if err != nil {
		var derr *DecodeError
		if errors.As(err, &derr) {
			derr.Input = s
		}
		return 0, err
	}
	return v, nil
}
