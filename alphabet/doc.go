// Package alphabet converts 63-bit snowflake identifiers to and from the
// string forms used to carry them where a raw 64-bit integer can't go: URLs,
// short tokens, JSON consumed by JavaScript.
//
// Supported encodings:
//
//	Decimal  ordinary base 10 digits
//	Base2    binary digits, the longest form
//	Base32   positional radix 32 over the z-base-32 symbol set
//	Base36   digits then lower case letters
//	Base58   positional radix 58, no 0, O, I or l
//	Base64   standard base64 of the ASCII *decimal* string
//
// Base32 and Base58 are NOT the RFC 4648 / bitcoin byte oriented schemes. They
// treat the id as a number and write its digits most significant first, so
// the alphabets are only compatible with other implementations of this
// scheme.
//
// Likewise Base64 does not pack the 8 bytes of the integer. It encodes the
// decimal rendering of the id. That indirection is kept for compatibility with
// values already in circulation.
//
// Decode failures are returned as *DecodeError, use errors.Is against
// ErrEmpty, ErrInvalidCharacter and ErrOutOfRange to discriminate.
package alphabet
