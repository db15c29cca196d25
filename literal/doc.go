// Package literal parses integer and string literal text into tagged
// constants.
//
// The integer forms select the narrowest width that can represent the
// value, trying int8, int16, int32 and int64 before falling back to
// uint64:
//
//	literal.Cw("127")                 // known.Of(int8(127))
//	literal.Cw("128")                 // known.Of(int16(128))
//	literal.Cw("0xFFFF")              // known.Of(int32(65535))
//	literal.Cw("9223372036854775808") // known.Of(uint64), one past the int64 maximum
//
// Digit-group separators (both _ and ') are stripped before anything
// else. A 0x or 0X prefix selects hexadecimal, 0b selects binary, and any
// other literal longer than two characters with a leading zero is octal,
// so "07" is the decimal seven. A leading minus sign is honored for
// decimal literals only.
//
// # Marker spellings
//
// Wc and WC parse hexadecimal text that ends in a marker character (c for
// Wc, C for WC). In expression text a trailing c is indistinguishable
// from a hex digit, so the tokenizer hands these spellings the literal
// with the marker still attached and they drop it before parsing:
//
//	literal.Wc("0x123c") // known.Of(int16(0x123)); the trailing c is the marker
//	literal.Cw("0x123c") // known.Of(int16(0x123c)); no marker, all four are digits
//
// # String literals
//
// Sc wraps string literal text in a tagged char sequence:
//
//	literal.Sc("foo") // known.Of(cstr.New("foo"))
//
// All entry points return the tagged constant and an error; MustCw panics
// instead and suits package-level variable declarations.
package literal
