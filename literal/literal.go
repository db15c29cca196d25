package literal

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/knownkit/known"
	"github.com/knownkit/known/cstr"
	"github.com/knownkit/known/errors"
)

// signedWidths is the ladder of signed bit sizes tried in order before
// the final unsigned fallback.
var signedWidths = [...]int{8, 16, 32, 64}

// Cw parses integer literal text into a tagged constant of the narrowest
// sufficient width.
func Cw(text string) (known.Const, error) {
	return parse(text)
}

// CW is the uppercase spelling of Cw with identical semantics.
func CW(text string) (known.Const, error) {
	return parse(text)
}

// Wc parses the marker-suffixed hexadecimal spelling: the text must carry
// a 0x or 0X prefix and end in the marker character c, which is stripped
// before parsing.
func Wc(text string) (known.Const, error) {
	return parseMarked(text, 'c')
}

// WC is the uppercase-marker spelling of Wc: same shape, trailing C.
func WC(text string) (known.Const, error) {
	return parseMarked(text, 'C')
}

// Sc wraps string literal text in a tagged char sequence. It never
// fails; the error return keeps the literal entry points uniform.
func Sc(text string) (known.Const, error) {
	return known.Of(cstr.New(text)), nil
}

// MustCw is like Cw but panics if the text does not parse. It suits
// package-level variable declarations.
func MustCw(text string) known.Const {
	c, err := Cw(text)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(text string) (known.Const, error) {
	digits := stripSeparators(text)
	if digits == "" {
		return known.Const{}, noDigits(text)
	}
	// The three shortest literals skip base detection and the ladder.
	switch digits {
	case "0", "1", "2":
		return known.Of(int8(digits[0] - '0')), nil
	}
	base, offset := detectBase(digits)
	return ladder(text, digits[offset:], base)
}

// parseMarked handles the w/W spellings. The prefix and marker
// constraints apply to the raw text; separators strip afterward.
func parseMarked(text string, marker byte) (known.Const, error) {
	if len(text) <= 2 || text[0] != '0' ||
		(text[1] != 'x' && text[1] != 'X') ||
		text[len(text)-1] != marker {
		return known.Const{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Value(text).
			Detail("marker spelling requires a 0x prefix and a trailing %q, got %q", marker, text).
			Build()
	}
	digits := stripSeparators(text)
	return ladder(text, digits[2:len(digits)-1], 16)
}

// stripSeparators removes the digit-group separators _ and ' ahead of
// base detection.
func stripSeparators(text string) string {
	if !strings.ContainsAny(text, "_'") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '_' && c != '\'' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// detectBase reads the base prefix: 0x/0X is hex, 0b is binary, any other
// leading zero is octal provided the literal is longer than two
// characters. "07" is therefore decimal, and 0B is no prefix at all.
func detectBase(digits string) (base, offset int) {
	if digits[0] != '0' || len(digits) <= 2 {
		return 10, 0
	}
	switch digits[1] {
	case 'x', 'X':
		return 16, 2
	case 'b':
		return 2, 2
	default:
		return 8, 1
	}
}

// ladder validates the digit span and tries each width in order. Overflow
// advances to the next width; the first fit wins.
func ladder(text, span string, base int) (known.Const, error) {
	body := span
	if base == 10 && len(body) > 0 && body[0] == '-' {
		body = body[1:]
	}
	if body == "" {
		return known.Const{}, noDigits(text)
	}
	for i := 0; i < len(body); i++ {
		if !digitInBase(body[i], base) {
			return known.Const{}, errors.InvalidDigit(text, body[i], base)
		}
	}
	for _, bits := range signedWidths {
		n, err := strconv.ParseInt(span, base, bits)
		if err == nil {
			switch bits {
			case 8:
				return known.Of(int8(n)), nil
			case 16:
				return known.Of(int16(n)), nil
			case 32:
				return known.Of(int32(n)), nil
			default:
				return known.Of(n), nil
			}
		}
		if stderrors.Is(err, strconv.ErrRange) {
			continue
		}
		return known.Const{}, octalSyntax(text, span, err)
	}
	n, err := strconv.ParseUint(span, base, 64)
	if err != nil {
		// Range overflow past uint64, or a minus sign that the signed
		// ladder already exhausted. Both are out of range.
		return known.Const{}, errors.OutOfRange(text)
	}
	return known.Of(n), nil
}

// octalSyntax maps the one strconv syntax failure the digit scan lets
// through: octal shares the decimal alphabet, so 8 and 9 survive
// validation and strconv is the first to reject them.
func octalSyntax(text, span string, err error) error {
	for i := 0; i < len(span); i++ {
		if span[i] > '7' {
			return errors.InvalidDigit(text, span[i], 8)
		}
	}
	return errors.Wrap(errors.PhaseParse, errors.KindInvalidDigit, err, "literal "+strconv.Quote(text))
}

func digitInBase(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 16:
		return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
	default:
		// Decimal and octal share the 0-9 alphabet; see octalSyntax.
		return '0' <= c && c <= '9'
	}
}

func noDigits(text string) error {
	return errors.New(errors.PhaseParse, errors.KindUnexpectedEnd).
		Value(text).
		Detail("integer literal %q has no digits", text).
		Build()
}
