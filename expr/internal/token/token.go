package token

import (
	"fmt"
	"strings"

	"github.com/knownkit/known/errors"
)

type Type int

const (
	Number Type = iota
	String
	Ident
	Operator
	LParen
	RParen
	LBracket
	RBracket
)

func (t Type) String() string {
	switch t {
	case Number:
		return "number"
	case String:
		return "string"
	case Ident:
		return "identifier"
	case Operator:
		return "operator"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	}
	return "unknown"
}

// Token is one lexeme. For Number and String, Suffix holds the trailing
// letter run (cw, CW, w, W, sc); the parser maps it to a literal form.
type Token struct {
	Value  string
	Suffix string
	Type   Type
	Offset int
}

// Operator spellings, longest first so prefixes never shadow longer forms.
var operators = []string{
	"<=>",
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "!", "<", ">", ",",
}

// Tokenize splits expression source into tokens. Number tokens absorb
// every character a literal could use, so hex digits swallow a trailing
// c or C and the marker spellings receive it via a w/W suffix.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

scan:
	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, Token{Value: "(", Type: LParen, Offset: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Value: ")", Type: RParen, Offset: i})
			i++
		case c == '[':
			tokens = append(tokens, Token{Value: "[", Type: LBracket, Offset: i})
			i++
		case c == ']':
			tokens = append(tokens, Token{Value: "]", Type: RBracket, Offset: i})
			i++
		case c == '"':
			tok, end, err := scanString(input, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = end
		case isDigit(c) || c == '.' && i+1 < len(input) && isDigit(input[i+1]):
			tok, end := scanNumber(input, i)
			tokens = append(tokens, tok)
			i = end
		case isLetter(c) || c == '_':
			start := i
			for i < len(input) && (isLetter(input[i]) || isDigit(input[i]) || input[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{Value: input[start:i], Type: Ident, Offset: start})
		default:
			for _, sym := range operators {
				if strings.HasPrefix(input[i:], sym) {
					tokens = append(tokens, Token{Value: sym, Type: Operator, Offset: i})
					i += len(sym)
					continue scan
				}
			}
			return nil, errors.BadToken(i, fmt.Sprintf("unrecognized character %q", c))
		}
	}

	return tokens, nil
}

// scanNumber consumes a numeric literal plus its suffix letters. Hex
// literals absorb all hex digits greedily, so a trailing c or C reads
// as a digit and the marker spellings receive it via a w/W suffix.
func scanNumber(input string, start int) (Token, int) {
	i := start
	if input[i] == '0' && i+1 < len(input) && (input[i+1] == 'x' || input[i+1] == 'X') {
		i += 2
		for i < len(input) && (isHexDigit(input[i]) || input[i] == '_') {
			i++
		}
	} else {
		i = scanMantissa(input, i)
	}
	value := input[start:i]
	sfx := i
	for i < len(input) && isLetter(input[i]) {
		i++
	}
	return Token{Value: value, Suffix: input[sfx:i], Type: Number, Offset: start}, i
}

// scanMantissa consumes decimal, binary or octal digits with an optional
// fractional dot and exponent. A letter that does not open an exponent
// ends the run and becomes suffix material.
func scanMantissa(input string, i int) int {
	if input[i] == '0' && i+1 < len(input) && input[i+1] == 'b' {
		i += 2
	}
	seenDot, seenExp := false, false
	for i < len(input) {
		switch c := input[i]; {
		case isDigit(c) || c == '_':
			i++
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			i++
		case (c == 'e' || c == 'E') && !seenExp:
			j := i + 1
			if j < len(input) && (input[j] == '+' || input[j] == '-') {
				j++
			}
			if j >= len(input) || !isDigit(input[j]) {
				return i
			}
			seenExp, seenDot = true, true
			i = j + 1
		default:
			return i
		}
	}
	return i
}

// scanString consumes a double-quoted literal, resolving escapes, plus
// its suffix letters.
func scanString(input string, start int) (Token, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(input) {
		switch c := input[i]; c {
		case '"':
			i++
			sfx := i
			for i < len(input) && isLetter(input[i]) {
				i++
			}
			return Token{Value: b.String(), Suffix: input[sfx:i], Type: String, Offset: start}, i, nil
		case '\\':
			if i+1 >= len(input) {
				i = len(input)
				continue
			}
			switch e := input[i+1]; e {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '0':
				b.WriteByte(0)
			default:
				return Token{}, 0, errors.BadToken(i, fmt.Sprintf("unknown escape \\%c", e))
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return Token{}, 0, errors.New(errors.PhaseParse, errors.KindUnexpectedEnd).
		Detail("offset %d: unterminated string", start).
		Build()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
