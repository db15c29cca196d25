package parser

import (
	stderrors "errors"
	"testing"

	"github.com/knownkit/known"
	"github.com/knownkit/known/cstr"
	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/expr/internal/token"
	"github.com/knownkit/known/op"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	tokens, err := token.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	n, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func wantBinary(t *testing.T, n Node, code op.Op) *Binary {
	t.Helper()
	b, ok := n.(*Binary)
	if !ok {
		t.Fatalf("node %T, want *Binary", n)
	}
	if b.Op != code {
		t.Fatalf("binary op %v, want %v", b.Op, code)
	}
	return b
}

func wantUnary(t *testing.T, n Node, code op.Op) *Unary {
	t.Helper()
	u, ok := n.(*Unary)
	if !ok {
		t.Fatalf("node %T, want *Unary", n)
	}
	if u.Op != code {
		t.Fatalf("unary op %v, want %v", u.Op, code)
	}
	return u
}

func wantValue(t *testing.T, n Node, x any) {
	t.Helper()
	v, ok := n.(*Value)
	if !ok {
		t.Fatalf("node %T, want *Value", n)
	}
	if v.X != x {
		t.Fatalf("value %#v, want %#v", v.X, x)
	}
}

func TestPrecedence(t *testing.T) {
	add := wantBinary(t, mustParse(t, "1 + 2 * 3"), op.Add)
	wantValue(t, add.X, int64(1))
	mul := wantBinary(t, add.Y, op.Mul)
	wantValue(t, mul.X, int64(2))
	wantValue(t, mul.Y, int64(3))

	// Parens override the binding.
	mul = wantBinary(t, mustParse(t, "(1 + 2) * 3"), op.Mul)
	wantBinary(t, mul.X, op.Add)
	wantValue(t, mul.Y, int64(3))
}

func TestLeftAssociativity(t *testing.T) {
	outer := wantBinary(t, mustParse(t, "1 - 2 - 3"), op.Sub)
	inner := wantBinary(t, outer.X, op.Sub)
	wantValue(t, inner.X, int64(1))
	wantValue(t, inner.Y, int64(2))
	wantValue(t, outer.Y, int64(3))
}

func TestThreeWayBindsTighterThanRelational(t *testing.T) {
	lt := wantBinary(t, mustParse(t, "1 < 2 <=> 3"), op.Lt)
	wantValue(t, lt.X, int64(1))
	cmp := wantBinary(t, lt.Y, op.Cmp)
	wantValue(t, cmp.X, int64(2))
	wantValue(t, cmp.Y, int64(3))
}

func TestCommaIsLoosest(t *testing.T) {
	comma := wantBinary(t, mustParse(t, "1, 2 + 3"), op.Comma)
	wantValue(t, comma.X, int64(1))
	wantBinary(t, comma.Y, op.Add)
}

func TestUnary(t *testing.T) {
	mul := wantBinary(t, mustParse(t, "-2 * 3"), op.Mul)
	neg := wantUnary(t, mul.X, op.Neg)
	wantValue(t, neg.X, int64(2))

	and := wantBinary(t, mustParse(t, "!true && false"), op.LogAnd)
	not := wantUnary(t, and.X, op.Not)
	wantValue(t, not.X, true)
	wantValue(t, and.Y, false)

	// Both complement spellings nest.
	outerNot := wantUnary(t, mustParse(t, "~^1"), op.BitNot)
	innerNot := wantUnary(t, outerNot.X, op.BitNot)
	wantValue(t, innerNot.X, int64(1))
}

func TestIndexArguments(t *testing.T) {
	ix, ok := mustParse(t, `"foo"sc[1, 2]`).(*Index)
	if !ok {
		t.Fatal("want *Index root")
	}
	wantValue(t, ix.X, known.Of(cstr.New("foo")))
	if len(ix.Args) != 2 {
		t.Fatalf("got %d index args, want 2", len(ix.Args))
	}
	wantValue(t, ix.Args[0], int64(1))
	wantValue(t, ix.Args[1], int64(2))

	// A parenthesized comma is one argument.
	ix, ok = mustParse(t, `"foo"sc[(1, 2)]`).(*Index)
	if !ok {
		t.Fatal("want *Index root")
	}
	if len(ix.Args) != 1 {
		t.Fatalf("got %d index args, want 1", len(ix.Args))
	}
	wantBinary(t, ix.Args[0], op.Comma)

	// Chained subscripts nest leftward.
	ix, ok = mustParse(t, `"foo"sc[0][1]`).(*Index)
	if !ok {
		t.Fatal("want *Index root")
	}
	if _, ok := ix.X.(*Index); !ok {
		t.Fatalf("inner node %T, want *Index", ix.X)
	}
}

func TestLiteralResolution(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"127cw", known.Of(int8(127))},
		{"300CW", known.Of(int16(300))},
		{"0x123cw", known.Of(int16(0x123))},
		{"0XACW", known.Of(int8(10))},
		{`"foo"sc`, known.Of(cstr.New("foo"))},
		{`"foo"`, "foo"},
		{"1.5", float64(1.5)},
		{"1e3", float64(1000)},
		{"true", true},
		{"false", false},
		{"0xFF", int64(255)},
		{"5000000000", int64(5000000000)},
		{"18446744073709551615", uint64(18446744073709551615)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			wantValue(t, mustParse(t, tt.src), tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Kind
	}{
		{"empty", "", errors.KindUnexpectedEnd},
		{"dangling operator", "1 +", errors.KindUnexpectedEnd},
		{"unclosed paren", "(1", errors.KindUnexpectedEnd},
		{"unclosed bracket", `"a"sc[0`, errors.KindUnexpectedEnd},
		{"trailing token", "1 2", errors.KindBadToken},
		{"leading rparen", ")", errors.KindBadToken},
		{"unknown identifier", "nope", errors.KindBadToken},
		{"unknown number suffix", "12q", errors.KindBadToken},
		{"unknown string suffix", `"a"xy`, errors.KindBadToken},
		{"number too wide", "99999999999999999999999999", errors.KindBadToken},
		{"bad tagged digit", "0b102cw", errors.KindInvalidDigit},
		{"marker without hex", "123w", errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := token.Tokenize(tt.src)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.src, err)
			}
			_, err = New(tokens).Parse()
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: tt.kind}) {
				t.Errorf("Parse(%q) = %v, want kind %v", tt.src, err, tt.kind)
			}
		})
	}
}
