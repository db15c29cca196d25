package cstr

import (
	"strings"

	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/internal/arith"
	"github.com/knownkit/known/op"
)

// Seq is an immutable ordered character sequence. The zero value is the
// empty sequence.
type Seq struct {
	chars string
}

// New constructs a sequence from literal text.
func New(s string) Seq {
	return Seq{chars: s}
}

// Size returns the number of characters, excluding the implicit terminator.
func (s Seq) Size() int {
	return len(s.chars)
}

// At returns the character at position i. It panics with *errors.Error when
// i is outside [0, Size).
func (s Seq) At(i int) byte {
	if i < 0 || i >= len(s.chars) {
		panic(errors.OutOfBounds(i, len(s.chars)))
	}
	return s.chars[i]
}

// Text returns the characters as a plain string.
func (s Seq) Text() string {
	return s.chars
}

// Equal reports structural equality.
func (s Seq) Equal(t Seq) bool {
	return s.chars == t.chars
}

// Compare orders sequences lexicographically, returning -1, 0, or +1.
func (s Seq) Compare(t Seq) int {
	return strings.Compare(s.chars, t.chars)
}

// Concat joins two sequences. The first sequence's characters are copied
// through its last position, then the second's from position 0; the two
// terminators collapse, so sizes N and M yield size N+M.
func (s Seq) Concat(t Seq) Seq {
	return Seq{chars: s.chars + t.chars}
}

func (s Seq) String() string {
	return s.chars
}

// ApplyOp implements the algebra's binary operator hook for a sequence on
// the left. The right operand may be a Seq or plain string literal text.
func (s Seq) ApplyOp(o op.Op, rhs any) (any, bool) {
	var t Seq
	switch r := rhs.(type) {
	case Seq:
		t = r
	case string:
		t = New(r)
	default:
		return nil, false
	}
	switch o {
	case op.Add:
		return s.Concat(t), true
	case op.Eq:
		return s.Equal(t), true
	case op.Ne:
		return !s.Equal(t), true
	case op.Lt:
		return s.Compare(t) < 0, true
	case op.Le:
		return s.Compare(t) <= 0, true
	case op.Gt:
		return s.Compare(t) > 0, true
	case op.Ge:
		return s.Compare(t) >= 0, true
	case op.Cmp:
		return s.Compare(t), true
	}
	return nil, false
}

// ApplyOpFrom implements the mirrored hook for plain string literal text on
// the left of the operator.
func (s Seq) ApplyOpFrom(o op.Op, lhs any) (any, bool) {
	l, ok := lhs.(string)
	if !ok {
		return nil, false
	}
	return New(l).ApplyOp(o, s)
}

// Index implements the algebra's index hook. Exactly one integral index is
// accepted.
func (s Seq) Index(args ...any) any {
	if len(args) != 1 {
		panic(errors.New(errors.PhaseApply, errors.KindIllegalOp).
			Op("[]").
			Detail("sequence index takes 1 argument, got %d", len(args)).
			Build())
	}
	i, ok := arith.ToIndex(args[0])
	if !ok {
		panic(errors.IllegalOperation("[]", args[0]))
	}
	return s.At(i)
}
