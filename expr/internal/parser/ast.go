package parser

import "github.com/knownkit/known/op"

// Node is one vertex of a parsed expression. Offsets are byte positions
// in the source text.
type Node interface {
	Pos() int
}

// Value is a resolved literal: a tagged constant when the literal
// carried a suffix, a plain Go value otherwise.
type Value struct {
	X      any
	Offset int
}

func (v *Value) Pos() int { return v.Offset }

// Unary applies a prefix operator.
type Unary struct {
	X      Node
	Op     op.Op
	Offset int
}

func (u *Unary) Pos() int { return u.Offset }

// Binary applies an infix operator.
type Binary struct {
	X, Y   Node
	Op     op.Op
	Offset int
}

func (b *Binary) Pos() int { return b.Offset }

// Index is a postfix subscript with zero or more arguments.
type Index struct {
	X      Node
	Args   []Node
	Offset int
}

func (ix *Index) Pos() int { return ix.Offset }
