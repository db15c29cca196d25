package known

import "github.com/knownkit/known/op"

// Binary operator forms. Each delegates to Binary with the receiver on the
// left, so the result is tagged exactly when the dispatch rule tags it.

func (c Const) Add(rhs any) any { return Binary(c, op.Add, rhs) }

func (c Const) Sub(rhs any) any { return Binary(c, op.Sub, rhs) }

func (c Const) Mul(rhs any) any { return Binary(c, op.Mul, rhs) }

func (c Const) Div(rhs any) any { return Binary(c, op.Div, rhs) }

func (c Const) Mod(rhs any) any { return Binary(c, op.Mod, rhs) }

func (c Const) And(rhs any) any { return Binary(c, op.And, rhs) }

func (c Const) Or(rhs any) any { return Binary(c, op.Or, rhs) }

func (c Const) Xor(rhs any) any { return Binary(c, op.Xor, rhs) }

func (c Const) Shl(rhs any) any { return Binary(c, op.Shl, rhs) }

func (c Const) Shr(rhs any) any { return Binary(c, op.Shr, rhs) }

func (c Const) LogAnd(rhs any) any { return Binary(c, op.LogAnd, rhs) }

func (c Const) LogOr(rhs any) any { return Binary(c, op.LogOr, rhs) }

func (c Const) Comma(rhs any) any { return Binary(c, op.Comma, rhs) }

func (c Const) Eq(rhs any) any { return Binary(c, op.Eq, rhs) }

func (c Const) Ne(rhs any) any { return Binary(c, op.Ne, rhs) }

func (c Const) Lt(rhs any) any { return Binary(c, op.Lt, rhs) }

func (c Const) Le(rhs any) any { return Binary(c, op.Le, rhs) }

func (c Const) Gt(rhs any) any { return Binary(c, op.Gt, rhs) }

func (c Const) Ge(rhs any) any { return Binary(c, op.Ge, rhs) }

func (c Const) Cmp(rhs any) any { return Binary(c, op.Cmp, rhs) }

func (c Const) MemPtr(rhs any) any { return Binary(c, op.MemPtr, rhs) }

// Unary operator forms. A tag is always recognized, so these always re-tag.

func (c Const) Pos() Const { return Unary(op.Pos, c).(Const) }

func (c Const) Neg() Const { return Unary(op.Neg, c).(Const) }

func (c Const) BitNot() Const { return Unary(op.BitNot, c).(Const) }

func (c Const) Not() Const { return Unary(op.Not, c).(Const) }

func (c Const) Addr() Const { return Unary(op.Addr, c).(Const) }

func (c Const) Deref() Const { return Unary(op.Deref, c).(Const) }

// PreInc yields a tag of the incremented value.
func (c Const) PreInc() Const { return Unary(op.PreInc, c).(Const) }

// PostInc yields a tag of the old value, matching postfix semantics.
func (c Const) PostInc() Const { return Unary(op.PostInc, c).(Const) }

// PreDec yields a tag of the decremented value.
func (c Const) PreDec() Const { return Unary(op.PreDec, c).(Const) }

// PostDec yields a tag of the old value, matching postfix semantics.
func (c Const) PostDec() Const { return Unary(op.PostDec, c).(Const) }

// Assignment family. Assignment never mutates: each form yields a brand-new
// value combining the represented value with the right operand.

func (c Const) Assign(rhs any) any { return Binary(c, op.Assign, rhs) }

func (c Const) AddAssign(rhs any) any { return Binary(c, op.AddAssign, rhs) }

func (c Const) SubAssign(rhs any) any { return Binary(c, op.SubAssign, rhs) }

func (c Const) MulAssign(rhs any) any { return Binary(c, op.MulAssign, rhs) }

func (c Const) DivAssign(rhs any) any { return Binary(c, op.DivAssign, rhs) }

func (c Const) ModAssign(rhs any) any { return Binary(c, op.ModAssign, rhs) }

func (c Const) AndAssign(rhs any) any { return Binary(c, op.AndAssign, rhs) }

func (c Const) OrAssign(rhs any) any { return Binary(c, op.OrAssign, rhs) }

func (c Const) XorAssign(rhs any) any { return Binary(c, op.XorAssign, rhs) }

func (c Const) ShlAssign(rhs any) any { return Binary(c, op.ShlAssign, rhs) }

func (c Const) ShrAssign(rhs any) any { return Binary(c, op.ShrAssign, rhs) }

// Call applies the dual call semantics with the tag as the callee.
func (c Const) Call(args ...any) any { return Call(c, args...) }

// Index applies the tagged/plain index rule with the tag as the indexed
// value.
func (c Const) Index(args ...any) any { return Index(c, args...) }

// Arrow resolves the member-access target of the represented value. The
// result is not re-tagged.
func (c Const) Arrow() any { return Arrow(c) }
