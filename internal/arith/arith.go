package arith

import (
	"cmp"
	"reflect"

	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/op"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type number interface {
	integer | ~float32 | ~float64
}

// Binary evaluates o on two plain values. It panics with *errors.Error when
// no legal result exists for the operand types.
func Binary(o op.Op, a, b any) any {
	switch o {
	case op.Comma:
		return b
	case op.LogAnd, op.LogOr:
		return logical(o, a, b)
	case op.Shl, op.Shr:
		return shift(o, a, b)
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return stringBinary(o, as, bs)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return boolBinary(o, ab, bb)
		}
	}

	if IsNumeric(a) && IsNumeric(b) {
		if reflect.TypeOf(a) == reflect.TypeOf(b) {
			return sameType(o, a, b)
		}
		return promoted(o, a, b)
	}

	// Structural equality for remaining same-type comparable values.
	if o == op.Eq || o == op.Ne {
		ta := reflect.TypeOf(a)
		if ta != nil && ta == reflect.TypeOf(b) && ta.Comparable() {
			eq := a == b
			if o == op.Ne {
				return !eq
			}
			return eq
		}
	}

	panic(errors.TypeMismatch(o.String(), a, b))
}

// sameType computes in the operands' own type, keeping Go's width and
// wraparound semantics.
func sameType(o op.Op, a, b any) any {
	switch v := a.(type) {
	case int:
		return intBinary(o, v, b.(int))
	case int8:
		return intBinary(o, v, b.(int8))
	case int16:
		return intBinary(o, v, b.(int16))
	case int32:
		return intBinary(o, v, b.(int32))
	case int64:
		return intBinary(o, v, b.(int64))
	case uint:
		return intBinary(o, v, b.(uint))
	case uint8:
		return intBinary(o, v, b.(uint8))
	case uint16:
		return intBinary(o, v, b.(uint16))
	case uint32:
		return intBinary(o, v, b.(uint32))
	case uint64:
		return intBinary(o, v, b.(uint64))
	case uintptr:
		return intBinary(o, v, b.(uintptr))
	case float32:
		return floatBinary(o, float64(v), float64(b.(float32)), true)
	case float64:
		return floatBinary(o, v, b.(float64), false)
	}
	panic(errors.TypeMismatch(o.String(), a, b))
}

// promoted computes mixed-type operands in a common lane: float64 when a
// float participates, otherwise int64, with uint64 as the fallback for
// values beyond the int64 range.
func promoted(o op.Op, a, b any) any {
	if IsFloat(a) || IsFloat(b) {
		fa, aok := ToFloat64(a)
		fb, bok := ToFloat64(b)
		if aok && bok {
			return floatBinary(o, fa, fb, false)
		}
	} else {
		ia, aok := ToInt64(a)
		ib, bok := ToInt64(b)
		if aok && bok {
			return intBinary(o, ia, ib)
		}
		ua, aok := ToUint64(a)
		ub, bok := ToUint64(b)
		if aok && bok {
			return intBinary(o, ua, ub)
		}
	}
	panic(errors.TypeMismatch(o.String(), a, b))
}

func intBinary[T integer](o op.Op, a, b T) any {
	switch o {
	case op.Add:
		return a + b
	case op.Sub:
		return a - b
	case op.Mul:
		return a * b
	case op.Div:
		if b == 0 {
			panic(errors.DivideByZero(o.String()))
		}
		return a / b
	case op.Mod:
		if b == 0 {
			panic(errors.DivideByZero(o.String()))
		}
		return a % b
	case op.And:
		return a & b
	case op.Or:
		return a | b
	case op.Xor:
		return a ^ b
	case op.Eq:
		return a == b
	case op.Ne:
		return a != b
	case op.Lt:
		return a < b
	case op.Le:
		return a <= b
	case op.Gt:
		return a > b
	case op.Ge:
		return a >= b
	case op.Cmp:
		return cmp.Compare(a, b)
	}
	panic(errors.IllegalOperation(o.String(), a))
}

// floatBinary computes in float64; narrow converts arithmetic results back
// to float32 for same-type float32 operands. One final rounding preserves
// the float32 result exactly for + - * /.
func floatBinary(o op.Op, a, b float64, narrow bool) any {
	num := func(f float64) any {
		if narrow {
			return float32(f)
		}
		return f
	}
	switch o {
	case op.Add:
		return num(a + b)
	case op.Sub:
		return num(a - b)
	case op.Mul:
		return num(a * b)
	case op.Div:
		return num(a / b)
	case op.Eq:
		return a == b
	case op.Ne:
		return a != b
	case op.Lt:
		return a < b
	case op.Le:
		return a <= b
	case op.Gt:
		return a > b
	case op.Ge:
		return a >= b
	case op.Cmp:
		return cmp.Compare(a, b)
	}
	panic(errors.IllegalOperation(o.String(), a))
}

func stringBinary(o op.Op, a, b string) any {
	switch o {
	case op.Add:
		return a + b
	case op.Eq:
		return a == b
	case op.Ne:
		return a != b
	case op.Lt:
		return a < b
	case op.Le:
		return a <= b
	case op.Gt:
		return a > b
	case op.Ge:
		return a >= b
	case op.Cmp:
		return cmp.Compare(a, b)
	}
	panic(errors.IllegalOperation(o.String(), a))
}

func boolBinary(o op.Op, a, b bool) any {
	switch o {
	case op.Eq:
		return a == b
	case op.Ne:
		return a != b
	}
	panic(errors.IllegalOperation(o.String(), a))
}

// logical evaluates && and ||. Both operands are already materialized, so
// there is no short-circuit, matching dispatched operator semantics.
func logical(o op.Op, a, b any) any {
	ab, aok := ToBool(a)
	bb, bok := ToBool(b)
	if !aok || !bok {
		panic(errors.TypeMismatch(o.String(), a, b))
	}
	if o == op.LogAnd {
		return ab && bb
	}
	return ab || bb
}

func shift(o op.Op, a, b any) any {
	count, ok := ToInt64(b)
	if !ok {
		panic(errors.TypeMismatch(o.String(), a, b))
	}
	if count < 0 {
		panic(errors.New(errors.PhaseApply, errors.KindIllegalOp).
			Op(o.String()).
			Value(count).
			Detail("negative shift count").
			Build())
	}
	return shiftValue(o, a, uint(count))
}

func shiftValue(o op.Op, a any, count uint) any {
	switch v := a.(type) {
	case int:
		return shiftInt(o, v, count)
	case int8:
		return shiftInt(o, v, count)
	case int16:
		return shiftInt(o, v, count)
	case int32:
		return shiftInt(o, v, count)
	case int64:
		return shiftInt(o, v, count)
	case uint:
		return shiftInt(o, v, count)
	case uint8:
		return shiftInt(o, v, count)
	case uint16:
		return shiftInt(o, v, count)
	case uint32:
		return shiftInt(o, v, count)
	case uint64:
		return shiftInt(o, v, count)
	case uintptr:
		return shiftInt(o, v, count)
	}
	panic(errors.IllegalOperation(o.String(), a))
}

func shiftInt[T integer](o op.Op, v T, count uint) T {
	if o == op.Shl {
		return v << count
	}
	return v >> count
}

// Unary evaluates o on one plain value. The postfix increment and decrement
// forms return the original value (the operator's result on a copy).
func Unary(o op.Op, v any) any {
	switch o {
	case op.Not:
		b, ok := ToBool(v)
		if !ok {
			panic(errors.IllegalOperation(o.String(), v))
		}
		return !b
	case op.Pos:
		if IsNumeric(v) {
			return v
		}
	case op.Neg:
		return negate(v)
	case op.BitNot:
		return bitNot(v)
	case op.PreInc, op.PreDec:
		return stepValue(o, v)
	case op.PostInc, op.PostDec:
		if IsNumeric(v) {
			return v
		}
	}
	panic(errors.IllegalOperation(o.String(), v))
}

func negate(v any) any {
	switch n := v.(type) {
	case int:
		return -n
	case int8:
		return -n
	case int16:
		return -n
	case int32:
		return -n
	case int64:
		return -n
	case uint:
		return -n
	case uint8:
		return -n
	case uint16:
		return -n
	case uint32:
		return -n
	case uint64:
		return -n
	case uintptr:
		return -n
	case float32:
		return -n
	case float64:
		return -n
	}
	panic(errors.IllegalOperation(op.Neg.String(), v))
}

func bitNot(v any) any {
	switch n := v.(type) {
	case int:
		return ^n
	case int8:
		return ^n
	case int16:
		return ^n
	case int32:
		return ^n
	case int64:
		return ^n
	case uint:
		return ^n
	case uint8:
		return ^n
	case uint16:
		return ^n
	case uint32:
		return ^n
	case uint64:
		return ^n
	case uintptr:
		return ^n
	}
	panic(errors.IllegalOperation(op.BitNot.String(), v))
}

func stepValue(o op.Op, v any) any {
	switch n := v.(type) {
	case int:
		return stepNum(o, n)
	case int8:
		return stepNum(o, n)
	case int16:
		return stepNum(o, n)
	case int32:
		return stepNum(o, n)
	case int64:
		return stepNum(o, n)
	case uint:
		return stepNum(o, n)
	case uint8:
		return stepNum(o, n)
	case uint16:
		return stepNum(o, n)
	case uint32:
		return stepNum(o, n)
	case uint64:
		return stepNum(o, n)
	case uintptr:
		return stepNum(o, n)
	case float32:
		return stepNum(o, n)
	case float64:
		return stepNum(o, n)
	}
	panic(errors.IllegalOperation(o.String(), v))
}

func stepNum[T number](o op.Op, n T) T {
	if o == op.PreInc {
		return n + 1
	}
	return n - 1
}

// Index reads element i of an indexable plain value (string or array).
func Index(v any, i int) any {
	if s, ok := v.(string); ok {
		if i < 0 || i >= len(s) {
			panic(errors.OutOfBounds(i, len(s)))
		}
		return s[i]
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array {
		if i < 0 || i >= rv.Len() {
			panic(errors.OutOfBounds(i, rv.Len()))
		}
		return rv.Index(i).Interface()
	}
	panic(errors.IllegalOperation("[]", v))
}
