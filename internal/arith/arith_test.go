package arith

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/op"
)

func wantPanic(t *testing.T, phase errors.Phase, kind errors.Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(*errors.Error)
		if !ok {
			t.Fatalf("panic value %v is not *errors.Error", r)
		}
		if !stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind}) {
			t.Errorf("panic = %v, want [%s] %s", err, phase, kind)
		}
	}()
	fn()
}

func TestBinarySameType(t *testing.T) {
	tests := []struct {
		a, b any
		want any
		name string
		op   op.Op
	}{
		{int64(7), int64(3), int64(10), "int64 add", op.Add},
		{int64(7), int64(3), int64(4), "int64 sub", op.Sub},
		{int64(7), int64(3), int64(21), "int64 mul", op.Mul},
		{int64(7), int64(3), int64(2), "int64 div", op.Div},
		{int64(7), int64(3), int64(1), "int64 mod", op.Mod},
		{int64(6), int64(3), int64(2), "int64 and", op.And},
		{int64(6), int64(3), int64(7), "int64 or", op.Or},
		{int64(6), int64(3), int64(5), "int64 xor", op.Xor},
		{int64(7), int64(3), false, "int64 eq", op.Eq},
		{int64(7), int64(3), true, "int64 ne", op.Ne},
		{int64(7), int64(3), false, "int64 lt", op.Lt},
		{int64(7), int64(3), true, "int64 gt", op.Gt},
		{int64(7), int64(7), true, "int64 le", op.Le},
		{int64(7), int64(8), false, "int64 ge", op.Ge},
		{int64(7), int64(3), 1, "int64 cmp greater", op.Cmp},
		{int64(3), int64(7), -1, "int64 cmp less", op.Cmp},
		{int64(7), int64(7), 0, "int64 cmp equal", op.Cmp},
		{int8(100), int8(100), int8(-56), "int8 add wraps", op.Add},
		{uint8(200), uint8(100), uint8(44), "uint8 add wraps", op.Add},
		{uint64(8), uint64(3), uint64(2), "uint64 mod", op.Mod},
		{1.5, 2.5, 4.0, "float64 add", op.Add},
		{float32(1.5), float32(0.5), float32(2.0), "float32 add", op.Add},
		{1.0, 0.0, math.Inf(1), "float div by zero gives inf", op.Div},
		{int64(1), int64(2), int64(2), "comma yields right", op.Comma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Binary(tt.op, tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Binary(%v %v %v) = %v (%T), want %v (%T)",
					tt.a, tt.op, tt.b, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestBinaryPromotion(t *testing.T) {
	tests := []struct {
		a, b any
		want any
		name string
		op   op.Op
	}{
		{int8(1), int16(2), int64(3), "int8+int16 promotes to int64", op.Add},
		{int32(-4), int64(4), int64(0), "int32+int64", op.Add},
		{uint8(1), int8(1), int64(2), "uint8+int8", op.Add},
		{uint64(1) << 63, uint8(1), (uint64(1) << 63) + 1, "large uint64 falls back to uint64 lane", op.Add},
		{int64(2), 0.5, 1.0, "int and float use float lane", op.Mul},
		{float32(1), int8(2), 3.0, "float32 and int promote to float64", op.Add},
		{int8(1), int16(1), true, "mixed eq", op.Eq},
		{uint64(1) << 63, uint32(1), false, "mixed uint lt", op.Lt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Binary(tt.op, tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Binary(%v %v %v) = %v (%T), want %v (%T)",
					tt.a, tt.op, tt.b, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestBinaryStringAndBool(t *testing.T) {
	if got := Binary(op.Add, "foo", "bar"); got != "foobar" {
		t.Errorf("string + = %v, want foobar", got)
	}
	if got := Binary(op.Lt, "abc", "abd"); got != true {
		t.Errorf("string < = %v, want true", got)
	}
	if got := Binary(op.Cmp, "b", "a"); got != 1 {
		t.Errorf("string <=> = %v, want 1", got)
	}
	if got := Binary(op.Eq, true, true); got != true {
		t.Errorf("bool == = %v, want true", got)
	}
	if got := Binary(op.LogAnd, true, false); got != false {
		t.Errorf("&& = %v, want false", got)
	}
	if got := Binary(op.LogOr, int64(0), int64(2)); got != true {
		t.Errorf("|| on ints = %v, want true", got)
	}
	if got := Binary(op.LogAnd, int8(1), uint64(3)); got != true {
		t.Errorf("&& on mixed ints = %v, want true", got)
	}
}

func TestBinaryStructEquality(t *testing.T) {
	type pair struct{ a, b int }
	if got := Binary(op.Eq, pair{1, 2}, pair{1, 2}); got != true {
		t.Errorf("struct == = %v, want true", got)
	}
	if got := Binary(op.Ne, pair{1, 2}, pair{2, 1}); got != true {
		t.Errorf("struct != = %v, want true", got)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		a, b any
		want any
		name string
		op   op.Op
	}{
		{int64(1), int64(4), int64(16), "int64 shl", op.Shl},
		{int64(16), int8(2), int64(4), "int64 shr mixed count type", op.Shr},
		{int8(1), int64(3), int8(8), "int8 shl keeps width", op.Shl},
		{uint8(0x80), int64(1), uint8(0x40), "uint8 shr", op.Shr},
		{int8(1), int64(100), int8(0), "oversized count", op.Shl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Binary(tt.op, tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Binary(%v %v %v) = %v (%T), want %v (%T)",
					tt.a, tt.op, tt.b, got, got, tt.want, tt.want)
			}
		})
	}

	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Binary(op.Shl, int64(1), int64(-1))
	})
}

func TestBinaryErrors(t *testing.T) {
	wantPanic(t, errors.PhaseApply, errors.KindDivideByZero, func() {
		Binary(op.Div, int64(1), int64(0))
	})
	wantPanic(t, errors.PhaseApply, errors.KindDivideByZero, func() {
		Binary(op.Mod, uint8(1), uint8(0))
	})
	wantPanic(t, errors.PhaseApply, errors.KindTypeMismatch, func() {
		Binary(op.Add, int64(1), "x")
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Binary(op.Mod, 1.0, 2.0)
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Binary(op.And, 1.0, 2.0)
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Binary(op.Lt, true, false)
	})
	wantPanic(t, errors.PhaseApply, errors.KindTypeMismatch, func() {
		Binary(op.LogAnd, "yes", true)
	})
}

func TestUnary(t *testing.T) {
	tests := []struct {
		v    any
		want any
		name string
		op   op.Op
	}{
		{int64(5), int64(-5), "neg int64", op.Neg},
		{int8(-5), int8(5), "neg int8", op.Neg},
		{uint8(1), uint8(255), "neg uint8 wraps", op.Neg},
		{1.5, -1.5, "neg float", op.Neg},
		{int64(5), int64(5), "pos", op.Pos},
		{uint8(0xF0), uint8(0x0F), "bitnot uint8", op.BitNot},
		{int64(0), int64(-1), "bitnot zero", op.BitNot},
		{true, false, "not true", op.Not},
		{int64(0), true, "not zero int", op.Not},
		{int64(3), false, "not nonzero int", op.Not},
		{int64(5), int64(6), "preinc", op.PreInc},
		{int64(5), int64(5), "postinc returns old", op.PostInc},
		{int64(5), int64(4), "predec", op.PreDec},
		{int64(5), int64(5), "postdec returns old", op.PostDec},
		{int8(127), int8(-128), "preinc wraps", op.PreInc},
		{2.5, 3.5, "preinc float", op.PreInc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unary(tt.op, tt.v)
			if got != tt.want {
				t.Errorf("Unary(%v, %v) = %v (%T), want %v (%T)",
					tt.op, tt.v, got, got, tt.want, tt.want)
			}
		})
	}

	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Unary(op.BitNot, 1.5)
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Unary(op.Neg, "x")
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Unary(op.Not, "x")
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Unary(op.PreInc, true)
	})
}

func TestIndex(t *testing.T) {
	if got := Index("foo", 0); got != byte('f') {
		t.Errorf("Index(foo, 0) = %v, want 'f'", got)
	}
	arr := [3]int{10, 20, 30}
	if got := Index(arr, 2); got != 30 {
		t.Errorf("Index(arr, 2) = %v, want 30", got)
	}

	wantPanic(t, errors.PhaseApply, errors.KindOutOfBounds, func() {
		Index("foo", 3)
	})
	wantPanic(t, errors.PhaseApply, errors.KindOutOfBounds, func() {
		Index(arr, -1)
	})
	wantPanic(t, errors.PhaseApply, errors.KindIllegalOp, func() {
		Index(42, 0)
	})
}
