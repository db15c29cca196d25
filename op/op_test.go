package op

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Add, "+"},
		{Shl, "<<"},
		{Cmp, "<=>"},
		{MemPtr, "->*"},
		{BitNot, "~"},
		{PostInc, "++(post)"},
		{Assign, "="},
		{ShrAssign, ">>="},
		{Op(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		op   Op
		want Op
	}{
		{AddAssign, Add},
		{SubAssign, Sub},
		{MulAssign, Mul},
		{DivAssign, Div},
		{ModAssign, Mod},
		{AndAssign, And},
		{OrAssign, Or},
		{XorAssign, Xor},
		{ShlAssign, Shl},
		{ShrAssign, Shr},
		{Assign, Assign},
		{Add, Add},
		{PreInc, PreInc},
	}

	for _, tt := range tests {
		if got := tt.op.Base(); got != tt.want {
			t.Errorf("%v.Base() = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		binary  bool
		unary   bool
		compare bool
		assign  bool
	}{
		{"add", Add, true, false, false, false},
		{"memptr", MemPtr, true, false, false, false},
		{"cmp", Cmp, true, false, true, false},
		{"eq", Eq, true, false, true, false},
		{"pos", Pos, false, true, false, false},
		{"postdec", PostDec, false, true, false, false},
		{"deref", Deref, false, true, false, false},
		{"assign", Assign, false, false, false, true},
		{"shrassign", ShrAssign, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.IsBinary(); got != tt.binary {
				t.Errorf("IsBinary() = %v, want %v", got, tt.binary)
			}
			if got := tt.op.IsUnary(); got != tt.unary {
				t.Errorf("IsUnary() = %v, want %v", got, tt.unary)
			}
			if got := tt.op.IsCompare(); got != tt.compare {
				t.Errorf("IsCompare() = %v, want %v", got, tt.compare)
			}
			if got := tt.op.IsAssign(); got != tt.assign {
				t.Errorf("IsAssign() = %v, want %v", got, tt.assign)
			}
		})
	}
}
