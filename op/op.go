package op

// Op identifies one operator of the tag algebra.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
	Shl
	Shr
	LogAnd
	LogOr
	Comma
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Cmp
	MemPtr
	Pos
	Neg
	BitNot
	Not
	Addr
	Deref
	PreInc
	PostInc
	PreDec
	PostDec
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
)

var opNames = [...]string{
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Mod:       "%",
	And:       "&",
	Or:        "|",
	Xor:       "^",
	Shl:       "<<",
	Shr:       ">>",
	LogAnd:    "&&",
	LogOr:     "||",
	Comma:     ",",
	Eq:        "==",
	Ne:        "!=",
	Lt:        "<",
	Le:        "<=",
	Gt:        ">",
	Ge:        ">=",
	Cmp:       "<=>",
	MemPtr:    "->*",
	Pos:       "+",
	Neg:       "-",
	BitNot:    "~",
	Not:       "!",
	Addr:      "&",
	Deref:     "*",
	PreInc:    "++",
	PostInc:   "++(post)",
	PreDec:    "--",
	PostDec:   "--(post)",
	Assign:    "=",
	AddAssign: "+=",
	SubAssign: "-=",
	MulAssign: "*=",
	DivAssign: "/=",
	ModAssign: "%=",
	AndAssign: "&=",
	OrAssign:  "|=",
	XorAssign: "^=",
	ShlAssign: "<<=",
	ShrAssign: ">>=",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// IsBinary reports whether o takes two operands (includes comparisons,
// sequencing, and member dispatch, excludes the assignment family).
func (o Op) IsBinary() bool {
	return o <= MemPtr
}

// IsUnary reports whether o takes a single operand.
func (o Op) IsUnary() bool {
	return o >= Pos && o <= PostDec
}

// IsCompare reports whether o is a comparison (including three-way).
func (o Op) IsCompare() bool {
	return o >= Eq && o <= Cmp
}

// IsAssign reports whether o belongs to the assignment family.
func (o Op) IsAssign() bool {
	return o >= Assign
}

// IsStep reports whether o is an increment or decrement form.
func (o Op) IsStep() bool {
	return o >= PreInc && o <= PostDec
}

// Base returns the operator a compound assignment combines with
// (AddAssign -> Add). Plain Assign and non-assignment codes map to
// themselves.
func (o Op) Base() Op {
	if o >= AddAssign && o <= ShrAssign {
		return Add + (o - AddAssign)
	}
	return o
}
