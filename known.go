package known

import "github.com/knownkit/known/op"

// Constant is implemented by values that expose a build-time constant.
// Implementers are recognized by Is and participate in tagged dispatch
// without having to be tags themselves.
type Constant interface {
	// ConstValue returns the represented constant.
	ConstValue() any
}

// Tag marks members of a tag hierarchy. Const implements it returning
// itself, so a struct embedding Const is a tag by method promotion. An
// independent hierarchy implements TagRoot directly.
type Tag interface {
	Constant

	// TagRoot returns the root tag carrying the represented value.
	TagRoot() Const
}

// Operator is an optional hook letting a represented value supply its own
// binary, compound-assign and step behavior. Step operators pass a nil rhs.
// Returning false falls through to the built-in evaluation.
type Operator interface {
	ApplyOp(o op.Op, rhs any) (any, bool)
}

// ReverseOperator mirrors Operator for a represented value sitting on the
// right of the operator.
type ReverseOperator interface {
	ApplyOpFrom(o op.Op, lhs any) (any, bool)
}

// Callable lets a represented value handle call expressions.
type Callable interface {
	Call(args ...any) any
}

// Indexable lets a represented value handle index expressions.
type Indexable interface {
	Index(args ...any) any
}

// Arrower lets a represented value supply its member-access target.
type Arrower interface {
	Arrow() any
}
