// Package known lifts build-time-known constant values into tags carrying
// a complete operator algebra.
//
// A tag wraps one liftable value. Operators applied through the algebra
// re-tag their results while every participating operand is recognized as
// build-time-known, and degrade transparently to a plain computation the
// moment one operand is a live runtime value.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	known/               Root package: the Const tag, recognition predicate, dispatch
//	├── op/              Operator codes shared by the algebra and value hooks
//	├── internal/arith/  Plain-value compute kernel (coercion and per-operator evaluation)
//	├── cstr/            Ordered character sequences ("tagged string constants")
//	├── literal/         Narrowest-width integer literal parsing and tag suffixes
//	├── errors/          Structured error types with a phase/kind taxonomy
//	├── expr/            Expression evaluator over the algebra
//	└── cmd/known/       CLI: batch evaluation and an interactive REPL
//
// # Quick Start
//
// Tag two values and combine them:
//
//	a := known.Of(int8(2))
//	b := known.Of(int8(3))
//
//	sum := a.Add(b)   // known.Const holding int8(5)
//	mixed := a.Add(3) // plain int64(5): 3 is a live value
//
//	known.Is(sum)   // true
//	known.Is(mixed) // false
//
// Literal text parses to the narrowest sufficient integer width:
//
//	c, _ := literal.Cw("300") // known.Const holding int16(300)
//	s, _ := literal.Sc("foo") // known.Const holding cstr.New("foo")
//
// Expressions evaluate over the same algebra:
//
//	r, _ := expr.Eval("1cw + 2cw") // tagged int8(3)
//	r, _ = expr.Eval("1cw + 2")    // plain int64(3)
//
// # Recognition
//
// Any type exposing a constant through the Constant interface is recognized
// and participates in tag-preserving operations. Types embedding Const form
// derived tag hierarchies; types implementing TagRoot themselves form
// independent hierarchies. The dispatch rule guarantees every pairing of
// hierarchies resolves to exactly one declaration.
//
// # Value Hooks
//
// A represented value can customize the algebra by implementing Operator,
// ReverseOperator, Callable, Indexable or Arrower. The cstr package uses
// these to give tagged character sequences concatenation, ordering and
// indexing.
//
// # Thread Safety
//
// Tags are immutable values and every operation produces a new value. The
// address intern table is safe for concurrent use.
package known
