// Package errors provides structured error types for the known library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the operator involved, the
// offending value and its type name, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseApply, errors.KindIllegalOp).
//		Op("<<").
//		Value(-3).
//		Detail("negative shift count").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit("0b210", '2', 2)
//	err := errors.OutOfBounds(10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// Hard failures inside the algebra (illegal operations, ambiguous dispatch,
// unliftable values) panic with an *Error; text-processing entry points
// recover them and return them as ordinary errors.
package errors
