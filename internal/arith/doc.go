// Package arith evaluates single operators on plain Go values.
//
// This package contains the numeric coercion helpers and the per-operator
// compute kernel shared by the tagged and degraded paths of the algebra, so
// a tagged computation and its plain counterpart cannot diverge.
//
// # Contents
//
//   - coerce.go: Lane coercion between Go numeric types
//   - arith.go: Binary/Unary/Index evaluation over the value lanes
//
// Operands of the same concrete type compute in that type with Go's
// operator semantics (including wraparound). Mixed numeric types promote:
// a float operand selects the float64 lane, otherwise int64, falling back
// to uint64 for values beyond the int64 range.
//
// Hard failures (division by zero, negative shift counts, operand types
// that do not combine) panic with *errors.Error.
//
// This package is internal to the known module.
package arith
