// Package op defines the operator codes shared by the tag algebra and by
// value types that customize operator behavior.
//
// Codes exist for every operator family the algebra dispatches: binary
// arithmetic/bitwise/logical/comparison/sequencing, unary (including the
// pre/post increment and decrement forms), and the assignment family.
// Classification helpers (IsBinary, IsUnary, IsAssign, IsCompare) and the
// compound-assignment Base mapping let the kernel treat whole families
// uniformly.
//
// The package sits below everything else in the module so represented values
// can implement operator hooks without importing the algebra itself.
package op
