// Package cstr provides the ordered character sequence used for tagged
// string constants.
//
// A Seq is a fixed-length immutable character container. Size reports the
// character count excluding the implicit terminator, so concatenating
// sequences of size N and M yields size N+M (the two terminators collapse
// into one in literal-length terms).
//
// Seq values are comparable and therefore liftable into value tags. The
// operator hooks (ApplyOp, ApplyOpFrom, Index) let tagged sequences
// participate in the algebra: concatenation with another sequence or a
// plain string literal on either side, equality, lexicographic ordering,
// three-way comparison, and indexed reads.
package cstr
