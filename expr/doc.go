// Package expr evaluates C-style expressions over the tag algebra.
//
// Expression text mixes tagged literals with plain ones, and the result
// reports whether tags survived the computation:
//
//	r, _ := expr.Eval("1cw + 2cw") // Result{Value: int8(3), Known: true}
//	r, _ = expr.Eval("1cw + 2")    // Result{Value: int64(3), Known: false}
//
// # Grammar
//
// Literals: integers (0x/0b/0 prefixes, _ group separators), floats
// (plain only), double-quoted strings (suffix sc tags them as char
// sequences), true and false. Integer suffixes cw and CW tag a literal
// of any base. Operators, loosest binding first:
//
//	,
//	||
//	&&
//	|
//	^
//	&
//	== !=
//	< <= > >=
//	<=>
//	<< >>
//	+ -
//	* / %
//	unary + - ~ ^ !
//	postfix [args]
//
// In hex literals a trailing c or C reads as a digit, so tagging them
// uses the marker spellings: 0x123cw tokenizes as digits "0x123c" plus
// suffix w, which strips the marker and yields 0x123.
//
// Binary && and || evaluate both operands; the algebra has no
// short-circuit forms.
//
// # Errors
//
// Tokenizer and parser failures return *errors.Error with parse phase
// and byte-offset detail. Algebra panics during evaluation (divide by
// zero, out-of-bounds subscripts, type mismatches) are recovered and
// returned as errors.
package expr
