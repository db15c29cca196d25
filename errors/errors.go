package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse Phase = "parse" // literal or expression text
	PhaseLift  Phase = "lift"  // tagging a value
	PhaseApply Phase = "apply" // operator dispatch and evaluation
	PhaseEval  Phase = "eval"  // expression evaluation driver
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidDigit  Kind = "invalid_digit"
	KindOutOfRange    Kind = "out_of_range"
	KindNotLiftable   Kind = "not_liftable"
	KindIllegalOp     Kind = "illegal_operation"
	KindAmbiguous     Kind = "ambiguous_dispatch"
	KindDivideByZero  Kind = "divide_by_zero"
	KindTypeMismatch  Kind = "type_mismatch"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindNotCallable   Kind = "not_callable"
	KindBadToken      Kind = "bad_token"
	KindUnexpectedEnd Kind = "unexpected_end"
	KindInvalidInput  Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Op        string
	ValueType string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" on ")
		b.WriteString(e.Op)
	}

	if e.ValueType != "" {
		b.WriteString(": value type ")
		b.WriteString(e.ValueType)
	}

	if e.Detail != "" {
		if e.ValueType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operator the error occurred on
func (b *Builder) Op(o string) *Builder {
	b.err.Op = o
	return b
}

// ValueType sets the offending value's type name
func (b *Builder) ValueType(t string) *Builder {
	b.err.ValueType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidDigit creates an invalid literal digit error
func InvalidDigit(text string, digit byte, base int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidDigit,
		Detail: fmt.Sprintf("invalid digit %q in base %d literal %q", digit, base, text),
		Value:  text,
	}
}

// OutOfRange creates a literal out-of-range error
func OutOfRange(text string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("literal %q exceeds the widest supported width", text),
		Value:  text,
	}
}

// NotLiftable creates an error for a value that cannot be build-time-known
func NotLiftable(v any) *Error {
	return &Error{
		Phase:     PhaseLift,
		Kind:      KindNotLiftable,
		ValueType: fmt.Sprintf("%T", v),
		Detail:    "value cannot be represented as a build-time constant",
		Value:     v,
	}
}

// IllegalOperation creates an error for an operator with no legal result
func IllegalOperation(op string, v any) *Error {
	return &Error{
		Phase:     PhaseApply,
		Kind:      KindIllegalOp,
		Op:        op,
		ValueType: fmt.Sprintf("%T", v),
		Value:     v,
	}
}

// AmbiguousDispatch creates a dispatch ambiguity error
func AmbiguousDispatch(op string, candidates int) *Error {
	return &Error{
		Phase:  PhaseApply,
		Kind:   KindAmbiguous,
		Op:     op,
		Detail: fmt.Sprintf("%d viable declarations (want exactly 1)", candidates),
	}
}

// DivideByZero creates an integer division-by-zero error
func DivideByZero(op string) *Error {
	return &Error{
		Phase:  PhaseApply,
		Kind:   KindDivideByZero,
		Op:     op,
		Detail: "integer division by zero",
	}
}

// TypeMismatch creates an error for operand types that do not combine
func TypeMismatch(op string, left, right any) *Error {
	return &Error{
		Phase:  PhaseApply,
		Kind:   KindTypeMismatch,
		Op:     op,
		Detail: fmt.Sprintf("operand types %T and %T do not combine", left, right),
	}
}

// OutOfBounds creates an index out-of-bounds error
func OutOfBounds(index, length int) *Error {
	return &Error{
		Phase:  PhaseApply,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NotCallable creates an error for calling a non-callable value
func NotCallable(v any, argc int) *Error {
	return &Error{
		Phase:     PhaseApply,
		Kind:      KindNotCallable,
		ValueType: fmt.Sprintf("%T", v),
		Detail:    fmt.Sprintf("called with %d argument(s)", argc),
		Value:     v,
	}
}

// BadToken creates a tokenizer error
func BadToken(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindBadToken,
		Detail: fmt.Sprintf("offset %d: %s", offset, detail),
	}
}

// UnexpectedEnd creates an error for truncated expression text
func UnexpectedEnd(what string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedEnd,
		Detail: fmt.Sprintf("unexpected end of input, expected %s", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
