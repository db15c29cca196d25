package known

import (
	"reflect"
	"sync"

	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/internal/arith"
	"github.com/knownkit/known/op"
	"go.uber.org/zap"
)

// hierarchy identifies one tag instantiation: the root type of the operand's
// embedding chain plus the root's represented value.
type hierarchy struct {
	root  reflect.Type
	value any
}

var tagType = reflect.TypeOf((*Tag)(nil)).Elem()

// familyRoot walks t's embedded fields to the deepest type still satisfying
// Tag. A struct embedding Const roots at Const; an independent hierarchy
// roots at itself.
func familyRoot(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Struct {
		next := embeddedTag(t)
		if next == nil {
			break
		}
		t = next
	}
	return t
}

func embeddedTag(t reflect.Type) reflect.Type {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Implements(tagType) {
			return f.Type
		}
	}
	return nil
}

func hierarchyOf(t Tag) hierarchy {
	return hierarchy{
		root:  familyRoot(reflect.TypeOf(t)),
		value: t.TagRoot().ConstValue(),
	}
}

// instanceOf reports whether v belongs to hierarchy h: same family root and
// same represented value.
func instanceOf(v any, h hierarchy) bool {
	t, ok := v.(Tag)
	if !ok {
		return false
	}
	return familyRoot(reflect.TypeOf(v)) == h.root && t.TagRoot().ConstValue() == h.value
}

// isTag reports tag membership in any hierarchy. The viability rule treats
// membership globally, so pairing tags from two independent hierarchies
// still resolves to a single declaration.
func isTag(v any) bool {
	_, ok := v.(Tag)
	return ok
}

// candidates collects the distinct hierarchies of the tag operands.
func candidates(operands ...any) []hierarchy {
	var hs []hierarchy
	for _, v := range operands {
		t, ok := v.(Tag)
		if !ok {
			continue
		}
		h := hierarchyOf(t)
		seen := false
		for _, prev := range hs {
			if prev == h {
				seen = true
				break
			}
		}
		if !seen {
			hs = append(hs, h)
		}
	}
	return hs
}

// unwrap resolves an operand to the value it computes with: recognized
// operands yield their constant (through nested recognition), others are
// used live.
func unwrap(v any) any {
	for {
		c, ok := v.(Constant)
		if !ok {
			return v
		}
		cv := c.ConstValue()
		if !Liftable(cv) {
			return v
		}
		v = cv
	}
}

// Binary applies a binary or assignment-family operator under the dispatch
// rule: the distinct hierarchies of the tag operands are the candidate
// declarations, and a candidate H is viable iff both operands are
// recognized and the left operand is an instance of H or is not a tag at
// all. Exactly one viable candidate tags the computed value; zero viable
// candidates degrade to a plain computation on unwrapped operands. More
// than one would be ambiguous and panics, which the viability rule makes
// unreachable.
func Binary(a any, o op.Op, b any) any {
	if !o.IsBinary() && !o.IsAssign() {
		panic(errors.IllegalOperation(o.String(), a))
	}
	hs := candidates(a, b)
	known := Is(a) && Is(b)
	viable := 0
	var chosen hierarchy
	for _, h := range hs {
		if known && (instanceOf(a, h) || !isTag(a)) {
			viable++
			chosen = h
		}
	}
	switch {
	case viable == 1:
		Logger().Debug("dispatch tagged",
			zap.String("op", o.String()),
			zap.Int("candidates", len(hs)),
			zap.String("hierarchy", chosen.root.String()))
		return Of(computeBinary(o, unwrap(a), unwrap(b)))
	case viable == 0:
		Logger().Debug("dispatch degraded to plain",
			zap.String("op", o.String()),
			zap.Int("candidates", len(hs)))
		return computeBinary(o, unwrap(a), unwrap(b))
	default:
		panic(errors.AmbiguousDispatch(o.String(), viable))
	}
}

// computeBinary evaluates o on two plain values: the left value's Operator
// hook first, then the right value's ReverseOperator hook, then the
// built-in kernel. Compound-assign codes reaching the kernel compute their
// base operator; plain assignment yields the right value.
func computeBinary(o op.Op, x, y any) any {
	if h, ok := x.(Operator); ok {
		if r, handled := h.ApplyOp(o, y); handled {
			return r
		}
	}
	if h, ok := y.(ReverseOperator); ok {
		if r, handled := h.ApplyOpFrom(o, x); handled {
			return r
		}
	}
	switch {
	case o == op.Assign:
		return y
	case o.IsAssign():
		return arith.Binary(o.Base(), x, y)
	default:
		return arith.Binary(o, x, y)
	}
}

// Unary applies a unary operator. A recognized operand re-tags the result;
// an unrecognized operand computes plain. Post-increment and post-decrement
// yield the old value.
func Unary(o op.Op, x any) any {
	if !o.IsUnary() {
		panic(errors.IllegalOperation(o.String(), x))
	}
	if Is(x) {
		return Of(computeUnary(o, unwrap(x)))
	}
	return computeUnary(o, x)
}

// computeUnary evaluates o on one plain value, the value's Operator hook
// first (step operators pass a nil rhs).
func computeUnary(o op.Op, v any) any {
	if h, ok := v.(Operator); ok {
		if r, handled := h.ApplyOp(o, nil); handled {
			return r
		}
	}
	switch o {
	case op.Addr:
		return internedPtr(v)
	case op.Deref:
		return derefValue(v)
	default:
		return arith.Unary(o, v)
	}
}

// Call applies the dual call semantics. With every participant recognized
// and a callable represented value, the call happens on constant values and
// the result is tagged (and must itself be liftable). Any unrecognized
// participant makes it a live call with a plain result. A zero-argument
// call on a non-callable value yields the represented value itself.
func Call(f any, args ...any) any {
	known := Is(f)
	for _, a := range args {
		known = known && Is(a)
	}
	fv := unwrap(f)
	c, ok := callableValue(fv)
	if !ok {
		if len(args) == 0 {
			return fv
		}
		panic(errors.NotCallable(fv, len(args)))
	}
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = unwrap(a)
	}
	r := c.Call(vals...)
	if !known {
		return r
	}
	if !Liftable(r) {
		panic(errors.IllegalOperation("()", r))
	}
	return Of(r)
}

// Index applies the tagged/plain index rule, symmetric to Call: indexing
// with every participant recognized tags the element, any unrecognized
// index yields the plain element. The value's Indexable hook is consulted
// first, then built-in indexing for strings and arrays.
func Index(x any, args ...any) any {
	known := Is(x)
	for _, a := range args {
		known = known && Is(a)
	}
	xv := unwrap(x)
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = unwrap(a)
	}
	r := indexValue(xv, vals)
	if !known {
		return r
	}
	if !Liftable(r) {
		panic(errors.IllegalOperation("[]", r))
	}
	return Of(r)
}

func indexValue(v any, args []any) any {
	if h, ok := indexableValue(v); ok {
		return h.Index(args...)
	}
	if len(args) != 1 {
		panic(errors.IllegalOperation("[]", v))
	}
	i, ok := arith.ToIndex(args[0])
	if !ok {
		panic(errors.IllegalOperation("[]", args[0]))
	}
	return arith.Index(v, i)
}

// Arrow resolves member-access forwarding: the represented value's Arrower
// hook when present, else a pointer to the interned value. The result is
// not re-tagged.
func Arrow(x any) any {
	v := unwrap(x)
	if h, ok := arrowerValue(v); ok {
		return h.Arrow()
	}
	return internedPtr(v)
}

// Const's own Call, Index and Arrow methods delegate back into the
// dispatch, so a tag in value position is never treated as a capability
// carrier.

func callableValue(v any) (Callable, bool) {
	if isTag(v) {
		return nil, false
	}
	c, ok := v.(Callable)
	return c, ok
}

func indexableValue(v any) (Indexable, bool) {
	if isTag(v) {
		return nil, false
	}
	x, ok := v.(Indexable)
	return x, ok
}

func arrowerValue(v any) (Arrower, bool) {
	if isTag(v) {
		return nil, false
	}
	a, ok := v.(Arrower)
	return a, ok
}

// interned memoizes one immutable copy per value, so taking the address of
// equal tags yields the same pointer and address identity stays structural.
var interned sync.Map

func internedPtr(v any) any {
	if !Liftable(v) {
		panic(errors.IllegalOperation(op.Addr.String(), v))
	}
	if p, ok := interned.Load(v); ok {
		return p
	}
	pv := reflect.New(reflect.TypeOf(v))
	pv.Elem().Set(reflect.ValueOf(v))
	p, _ := interned.LoadOrStore(v, pv.Interface())
	return p
}

func derefValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(errors.IllegalOperation(op.Deref.String(), v))
	}
	return rv.Elem().Interface()
}
