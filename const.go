package known

import (
	"fmt"
	"reflect"

	"github.com/knownkit/known/errors"
)

// Const is the value tag. It holds one liftable value and is never mutated;
// every operator produces a new value. Two tags of the same value compare
// equal with ==, so tag identity is structural.
type Const struct {
	value any
}

// Of tags a value. It panics with *errors.Error when v is not liftable.
func Of(v any) Const {
	if !Liftable(v) {
		panic(errors.NotLiftable(v))
	}
	return Const{value: v}
}

// Liftable reports whether v can be carried by a tag. A value qualifies
// when it is non-nil and comparable, which is what structural tag identity
// requires; maps, slices, funcs and values containing them do not qualify.
func Liftable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Comparable()
}

// ConstValue returns the represented value.
func (c Const) ConstValue() any {
	return c.value
}

// TagRoot returns the hierarchy root, which for Const is itself.
func (c Const) TagRoot() Const {
	return c
}

// String renders the represented value.
func (c Const) String() string {
	return fmt.Sprintf("%v", c.value)
}

// GoString renders the tag in constructor form.
func (c Const) GoString() string {
	return fmt.Sprintf("known.Of(%#v)", c.value)
}
