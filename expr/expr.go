package expr

import (
	"fmt"
	"reflect"

	"github.com/knownkit/known"
	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/expr/internal/parser"
	"github.com/knownkit/known/expr/internal/token"
	"go.uber.org/zap"
)

// Result is the outcome of one evaluation: the computed value and
// whether a tag carried it. Tagged results hold the underlying value;
// re-tag with known.Of when Known is set.
type Result struct {
	Value any
	Known bool
}

// Type reports the Go type of the computed value.
func (r Result) Type() string {
	if r.Value == nil {
		return "<nil>"
	}
	return reflect.TypeOf(r.Value).String()
}

func (r Result) String() string {
	if r.Known {
		return fmt.Sprintf("%v (%s, known)", r.Value, r.Type())
	}
	return fmt.Sprintf("%v (%s)", r.Value, r.Type())
}

// Eval tokenizes, parses and evaluates one expression against the tag
// algebra. Algebra panics surface as eval-phase errors.
func Eval(src string) (Result, error) {
	tokens, err := token.Tokenize(src)
	if err != nil {
		return Result{}, err
	}
	Logger().Debug("expression tokenized",
		zap.String("src", src),
		zap.Int("tokens", len(tokens)))
	node, err := parser.New(tokens).Parse()
	if err != nil {
		return Result{}, err
	}
	res, err := run(node)
	if err != nil {
		return Result{}, err
	}
	Logger().Debug("expression evaluated",
		zap.String("result", res.String()),
		zap.Bool("known", res.Known))
	return res, nil
}

// run executes the tree, converting algebra panics into errors.
func run(node parser.Node) (res Result, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*errors.Error)
		if !ok {
			panic(r)
		}
		err = e
	}()
	v := eval(node)
	if known.Is(v) {
		return Result{Value: v.(known.Constant).ConstValue(), Known: true}, nil
	}
	return Result{Value: v, Known: false}, nil
}

func eval(n parser.Node) any {
	switch n := n.(type) {
	case *parser.Value:
		return n.X
	case *parser.Unary:
		return known.Unary(n.Op, eval(n.X))
	case *parser.Binary:
		return known.Binary(eval(n.X), n.Op, eval(n.Y))
	case *parser.Index:
		args := make([]any, len(n.Args))
		for i, a := range n.Args {
			args[i] = eval(a)
		}
		return known.Index(eval(n.X), args...)
	}
	panic(errors.InvalidInput(errors.PhaseEval, fmt.Sprintf("unhandled node %T", n)))
}
