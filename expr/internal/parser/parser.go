package parser

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knownkit/known"
	"github.com/knownkit/known/errors"
	"github.com/knownkit/known/expr/internal/token"
	"github.com/knownkit/known/literal"
	"github.com/knownkit/known/op"
)

type opEntry struct {
	text string
	code op.Op
}

// Binary precedence levels, loosest first. Every level is left
// associative; index arguments parse one level above the comma.
var levels = [][]opEntry{
	{{",", op.Comma}},
	{{"||", op.LogOr}},
	{{"&&", op.LogAnd}},
	{{"|", op.Or}},
	{{"^", op.Xor}},
	{{"&", op.And}},
	{{"==", op.Eq}, {"!=", op.Ne}},
	{{"<=", op.Le}, {">=", op.Ge}, {"<", op.Lt}, {">", op.Gt}},
	{{"<=>", op.Cmp}},
	{{"<<", op.Shl}, {">>", op.Shr}},
	{{"+", op.Add}, {"-", op.Sub}},
	{{"*", op.Mul}, {"/", op.Div}, {"%", op.Mod}},
}

var prefix = map[string]op.Op{
	"+": op.Pos,
	"-": op.Neg,
	"~": op.BitNot,
	"^": op.BitNot,
	"!": op.Not,
}

// tagSuffix maps number suffixes to literal forms. The w and W spellings
// receive the hex text with the absorbed marker still attached.
var tagSuffix = map[string]func(string) (known.Const, error){
	"cw": literal.Cw,
	"CW": literal.CW,
	"w":  literal.Wc,
	"W":  literal.WC,
}

type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream as one expression.
func (p *Parser) Parse() (Node, error) {
	n, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, errors.BadToken(t.Offset, fmt.Sprintf("unexpected %q after expression", t.Value))
	}
	return n, nil
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.UnexpectedEnd(typ.String())
	}
	if t.Type != typ {
		return nil, errors.BadToken(t.Offset, fmt.Sprintf("expected %v, got %q", typ, t.Value))
	}
	return t, nil
}

func (p *Parser) binary(level int) (Node, error) {
	if level == len(levels) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.Type != token.Operator {
			return left, nil
		}
		code, ok := match(level, t.Value)
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &Binary{X: left, Y: right, Op: code, Offset: t.Offset}
	}
}

func match(level int, text string) (op.Op, bool) {
	for _, e := range levels[level] {
		if e.text == text {
			return e.code, true
		}
	}
	return 0, false
}

func (p *Parser) unary() (Node, error) {
	t := p.peek()
	if t != nil && t.Type == token.Operator {
		if code, ok := prefix[t.Value]; ok {
			p.next()
			x, err := p.unary()
			if err != nil {
				return nil, err
			}
			return &Unary{X: x, Op: code, Offset: t.Offset}, nil
		}
	}
	return p.postfix()
}

func (p *Parser) postfix() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.Type != token.LBracket {
			return x, nil
		}
		p.next()
		var args []Node
		if nxt := p.peek(); nxt == nil || nxt.Type != token.RBracket {
			for {
				a, err := p.binary(1)
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				sep := p.peek()
				if sep == nil || sep.Type != token.Operator || sep.Value != "," {
					break
				}
				p.next()
			}
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		x = &Index{X: x, Args: args, Offset: t.Offset}
	}
}

func (p *Parser) primary() (Node, error) {
	t := p.next()
	if t == nil {
		return nil, errors.UnexpectedEnd("expression")
	}
	switch t.Type {
	case token.LParen:
		n, err := p.binary(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return n, nil
	case token.Number:
		return p.number(t)
	case token.String:
		return p.stringLit(t)
	case token.Ident:
		switch t.Value {
		case "true":
			return &Value{X: true, Offset: t.Offset}, nil
		case "false":
			return &Value{X: false, Offset: t.Offset}, nil
		}
		return nil, errors.BadToken(t.Offset, fmt.Sprintf("unknown identifier %q", t.Value))
	default:
		return nil, errors.BadToken(t.Offset, fmt.Sprintf("expected expression, got %q", t.Value))
	}
}

func (p *Parser) number(t *token.Token) (Node, error) {
	if t.Suffix == "" {
		v, err := plainNumber(t.Value)
		if err != nil {
			return nil, errors.BadToken(t.Offset, fmt.Sprintf("malformed number %q", t.Value))
		}
		return &Value{X: v, Offset: t.Offset}, nil
	}
	parse, ok := tagSuffix[t.Suffix]
	if !ok {
		return nil, errors.BadToken(t.Offset, fmt.Sprintf("unknown literal suffix %q on %q", t.Suffix, t.Value))
	}
	c, err := parse(t.Value)
	if err != nil {
		return nil, err
	}
	return &Value{X: c, Offset: t.Offset}, nil
}

func (p *Parser) stringLit(t *token.Token) (Node, error) {
	switch t.Suffix {
	case "":
		return &Value{X: t.Value, Offset: t.Offset}, nil
	case "sc":
		c, err := literal.Sc(t.Value)
		if err != nil {
			return nil, err
		}
		return &Value{X: c, Offset: t.Offset}, nil
	}
	return nil, errors.BadToken(t.Offset, fmt.Sprintf("unknown string suffix %q", t.Suffix))
}

// plainNumber resolves an unsuffixed literal: float64 when fractional or
// exponent syntax appears, otherwise int64 widening to uint64.
func plainNumber(text string) (any, error) {
	hex := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
	if !hex && strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err == nil {
		return n, nil
	}
	if stderrors.Is(err, strconv.ErrRange) {
		if u, uerr := strconv.ParseUint(text, 0, 64); uerr == nil {
			return u, nil
		}
	}
	return nil, err
}
