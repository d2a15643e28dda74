package eval

import (
	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
	"golang.org/x/exp/maps"
)

var Error = errs.Class("eval")

var ErrNoExpression = Error.New("no expression to evaluate")

// DefaultContext returns the arithmetic context used when New is given
// nil: 20 significant digits with half-up rounding.
func DefaultContext() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(20)
	ctx.Rounding = apd.RoundHalfUp

	return ctx
}

// Evaluator tokenizes and evaluates expressions. It owns the installed
// scope, the token list of the last expression, and the identifier
// matcher built from the scope, so expressions can be re-evaluated under
// scope mutation without re-tokenizing. Not safe for concurrent use.
type Evaluator struct {
	ctx *apd.Context

	bindings   map[string]*binding
	lex        *lexer
	tokens     []token
	expression string
}

// New returns an evaluator computing with ctx, or with DefaultContext
// when ctx is nil.
func New(ctx *apd.Context) *Evaluator {
	if ctx == nil {
		ctx = DefaultContext()
	}

	return &Evaluator{ctx: ctx}
}

// Expression returns the last successfully parsed expression text,
// including any implicit * insertions.
func (e *Evaluator) Expression() string {
	return e.expression
}

// Evaluate tokenizes expr and computes its value. A non-nil scope is
// validated and installed first, replacing any previous scope; a nil
// scope reuses the previous one. On error the evaluator keeps the scope,
// tokens, and expression of its last successful call.
func (e *Evaluator) Evaluate(expr string, scope Scope) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	bindings := e.bindings
	lex := e.lex

	if scope != nil {
		bindings, lex, err = install(scope)
		if err != nil {
			return nil, err
		}
	} else if lex == nil {
		lex = newLexer(nil)
	}

	toks, parsed, err := lex.tokenize(expr, bindings)
	if err != nil {
		return nil, err
	}

	d, err = e.run(bindings, toks)
	if err != nil {
		return nil, err
	}

	e.bindings = bindings
	e.lex = lex
	e.tokens = toks
	e.expression = parsed

	return d, nil
}

// Rebind updates values of existing bindings in place and re-evaluates
// the previously tokenized expression. Bindings keep their kind: a value
// slot only accepts a constructible value and a function slot only a
// function. Names absent from the scope are rejected.
func (e *Evaluator) Rebind(values Scope) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	if e.tokens == nil {
		return nil, oops.Trace(ErrNoExpression)
	}

	type update struct {
		slot *binding
		next binding
	}

	ups := make([]update, 0, len(values))
	for name, v := range values {
		slot, ok := e.bindings[name]
		if !ok {
			return nil, Error.New("identifier not in scope: %q", name)
		}

		next, err := newBinding(v)
		if err != nil {
			return nil, err
		}

		if (slot.fn != nil) != (next.fn != nil) {
			if slot.fn != nil {
				return nil, Error.New("cannot rebind function %q to a value", name)
			}

			return nil, Error.New("cannot rebind value %q to a function", name)
		}

		ups = append(ups, update{slot: slot, next: *next})
	}

	olds := make([]binding, len(ups))
	for i, u := range ups {
		olds[i] = *u.slot
		*u.slot = u.next
	}

	d, err = e.run(e.bindings, e.tokens)
	if err != nil {
		for i, u := range ups {
			*u.slot = olds[i]
		}

		return nil, err
	}

	return d, nil
}

func install(scope Scope) (map[string]*binding, *lexer, error) {
	bindings := make(map[string]*binding, len(scope))
	for name, v := range scope {
		if !identRE.MatchString(name) {
			return nil, nil, Error.New("invalid identifier: %q", name)
		}

		b, err := newBinding(v)
		if err != nil {
			return nil, nil, err
		}

		bindings[name] = b
	}

	return bindings, newLexer(maps.Keys(bindings)), nil
}

func (e *Evaluator) run(bindings map[string]*binding, toks []token) (*apd.Decimal, error) {
	p := &parser{
		ctx:      e.ctx,
		bindings: bindings,
		toks:     toks,
	}

	d, err := p.evaluate(0)
	if err != nil {
		return nil, err
	}

	if t := p.cur(); t.kind != kindEnd {
		return nil, Error.New("unexpected symbol: %q", t.sym)
	}

	return new(apd.Decimal).Set(d), nil
}
