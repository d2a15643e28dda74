package eval

import (
	"github.com/cockroachdb/apd/v3"
)

// parser walks a token list with the top-down operator precedence loop:
// the token starting an expression supplies its value through prefix,
// then any operator whose left binding power exceeds the requested right
// binding power folds the value through infix.
type parser struct {
	ctx      *apd.Context
	bindings map[string]*binding
	toks     []token
	pos      int
}

func (p *parser) cur() *token {
	return &p.toks[p.pos]
}

func (p *parser) next() *token {
	t := &p.toks[p.pos]
	p.pos++

	return t
}

func (p *parser) evaluate(rbp int) (*apd.Decimal, error) {
	t := p.next()

	left, err := p.prefix(t)
	if err != nil {
		return nil, err
	}

	for rbp < p.lbp(p.cur()) {
		t = p.next()

		left, err = p.infix(t, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *parser) lbp(t *token) int {
	if t.kind == kindOperator {
		return operators[t.sym].lbp
	}

	return 0
}

func (p *parser) prefix(t *token) (*apd.Decimal, error) {
	switch t.kind {
	case kindNumber:
		return t.num, nil
	case kindVariable:
		return p.bindings[t.sym].val, nil
	case kindFunction:
		return p.call(t)
	case kindEnd:
		return nil, Error.New("unexpected end of expression")
	}

	if !operators[t.sym].prefix {
		return nil, Error.New("unexpected symbol: %q", t.sym)
	}

	switch t.sym {
	case "+":
		return p.evaluate(70)
	case "-":
		v, err := p.evaluate(70)
		if err != nil {
			return nil, err
		}

		res := new(apd.Decimal)
		if _, err := p.ctx.Neg(res, v); err != nil {
			return nil, Error.Wrap(err)
		}

		return res, nil
	case "!":
		v, err := p.evaluate(70)
		if err != nil {
			return nil, err
		}

		if v.IsZero() {
			return apd.New(1, 0), nil
		}

		return apd.New(0, 0), nil
	case "√":
		v, err := p.evaluate(79)
		if err != nil {
			return nil, err
		}

		res := new(apd.Decimal)
		if _, err := p.ctx.Sqrt(res, v); err != nil {
			return nil, Error.Wrap(err)
		}

		return res, nil
	case "(":
		v, err := p.evaluate(0)
		if err != nil {
			return nil, err
		}

		if c := p.cur(); c.kind != kindOperator || c.sym != ")" {
			return nil, Error.New("expected ) but found %q", c.sym)
		}
		p.pos++

		return v, nil
	}

	return nil, Error.New("unexpected symbol: %q", t.sym)
}

// call parses a parenthesized, comma separated argument list and applies
// the bound host function. Arguments are copied so the function cannot
// disturb token or binding state.
func (p *parser) call(t *token) (*apd.Decimal, error) {
	if c := p.cur(); c.kind != kindOperator || c.sym != "(" {
		return nil, Error.New("expected ( after %q", t.sym)
	}
	p.pos++

	var args []*apd.Decimal
	if c := p.cur(); c.kind != kindOperator || c.sym != ")" {
		for {
			v, err := p.evaluate(0)
			if err != nil {
				return nil, err
			}

			args = append(args, new(apd.Decimal).Set(v))

			c := p.cur()
			if c.kind == kindOperator && c.sym == "," {
				p.pos++

				continue
			}

			break
		}
	}

	if c := p.cur(); c.kind != kindOperator || c.sym != ")" {
		return nil, Error.New("expected ) but found %q", c.sym)
	}
	p.pos++

	ret, err := p.bindings[t.sym].fn(args...)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return toDecimal(ret)
}

func (p *parser) infix(t *token, left *apd.Decimal) (*apd.Decimal, error) {
	res := new(apd.Decimal)

	switch t.sym {
	case "^":
		// Right associative: the right side binds one power looser
		// than ^ itself.
		right, err := p.evaluate(79)
		if err != nil {
			return nil, err
		}

		if _, err := p.ctx.Pow(res, left, right); err != nil {
			return nil, Error.Wrap(err)
		}

		return res, nil
	case "*", "/", "%":
		right, err := p.evaluate(60)
		if err != nil {
			return nil, err
		}

		switch t.sym {
		case "*":
			_, err = p.ctx.Mul(res, left, right)
		case "/":
			_, err = p.ctx.Quo(res, left, right)
		case "%":
			_, err = p.ctx.Rem(res, left, right)
		}
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return res, nil
	case "+", "-":
		right, err := p.evaluate(50)
		if err != nil {
			return nil, err
		}

		if t.sym == "+" {
			_, err = p.ctx.Add(res, left, right)
		} else {
			_, err = p.ctx.Sub(res, left, right)
		}
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return res, nil
	case ">", ">=", "<", "<=":
		right, err := p.evaluate(40)
		if err != nil {
			return nil, err
		}

		return compare(t.sym, left, right), nil
	case "==", "!=":
		right, err := p.evaluate(30)
		if err != nil {
			return nil, err
		}

		return compare(t.sym, left, right), nil
	case "&&":
		right, err := p.evaluate(20)
		if err != nil {
			return nil, err
		}

		if left.IsZero() {
			return left, nil
		}

		return right, nil
	case "||":
		right, err := p.evaluate(10)
		if err != nil {
			return nil, err
		}

		if left.IsZero() {
			return right, nil
		}

		return left, nil
	}

	return nil, Error.New("unexpected symbol: %q", t.sym)
}

// compare returns 1 or 0. Any comparison involving NaN is false, except
// != which is true.
func compare(op string, l, r *apd.Decimal) *apd.Decimal {
	if isNaN(l) || isNaN(r) {
		if op == "!=" {
			return apd.New(1, 0)
		}

		return apd.New(0, 0)
	}

	c := l.Cmp(r)

	var ok bool
	switch op {
	case ">":
		ok = c > 0
	case ">=":
		ok = c >= 0
	case "<":
		ok = c < 0
	case "<=":
		ok = c <= 0
	case "==":
		ok = c == 0
	case "!=":
		ok = c != 0
	}

	if ok {
		return apd.New(1, 0)
	}

	return apd.New(0, 0)
}

func isNaN(d *apd.Decimal) bool {
	return d.Form == apd.NaN || d.Form == apd.NaNSignaling
}
