package eval

import (
	"github.com/cockroachdb/apd/v3"
)

type kind int

const (
	kindNumber kind = iota
	kindVariable
	kindFunction
	kindOperator
	kindEnd
)

// token is one lexeme of a tokenized expression. Tokens are never
// mutated after creation; re-evaluation walks the same list.
type token struct {
	kind kind
	sym  string
	num  *apd.Decimal
}

// opInfo describes an operator: its left binding power and whether it
// may start an expression or combine a left operand.
type opInfo struct {
	lbp    int
	prefix bool
	infix  bool
}

var operators = map[string]opInfo{
	"^":  {lbp: 80, infix: true},
	"*":  {lbp: 60, infix: true},
	"/":  {lbp: 60, infix: true},
	"%":  {lbp: 60, infix: true},
	"+":  {lbp: 50, prefix: true, infix: true},
	"-":  {lbp: 50, prefix: true, infix: true},
	">":  {lbp: 40, infix: true},
	">=": {lbp: 40, infix: true},
	"<":  {lbp: 40, infix: true},
	"<=": {lbp: 40, infix: true},
	"==": {lbp: 30, infix: true},
	"!=": {lbp: 30, infix: true},
	"&&": {lbp: 20, infix: true},
	"||": {lbp: 10, infix: true},
	"√":  {prefix: true},
	"!":  {prefix: true},
	"(":  {prefix: true},
	")":  {},
	",":  {},
}
