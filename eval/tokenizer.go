package eval

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/exp/slices"
)

// lexer matches one lexeme at a time: a number literal, an operator, or
// an identifier currently bound in scope. Identifiers are alternated
// into the pattern longest first so the longest bound name wins.
type lexer struct {
	re *regexp.Regexp
}

func newLexer(names []string) *lexer {
	slices.SortFunc(names, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}

		return strings.Compare(a, b)
	})

	pat := `^(?:(\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)|(!=|==|<=|>=|&&|\|\||[-+*/%^()!<>√,])`
	if len(names) > 0 {
		quoted := make([]string, 0, len(names))
		for _, n := range names {
			quoted = append(quoted, regexp.QuoteMeta(n))
		}

		pat += `|(` + strings.Join(quoted, `|`) + `)`
	}
	pat += `)`

	return &lexer{re: regexp.MustCompile(pat)}
}

// tokenize splits src into tokens, resolving identifier kinds against
// the given bindings and inserting implicit * operators. It returns the
// token list terminated by the end sentinel and the parsed expression
// text including the insertions.
func (l *lexer) tokenize(src string, bindings map[string]*binding) (toks []token, parsed string, err error) {
	defer Error.WrapP(&err)

	src = strings.ReplaceAll(src, "**", "^")

	var sb strings.Builder

	pos := 0
	for pos < len(src) {
		r, w := utf8.DecodeRuneInString(src[pos:])
		if unicode.IsSpace(r) {
			sb.WriteRune(r)
			pos += w

			continue
		}

		if len(toks) > 0 && juxtaposable(toks[len(toks)-1]) && startsTerm(src[pos:]) {
			toks = append(toks, token{kind: kindOperator, sym: "*"})
			sb.WriteString("*")
		}

		m := l.re.FindStringSubmatch(src[pos:])
		if m == nil {
			return nil, "", Error.New("unknown symbol: %q", string(r))
		}

		lexeme := m[0]
		switch {
		case m[1] != "":
			d, _, err := apd.NewFromString(lexeme)
			if err != nil {
				return nil, "", Error.Wrap(err)
			}

			toks = append(toks, token{kind: kindNumber, sym: lexeme, num: d})
		case m[2] != "":
			toks = append(toks, token{kind: kindOperator, sym: lexeme})
		default:
			b := bindings[lexeme]
			if b == nil {
				return nil, "", Error.New("unknown symbol: %q", lexeme)
			}

			k := kindVariable
			if b.fn != nil {
				k = kindFunction
			}

			toks = append(toks, token{kind: k, sym: lexeme})
		}

		sb.WriteString(lexeme)
		pos += len(lexeme)
	}

	toks = append(toks, token{kind: kindEnd, sym: "end"})

	return toks, sb.String(), nil
}

// juxtaposable reports whether t may be the left side of an implicit
// multiplication: a number, a variable, or a closing parenthesis.
func juxtaposable(t token) bool {
	switch t.kind {
	case kindNumber, kindVariable:
		return true
	case kindOperator:
		return t.sym == ")"
	}

	return false
}

// startsTerm reports whether s begins a term an implicit * may precede:
// an identifier, an opening parenthesis, a square root, or a unary !
// that is not the != operator.
func startsTerm(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case identStart(r):
		return true
	case r == '(', r == '√':
		return true
	case r == '!':
		return len(s) < 2 || s[1] != '='
	}

	return false
}

func identStart(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r == '_', r == '$':
		return true
	case r >= 0x0370 && r <= 0x03FF:
		return true
	}

	return false
}
