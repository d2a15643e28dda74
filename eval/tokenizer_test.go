package eval

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func kindName(k kind) string {
	switch k {
	case kindNumber:
		return "num"
	case kindVariable:
		return "var"
	case kindFunction:
		return "fn"
	case kindOperator:
		return "op"
	case kindEnd:
		return "end"
	}

	return "?"
}

func flatten(toks []token) (out []string) {
	for _, t := range toks {
		out = append(out, fmt.Sprintf("%s:%s", kindName(t.kind), t.sym))
	}

	return out
}

func TestTokenize(t *testing.T) {
	bindings := map[string]*binding{
		"x": {val: apd.New(2, 0)},
		"min": {fn: func(args ...*apd.Decimal) (any, error) {
			return 0, nil
		}},
	}

	lx := newLexer([]string{"x", "min"})

	type TC struct {
		Input  string
		Tokens []string
		Parsed string
	}

	tcs := []TC{
		{
			Input: "2x + min(1, 2)",
			Tokens: []string{
				"num:2", "op:*", "var:x", "op:+", "fn:min",
				"op:(", "num:1", "op:,", "num:2", "op:)", "end:end",
			},
			Parsed: "2*x + min(1, 2)",
		},
		{
			Input:  "2**3",
			Tokens: []string{"num:2", "op:^", "num:3", "end:end"},
			Parsed: "2^3",
		},
		{
			Input:  "1!=2",
			Tokens: []string{"num:1", "op:!=", "num:2", "end:end"},
			Parsed: "1!=2",
		},
		{
			Input:  "1!2",
			Tokens: []string{"num:1", "op:*", "op:!", "num:2", "end:end"},
			Parsed: "1*!2",
		},
		{
			Input:  "(2)(x)",
			Tokens: []string{"op:(", "num:2", "op:)", "op:*", "op:(", "var:x", "op:)", "end:end"},
			Parsed: "(2)*(x)",
		},
		{
			Input:  "1.5e-3",
			Tokens: []string{"num:1.5e-3", "end:end"},
			Parsed: "1.5e-3",
		},
		{
			Input:  "x√x",
			Tokens: []string{"var:x", "op:*", "op:√", "var:x", "end:end"},
			Parsed: "x*√x",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			toks, parsed, err := lx.tokenize(tc.Input, bindings)
			require.NoError(t, err)

			require.Empty(t, cmp.Diff(tc.Tokens, flatten(toks)))
			require.Equal(t, tc.Parsed, parsed)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, _, err := lx.tokenize("2 # 3", bindings)
		require.ErrorContains(t, err, "unknown symbol")
	})

	t.Run("longest-first", func(t *testing.T) {
		b := map[string]*binding{
			"x":  {val: apd.New(1, 0)},
			"xy": {val: apd.New(2, 0)},
			"y":  {val: apd.New(3, 0)},
		}

		toks, _, err := newLexer([]string{"x", "xy", "y"}).tokenize("xy", b)
		require.NoError(t, err)
		require.Equal(t, []string{"var:xy", "end:end"}, flatten(toks))

		// Without the longer name bound, the same text splits into an
		// implicit multiplication.
		delete(b, "xy")

		toks, _, err = newLexer([]string{"x", "y"}).tokenize("xy", b)
		require.NoError(t, err)
		require.Equal(t, []string{"var:x", "op:*", "var:y", "end:end"}, flatten(toks))
	})
}
