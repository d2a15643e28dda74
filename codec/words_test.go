package codec

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"
)

func decimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()

	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestWords(t *testing.T) {
	type TC struct {
		Input string
		E     int64
		Words []int64
	}

	tcs := []TC{
		{Input: "1", E: 0, Words: []int64{1}},
		{Input: "50", E: 1, Words: []int64{50}},
		{Input: "100", E: 2, Words: []int64{100}},
		{Input: "123.45", E: 2, Words: []int64{123, 4500000}},
		{Input: "0.5", E: -1, Words: []int64{5000000}},
		{Input: "0.0123", E: -2, Words: []int64{123000}},
		{Input: "1e7", E: 7, Words: []int64{1}},
		{Input: "1e40", E: 40, Words: []int64{100000}},
		{Input: "1e-40", E: -40, Words: []int64{100}},
		{Input: "10000001", E: 7, Words: []int64{1, 1}},
		{Input: "0.123456789", E: -1, Words: []int64{1234567, 8900000}},
		{
			Input: "99999999999999999999999999999999999",
			E:     34,
			Words: []int64{9999999, 9999999, 9999999, 9999999, 9999999},
		},
		{
			// The same value spelled with a deeper exponent still
			// yields the canonical split.
			Input: "123.4500",
			E:     2,
			Words: []int64{123, 4500000},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			e, ws := words(decimal(t, tc.Input))
			require.Equal(t, tc.E, e)
			require.Equal(t, tc.Words, ws)
		})
	}
}

func TestRunLength(t *testing.T) {
	type TC struct {
		Name   string
		Words  []int64
		Tokens []int64
	}

	tcs := []TC{
		{
			Name:   "no-runs",
			Words:  []int64{1, 2, 3},
			Tokens: []int64{1, 2, 3},
		},
		{
			Name:   "zero-run-of-two-is-literal",
			Words:  []int64{1, 0, 0, 5000000},
			Tokens: []int64{1, 0, 0, 5000000},
		},
		{
			Name:   "zero-run-of-three-compresses",
			Words:  []int64{1, 0, 0, 0, 500000},
			Tokens: []int64{1, ZerosSignifier, 3, 500000},
		},
		{
			Name:   "nine-run-of-two-is-literal",
			Words:  []int64{1, 9999999, 9999999, 9500000},
			Tokens: []int64{1, 9999999, 9999999, 9500000},
		},
		{
			Name:   "nine-run-of-five-compresses",
			Words:  []int64{9999999, 9999999, 9999999, 9999999, 9999999},
			Tokens: []int64{NinesSignifier, 5},
		},
		{
			Name:   "other-runs-stay-literal",
			Words:  []int64{5, 5, 5, 5},
			Tokens: []int64{5, 5, 5, 5},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Tokens, runLength(tc.Words))
		})
	}
}

func TestMaterialize(t *testing.T) {
	t.Run("inverse-of-words", func(t *testing.T) {
		inputs := []string{
			"1",
			"50",
			"123.45",
			"0.5",
			"0.0123",
			"1e40",
			"1e-40",
			"10000001",
			"123456789.123456789",
		}

		for _, input := range inputs {
			in := decimal(t, input)

			e, ws := words(in)

			out, err := Default.materialize(in.Negative, e, ws)
			require.NoError(t, err)
			require.Zero(t, in.Cmp(out), "input %s got %s", input, out)
		}
	})

	t.Run("out-of-range", func(t *testing.T) {
		d, err := Default.materialize(false, DefaultMaxE+1, []int64{1})
		require.NoError(t, err)
		require.Equal(t, apd.NaN, d.Form)

		d, err = Default.materialize(false, DefaultMinE-1, []int64{1})
		require.NoError(t, err)
		require.Equal(t, apd.NaN, d.Form)
	})
}
