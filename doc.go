// Package apdx extends the apd arbitrary-precision decimal library with a
// compact binary serialization and an infix expression evaluator.
//
// The codec package encodes any apd.Decimal (including NaN, ±Infinity, and
// signed zero) into a minimal self-describing byte string and decodes it
// back to an equal value (same sign, including the sign of zero; NaN for
// NaN). Re-encoding the decoded value reproduces the same bytes; the
// decoded coefficient and exponent are canonical and need not match the
// original representation.
//
// The eval package tokenizes and evaluates arithmetic and boolean infix
// expressions over decimals, with user supplied variables and functions,
// implicit multiplication, and in-place re-binding of scope values.
package apdx
