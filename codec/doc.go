// Package codec implements a compact binary encoding for arbitrary
// precision decimals.
//
// A decimal is viewed as a sign, a base 10 exponent e of its most
// significant digit, and a sequence of base 10^7 limbs holding the
// significant digits. The encoding is self describing and length minimal:
// special values and small integers take a single byte, and long runs of
// all-zero or all-nine limbs are run-length compressed.
//
// First Byte
//
// Reserved values encode the specials directly:
//
//  | Byte        | Value     |
//  |-------------|-----------|
//  | 0100_0000   | NaN       |
//  | 0111_1111   | +Infinity |
//  | 1111_1111   | -Infinity |
//  | 0010_0110   | 0         |
//  | 1010_0110   | -0        |
//
// Every other first byte is split into three fields:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---|-----------------------|
//  | s | x | v                     |
//
// Bit s is the sign (1 = negative). Bit x is the exponent sign in the
// general case and the high-range flag in the single byte integer case.
// The 6-bit field v selects one of five overlapping roles:
//
//  | v         | Role                                                    |
//  |-----------|---------------------------------------------------------|
//  | 0         | exponent magnitude zero                                 |
//  | [1, 7]    | count of little-endian exponent magnitude bytes to read |
//  | [8, 37]   | exponent magnitude v-7, in [1, 30]                      |
//  | [38, 63]  | x=0: whole byte is the integer v-38, in [0, 25]         |
//  | [38, 62]  | x=1: whole byte is the integer v-12, in [26, 50]        |
//
// Integers in [-50, 50] therefore encode to exactly one byte, as do NaN
// and the infinities.
//
// Mantissa
//
// The bytes following the exponent carry the limbs converted from base
// Radix = 10^7 + 2 into a little-endian base 256 accumulator. The two
// extra digit values are run-length sentinels: a run of more than two
// identical all-zero (or all-nine) limbs is replaced by ZerosSignifier
// (or NinesSignifier) followed by the repeat count. Runs of one or two
// limbs are stored literally.
//
// Decoding is total: the empty byte string decodes to the absent decimal
// (nil), and a reconstructed exponent outside the configured host bounds
// collapses the value to NaN rather than failing.
package codec
