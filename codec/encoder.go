package codec

import (
	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
)

// Encode returns the byte string for x.
func (c Codec) Encode(x *apd.Decimal) (data []byte, err error) {
	defer Error.WrapP(&err)

	if x == nil {
		return nil, oops.Trace(ErrNoDecimal)
	}

	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return []byte{NaN.Value}, nil
	case apd.Infinite:
		if x.Negative {
			return []byte{NegInfinity.Value}, nil
		}

		return []byte{PosInfinity.Value}, nil
	}

	if x.IsZero() {
		if x.Negative {
			return []byte{NegZero.Value}, nil
		}

		return []byte{Zero.Value}, nil
	}

	e, ws := words(x)

	// A lone limb in [1, 50] sitting on its implicit exponent packs
	// into the first byte alone.
	if len(ws) == 1 && ws[0] <= smallMax {
		implicit := int64(0)
		if ws[0] >= 10 {
			implicit = 1
		}

		if e == implicit {
			b := byte(0)
			if x.Negative {
				b |= signBit
			}

			if ws[0] <= smallLowMax {
				b |= byte(ws[0] + smallBias)
			} else {
				b |= expSignBit | byte(ws[0]+smallHighBias)
			}

			return []byte{b}, nil
		}
	}

	var first byte
	if x.Negative {
		first = signBit
	}

	mag := e
	if e < 0 {
		first |= expSignBit
		mag = -e
	}

	data = append(data, first)

	switch {
	case mag == 0:
	case mag <= maxInlineExponent:
		data[0] |= byte(mag + 7)
	default:
		var eb []byte
		for ; mag > 0; mag >>= 8 {
			eb = append(eb, byte(mag))
		}

		data[0] |= byte(len(eb))
		data = append(data, eb...)
	}

	return appendMantissa(data, runLength(ws)), nil
}

// runLength substitutes runs of more than two identical all-zero or
// all-nine limbs with a signifier and a repeat count. Shorter runs, and
// runs of any other limb, pass through literally.
func runLength(ws []int64) (tokens []int64) {
	for i := 0; i < len(ws); {
		w := ws[i]

		j := i + 1
		for j < len(ws) && ws[j] == w {
			j++
		}

		run := int64(j - i)
		if run > 2 && (w == 0 || w == Base-1) {
			if w == 0 {
				tokens = append(tokens, ZerosSignifier, run)
			} else {
				tokens = append(tokens, NinesSignifier, run)
			}
		} else {
			for ; i < j; i++ {
				tokens = append(tokens, w)
			}
		}

		i = j
	}

	return tokens
}

// appendMantissa converts the token sequence from base Radix into a
// little-endian base 256 accumulator appended in place to data.
func appendMantissa(data []byte, tokens []int64) []byte {
	start := len(data)

	for _, token := range tokens {
		carry := uint64(token)
		for i := start; i < len(data); i++ {
			v := uint64(data[i])*Radix + carry
			data[i] = byte(v)
			carry = v >> 8
		}

		for ; carry > 0; carry >>= 8 {
			data = append(data, byte(carry))
		}
	}

	return data
}
