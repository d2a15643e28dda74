package codec

import (
	"github.com/cockroachdb/apd/v3"
)

// Decode parses a byte string into a decimal. The empty byte string
// decodes to the absent decimal (nil, nil). Decoding is total: malformed
// input never yields an error. It decodes to some decimal, or to NaN when
// a lone byte has no table entry or the exponent is out of bounds.
func (c Codec) Decode(data []byte) (x *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return nil, nil
	}

	first := data[0]

	if len(data) == 1 {
		switch first {
		case NaN.Value:
			return &apd.Decimal{Form: apd.NaN}, nil
		case PosInfinity.Value:
			return &apd.Decimal{Form: apd.Infinite}, nil
		case NegInfinity.Value:
			return &apd.Decimal{Form: apd.Infinite, Negative: true}, nil
		case Zero.Value:
			return &apd.Decimal{}, nil
		case NegZero.Value:
			return &apd.Decimal{Negative: true}, nil
		}

		val := int64(first & fieldMask)
		if first&expSignBit != 0 {
			val -= smallHighBias
		} else {
			val -= smallBias
		}

		if val < 0 || val > smallMax {
			return &apd.Decimal{Form: apd.NaN}, nil
		}

		d := apd.New(val, 0)
		d.Negative = first&signBit != 0

		return d, nil
	}

	neg := first&signBit != 0
	v := int64(first & fieldMask)
	rest := data[1:]

	var mag int64
	switch {
	case v > 7:
		mag = v - 7
	case v >= 1:
		n := int(v)
		if n > len(rest) {
			n = len(rest)
		}

		for i := n - 1; i >= 0; i-- {
			mag = mag<<8 | int64(rest[i])
		}

		rest = rest[n:]
	}

	e := mag
	if first&expSignBit != 0 {
		e = -mag
	}

	return c.materialize(neg, e, limbs(digits(rest)))
}

// digits converts the little-endian mantissa bytes from base 256 into
// base Radix, least significant digit first.
func digits(mantissa []byte) (ds []int64) {
	for i := len(mantissa) - 1; i >= 0; i-- {
		carry := int64(mantissa[i])
		for j := range ds {
			v := ds[j]<<8 + carry
			ds[j] = v % Radix
			carry = v / Radix
		}

		for ; carry > 0; carry /= Radix {
			ds = append(ds, carry%Radix)
		}
	}

	return ds
}

// limbs materializes the limb sequence from the radix digits, expanding
// run-length signifiers. A dangling signifier with no following count is
// dropped.
func limbs(ds []int64) (ws []int64) {
	for k := len(ds) - 1; k >= 0; k-- {
		switch ds[k] {
		case ZerosSignifier, NinesSignifier:
			var fill int64
			if ds[k] == NinesSignifier {
				fill = Base - 1
			}

			if k == 0 {
				continue
			}

			k--
			for n := ds[k]; n > 0; n-- {
				ws = append(ws, fill)
			}
		default:
			ws = append(ws, ds[k])
		}
	}

	return ws
}
