package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var bigBase = apd.NewBigInt(Base)

// words splits a finite nonzero decimal into the adjusted exponent of its
// most significant digit and its base 10^7 limbs. Limbs are aligned so
// the first carries (e+1) % 7 digits (plus 7 when e is negative; 7 when
// e+1 is a positive multiple of 7) and every following limb exactly 7,
// the last right-padded with zeros.
// Trailing zero digits of the coefficient are not significant and are
// dropped first, so the result is canonical for any representation of
// the same value.
func words(x *apd.Decimal) (e int64, ws []int64) {
	ds := x.Coeff.String()

	e = int64(x.Exponent) + int64(len(ds)) - 1
	ds = strings.TrimRight(ds, "0")

	i := (e + 1) % logBase
	if e < 0 {
		i += logBase
	}

	n := int64(len(ds))
	if i < n {
		if i > 0 {
			ws = append(ws, limb(ds[:i]))
		}

		for n -= logBase; i < n; i += logBase {
			ws = append(ws, limb(ds[i:i+logBase]))
		}

		ws = append(ws, limb(rpad(ds[i:], logBase)))
	} else {
		ws = append(ws, limb(rpad(ds, i)))
	}

	return e, ws
}

// firstWidth is the number of digit positions covered by the first limb
// for a value with adjusted exponent e.
func firstWidth(e int64) int64 {
	i := (e + 1) % logBase
	if e < 0 {
		i += logBase
	}
	if i == 0 {
		i = logBase
	}

	return i
}

// materialize builds the decimal for a sign, adjusted exponent, and limb
// sequence, collapsing to NaN when the exponent falls outside the host
// bounds.
func (c Codec) materialize(neg bool, e int64, ws []int64) (*apd.Decimal, error) {
	if e > c.MaxE || e < c.MinE {
		return &apd.Decimal{Form: apd.NaN}, nil
	}

	coeff := new(apd.BigInt)
	for _, w := range ws {
		coeff.Mul(coeff, bigBase)
		coeff.Add(coeff, apd.NewBigInt(w))
	}

	if coeff.Sign() == 0 {
		return &apd.Decimal{Negative: neg}, nil
	}

	positions := firstWidth(e) + logBase*int64(len(ws)-1)
	exponent := e - positions + 1
	if exponent < math.MinInt32 || exponent > math.MaxInt32 {
		return &apd.Decimal{Form: apd.NaN}, nil
	}

	return &apd.Decimal{
		Negative: neg,
		Exponent: int32(exponent),
		Coeff:    *coeff,
	}, nil
}

func limb(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)

	return v
}

func rpad(s string, width int64) string {
	for int64(len(s)) < width {
		s += "0"
	}

	return s
}
