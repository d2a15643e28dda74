package codec

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
)

var Error = errs.Class("codec")

var ErrNoDecimal = Error.New("no decimal")

// Mantissa constants. Limbs are base 10^7 digits; the conversion radix
// reserves two extra digit values for the run-length sentinels.
const (
	Base  = 10_000_000
	Radix = Base + 2

	ZerosSignifier = Base
	NinesSignifier = Base + 1

	logBase = 7
)

// Small integer field biases and the inline exponent ceiling.
const (
	smallBias     = 38
	smallHighBias = 12
	smallLowMax   = 25
	smallMax      = 50

	maxInlineExponent = 30
)

// Default host exponent bounds. The adjusted exponent of a decoded value
// must lie within them or the value collapses to NaN.
const (
	DefaultMaxE int64 = 9e15
	DefaultMinE int64 = -9e15
)

// Codec encodes and decodes decimals against a pair of host exponent
// bounds. The bounds are checked only when decoding a multi-byte value;
// specials and single-byte integers decode regardless. The zero value
// accepts only an adjusted exponent of zero; use Default or fill in both
// bounds.
type Codec struct {
	MaxE int64
	MinE int64
}

// Default is the codec with exponent bounds of ±9e15, a magnitude that
// takes seven exponent bytes (which can carry up to 2^56-1).
var Default = Codec{
	MaxE: DefaultMaxE,
	MinE: DefaultMinE,
}

// Encode returns the byte string for x using the default bounds.
func Encode(x *apd.Decimal) (data []byte, err error) {
	return Default.Encode(x)
}

// Decode parses a byte string using the default bounds.
func Decode(data []byte) (x *apd.Decimal, err error) {
	return Default.Decode(data)
}
