package eval

import (
	"regexp"

	"github.com/cockroachdb/apd/v3"
)

// Scope maps identifiers to decimal values or host functions. Value
// entries may be anything the decimal constructor accepts: *apd.Decimal,
// apd.Decimal, string, int, int64, or float64.
type Scope map[string]any

// Func is a host function callable from expressions. Its return value is
// passed back through the decimal constructor.
type Func func(args ...*apd.Decimal) (any, error)

var identRE = regexp.MustCompile(`^[A-Za-z_$\x{0370}-\x{03FF}][0-9A-Za-z_$\x{0370}-\x{03FF}]*$`)

// binding is one installed scope slot. Exactly one of fn and val is set;
// which one never changes over the binding's lifetime.
type binding struct {
	fn  Func
	val *apd.Decimal
}

func newBinding(v any) (*binding, error) {
	switch v := v.(type) {
	case Func:
		return &binding{fn: v}, nil
	case func(args ...*apd.Decimal) (any, error):
		return &binding{fn: v}, nil
	}

	d, err := toDecimal(v)
	if err != nil {
		return nil, err
	}

	return &binding{val: d}, nil
}

func toDecimal(v any) (*apd.Decimal, error) {
	switch v := v.(type) {
	case *apd.Decimal:
		return new(apd.Decimal).Set(v), nil
	case apd.Decimal:
		return new(apd.Decimal).Set(&v), nil
	case string:
		d, _, err := apd.NewFromString(v)
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return d, nil
	case int:
		return apd.New(int64(v), 0), nil
	case int64:
		return apd.New(v, 0), nil
	case float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(v); err != nil {
			return nil, Error.Wrap(err)
		}

		return d, nil
	}

	return nil, Error.New("not a decimal value: %T", v)
}
