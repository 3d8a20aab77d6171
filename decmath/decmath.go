package decmath

import (
	"errors"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// ErrDivisionByZero is returned by [Div] when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// dec converts a float to a decimal using the float's shortest round-trip
// decimal representation, so the decimal's scale is exactly the number of
// significant fractional digits of the float.
// The second return value is false for NaN, infinities, and values that do
// not fit into a decimal.
func dec(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, false
	}
	// Values below the decimal's resolution get rounded by Parse; treat
	// them as unrepresentable rather than computing with a lossy operand.
	if v, ok := d.Float64(); !ok || v != f {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Add returns the sum a + b computed in exact decimal arithmetic, so that
// decimal fractions add without binary floating-point drift:
//
//	0.1 + 0.2       // 0.30000000000000004 in native float64
//	Add(0.1, 0.2)   // 0.3
//
// Operands that cannot be represented as decimals (NaN, infinities, or
// magnitudes beyond the decimal precision) are added natively instead, so
// special values propagate through the usual float64 rules.
func Add(a, b float64) float64 {
	da, aok := dec(a)
	db, bok := dec(b)
	if !aok || !bok {
		return a + b
	}
	d, err := da.Add(db)
	if err != nil {
		return a + b
	}
	if f, ok := d.Float64(); ok {
		return f
	}
	return a + b
}

// Sub returns the difference a - b computed in exact decimal arithmetic.
// See [Add] for the handling of non-decimal operands.
func Sub(a, b float64) float64 {
	da, aok := dec(a)
	db, bok := dec(b)
	if !aok || !bok {
		return a - b
	}
	d, err := da.Sub(db)
	if err != nil {
		return a - b
	}
	if f, ok := d.Float64(); ok {
		return f
	}
	return a - b
}

// Mul returns the product a * b computed in exact decimal arithmetic, e.g.
// Mul(1.2, 2.1) is exactly 2.52 where native multiplication yields
// 2.5199999999999996.
// See [Add] for the handling of non-decimal operands.
func Mul(a, b float64) float64 {
	da, aok := dec(a)
	db, bok := dec(b)
	if !aok || !bok {
		return a * b
	}
	d, err := da.Mul(db)
	if err != nil {
		return a * b
	}
	if f, ok := d.Float64(); ok {
		return f
	}
	return a * b
}

// Div returns the quotient a / b computed in exact decimal arithmetic,
// rounded to the decimal precision.
// See [Add] for the handling of non-decimal operands.
//
// Div returns [ErrDivisionByZero] if b is exactly zero.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	da, aok := dec(a)
	db, bok := dec(b)
	if !aok || !bok {
		return a / b, nil
	}
	d, err := da.Quo(db)
	if err != nil {
		return a / b, nil
	}
	if f, ok := d.Float64(); ok {
		return f, nil
	}
	return a / b, nil
}

// Round rounds x to the given number of decimal places as
// round(x * 10^scale) / 10^scale, half away from zero.
// The scaling is performed in float64, so results inherit the usual float64
// representation of the scaled value; Round(0.145, 2) is 0.14 because
// 0.145*100 is 14.499999999999998.
// A negative scale rounds to the left of the decimal point.
func Round(x float64, scale int) float64 {
	pow := math.Pow10(scale)
	return math.Round(x*pow) / pow
}
