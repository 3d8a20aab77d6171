/*
Package decmath implements decimal-safe arithmetic over float64 operands.

Native float64 arithmetic accumulates binary representation error on decimal
fractions: 0.1 + 0.2 yields 0.30000000000000004.
The functions in this package convert each operand to an exact decimal using
its shortest round-trip decimal form, perform the operation in decimal
arithmetic, and convert the result back, so decimal quantities combine the
way they read.

# Special Values

NaN, infinities, and magnitudes beyond the precision of the [decimal]
package are computed with native float64 arithmetic instead, so special
values follow the usual IEEE 754 propagation rules rather than producing
errors.
The only error condition in this package is division by exactly zero.

# Rounding

[Round] rounds a result to a fixed number of decimal places.
It deliberately scales in float64 rather than decimal arithmetic, so the
rounding point is determined by the float64 value actually held, not by an
idealized decimal reading of it.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package decmath
