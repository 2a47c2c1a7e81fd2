/*
Package radix converts numbers between positional numeral systems
with bases from -36 to 36.
It works on exact rational numbers, so integers of any size and
fractions in any base are converted without rounding, and fractional
expansions that repeat are written with their cycle.

# Features

  - Positive bases from 2 to 36 and negative bases from -36 to -2
  - Arbitrary-precision integers, based on [big.Int]
  - Fractional parts with repeating-cycle detection, such as 0.1(6) for 1/6
  - Division with non-negative remainders for any signs of the operands
  - Conversion from and to [decimal.Decimal]
  - Immutable values, safe for concurrent use by multiple goroutines

# Representation

The package consists of four main types: Base, Value, Result and Converter.
A [Base] is a small signed integer, validated on construction.
A [Value] is an exact rational number, the intermediate form of every
conversion.
A [Result] is a number written in some base: a sign, integer digits and
fractional digits, which may end with a repeating cycle.
A [Converter] reads text into values and writes values to bases.
It carries the precision, the maximum number of fractional digits written.
There is no global state.

# Digits

Digit values 0 to 35 are written as '0' to '9' followed by 'A' to 'Z'.
Letters are case-insensitive on input.
Results follow the format

	["-"] digit+ ["." digit+ | "." digit* "(" digit+ ")"]

where the parenthesized digits repeat forever.

# Negative Bases

In a negative base -r the position k has weight (-r)^k, so the weights
alternate in sign.
Every integer has a unique representation with digits 0 to r-1 and
no sign, which is called principal representation.
For example, -10 in base -2 is "1010", since the weights of its
positions are -8, 4, -2 and 1.
No sign is ever written or accepted for negative bases.

The digits after the radix point of base -r can only express values
between -r/(r+1) and 1/(r+1), so the integer part of a negative base
result is chosen such that the remaining fraction falls into this range.
For example, 0.5 in base -2 is "1.1".

# Errors

Errors are returned when parsing bases, numbers or digits fails,
and when a division by zero is requested.
They wrap one of [ErrDivisionByZero], [ErrInvalidArgument],
[ErrInvalidFormat], [ErrInvalidCharacter], [ErrDigitOutOfRange] or
[ErrUnsupportedBase], use [errors.Is] to test for them.
Constructors starting with Must panic instead.

[big.Int]: https://pkg.go.dev/math/big#Int
[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package radix
