package radix

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Value type represents an exact rational number, the intermediate form
// of every conversion.
// The zero value is 0.
//
// Since the number is exact, there is no working precision:
// a number read in one base is written to another base without
// any rounding of the intermediate value.
// Value is immutable, so it is safe for concurrent use by multiple goroutines.
type Value struct {
	rat *big.Rat // nil means 0; never modified after construction
}

// newValueUnsafe takes ownership of x.
func newValueUnsafe(x *big.Rat) Value {
	if x.Sign() == 0 {
		return Value{}
	}
	return Value{rat: x}
}

// NewValue returns a value equal to num / den.
//
// NewValue returns an error if den is 0.
func NewValue(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, fmt.Errorf("computing %v / %v: %w", num, den, ErrDivisionByZero)
	}
	return newValueUnsafe(big.NewRat(num, den)), nil
}

// MustNewValue is like [NewValue] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding values.
func MustNewValue(num, den int64) Value {
	v, err := NewValue(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewValue(%v, %v) failed: %v", num, den, err))
	}
	return v
}

// NewValueFromInt returns a value equal to x.
// The argument is copied.
func NewValueFromInt(x *big.Int) Value {
	return newValueUnsafe(new(big.Rat).SetInt(x))
}

// NewValueFromRat returns a value equal to x.
// The argument is copied.
func NewValueFromRat(x *big.Rat) Value {
	return newValueUnsafe(new(big.Rat).Set(x))
}

// NewValueFromDecimal returns a value exactly equal to d.
// See also method [Value.Decimal].
func NewValueFromDecimal(d decimal.Decimal) Value {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	return newValueUnsafe(new(big.Rat).SetFrac(num, den))
}

// Decimal returns the value as a (possibly rounded) decimal with at most
// [decimal.MaxScale] digits after the decimal point.
// See also constructor [NewValueFromDecimal].
//
// Decimal returns an error if the integer part of the value does not fit
// into a decimal.
func (v Value) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(v.Rat().FloatString(decimal.MaxScale))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", v, decimal.Decimal{}, err)
	}
	return d.Trim(0), nil
}

// Rat returns a copy of the value as a rational number.
func (v Value) Rat() *big.Rat {
	if v.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(v.rat)
}

// Int returns the integer part of the value, truncated towards zero.
func (v Value) Int() *big.Int {
	if v.rat == nil {
		return new(big.Int)
	}
	return new(big.Int).Quo(v.rat.Num(), v.rat.Denom())
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value) Sign() int {
	if v.rat == nil {
		return 0
	}
	return v.rat.Sign()
}

// IsNeg returns:
//
//	true  if v < 0
//	false otherwise
func (v Value) IsNeg() bool {
	return v.Sign() < 0
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// IsInt returns true if the value has no fractional part.
func (v Value) IsInt() bool {
	return v.rat == nil || v.rat.IsInt()
}

// Neg returns a value with the opposite sign.
func (v Value) Neg() Value {
	return newValueUnsafe(new(big.Rat).Neg(v.Rat()))
}

// Abs returns the absolute value.
func (v Value) Abs() Value {
	if !v.IsNeg() {
		return v
	}
	return v.Neg()
}

// Cmp compares values and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
func (v Value) Cmp(w Value) int {
	return v.Rat().Cmp(w.Rat())
}

// Equal returns true if v and w are the same number.
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// String method implements the [fmt.Stringer] interface and returns the
// value in base 10.
// A repeating decimal expansion is written with its cycle in parentheses,
// for example "0.1(6)" for 1/6.
// Expansions longer than [DefaultPrec] digits are cut.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	r, err := formatRat(v.Rat(), 10, DefaultPrec)
	if err != nil {
		return v.Rat().RatString()
	}
	return r.String()
}
