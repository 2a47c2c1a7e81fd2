package radix

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	DefaultPrec  = 20     // default number of fractional digits
	MaxPrec      = 100000 // maximum number of fractional digits
	DisplayWidth = 50     // maximum length of Line.Text
)

// Converter converts numbers between bases.
// It carries the precision, the maximum number of fractional digits
// produced when a number is written to a base.
// Integer digits are never limited.
//
// The zero value is a converter with precision 0, which writes only the
// integer part of numbers.
// Converter is designed to be safe for concurrent use by multiple goroutines.
type Converter struct {
	prec int
}

// DefaultConverter is a converter with precision [DefaultPrec].
var DefaultConverter = Converter{prec: DefaultPrec}

// NewConverter returns a converter with the given precision.
//
// NewConverter returns an error if prec is negative or greater than [MaxPrec].
func NewConverter(prec int) (Converter, error) {
	if prec < 0 || prec > MaxPrec {
		return Converter{}, fmt.Errorf("precision %v: must be between 0 and %v: %w", prec, MaxPrec, ErrInvalidArgument)
	}
	return Converter{prec: prec}, nil
}

// MustNewConverter is like [NewConverter] but panics if the precision is not valid.
func MustNewConverter(prec int) Converter {
	c, err := NewConverter(prec)
	if err != nil {
		panic(fmt.Sprintf("NewConverter(%v) failed: %v", prec, err))
	}
	return c
}

// Prec returns the maximum number of fractional digits produced by [Converter.Format].
func (c Converter) Prec() int {
	return c.prec
}

// Parse converts a number written in base b to a value.
// The text must be in the following format:
//
//	["-"] digit* ["." digit*]
//
// with at least one digit, where digit is one of 0-9, A-Z or a-z.
// For example, "FF.8" in base 16 is 255.5, and ".1" in base 3 is exactly 1/3.
// The sign is only allowed for positive bases.
// The result is exact, the precision of the converter is not used.
//
// Parse returns an error if:
//   - b is not a valid base;
//   - the text is empty, has more than one radix point, or a misplaced sign;
//   - a character is not a digit of base b.
func (c Converter) Parse(text string, b Base) (Value, error) {
	if err := b.check(); err != nil {
		return Value{}, err
	}
	s := text

	// Sign
	neg := false
	if len(s) > 0 && s[0] == '-' {
		if b.IsNeg() {
			return Value{}, fmt.Errorf("parsing %q: negative sign not allowed with negative base: %w", text, ErrInvalidFormat)
		}
		neg = true
		s = s[1:]
	}
	if strings.ContainsAny(s, "+-") {
		return Value{}, fmt.Errorf("parsing %q: misplaced sign: %w", text, ErrInvalidFormat)
	}

	// Radix point
	if strings.Count(s, ".") > 1 {
		return Value{}, fmt.Errorf("parsing %q: more than one radix point: %w", text, ErrInvalidFormat)
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return Value{}, fmt.Errorf("parsing %q: no digits: %w", text, ErrInvalidFormat)
	}

	// Integer part
	z := new(big.Rat)
	if whole != "" {
		n, err := parseDigits(whole, b)
		if err != nil {
			return Value{}, fmt.Errorf("parsing integer part: %w", err)
		}
		z.SetInt(n)
	}

	// Fractional part
	f, err := ParseFrac(frac, b)
	if err != nil {
		return Value{}, fmt.Errorf("parsing fractional part: %w", err)
	}
	z.Add(z, f)

	if neg {
		z.Neg(z)
	}
	return newValueUnsafe(z), nil
}

// Format writes v in base b with at most [Converter.Prec] fractional digits.
//
// For a positive base the sign applies to the whole number: a negative
// value is written as '-' followed by the digits of its absolute value.
// For a negative base no sign is ever written, both the integer and the
// fractional digits are non-negative.
//
// Format returns an error if b is not a valid base.
func (c Converter) Format(v Value, b Base) (Result, error) {
	return formatRat(v.Rat(), b, c.prec)
}

// Convert reads text in base from and writes it in base to.
// See methods [Converter.Parse] and [Converter.Format].
func (c Converter) Convert(text string, from, to Base) (Result, error) {
	v, err := c.Parse(text, from)
	if err != nil {
		return Result{}, fmt.Errorf("reading base %v: %w", from, err)
	}
	r, err := c.Format(v, to)
	if err != nil {
		return Result{}, fmt.Errorf("writing base %v: %w", to, err)
	}
	return r, nil
}

// Line is a row of the table produced by [Converter.Sweep].
type Line struct {
	Base   Base
	Result Result
	Text   string // Result shortened to DisplayWidth characters
}

// Sweep writes v in every base from -36 to 36, skipping -1, 0 and 1.
// If positiveOnly is true, only the bases from 2 to 36 are used.
// The lines are ordered by base, see also [Bases].
func (c Converter) Sweep(v Value, positiveOnly bool) ([]Line, error) {
	x := v.Rat()
	bases := Bases(positiveOnly)
	lines := make([]Line, 0, len(bases))
	for _, b := range bases {
		r, err := formatRat(x, b, c.prec)
		if err != nil {
			return nil, fmt.Errorf("writing base %v: %w", b, err)
		}
		lines = append(lines, Line{Base: b, Result: r, Text: r.Truncate(DisplayWidth)})
	}
	return lines, nil
}

// SweepText is like [Converter.Sweep] but reads the number from text in base from.
func (c Converter) SweepText(text string, from Base, positiveOnly bool) ([]Line, error) {
	v, err := c.Parse(text, from)
	if err != nil {
		return nil, fmt.Errorf("reading base %v: %w", from, err)
	}
	return c.Sweep(v, positiveOnly)
}

// ParseValue is like [Converter.Parse] of the [DefaultConverter].
func ParseValue(text string, b Base) (Value, error) {
	return DefaultConverter.Parse(text, b)
}

// MustParseValue is like [ParseValue] but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParseValue(text string, b Base) Value {
	v, err := ParseValue(text, b)
	if err != nil {
		panic(fmt.Sprintf("ParseValue(%q, %v) failed: %v", text, b, err))
	}
	return v
}

// Convert is like [Converter.Convert] of the [DefaultConverter].
func Convert(text string, from, to Base) (Result, error) {
	return DefaultConverter.Convert(text, from, to)
}

// formatRat writes x in base b with at most prec fractional digits.
//
// A positive base splits |x| into floor(|x|) and a fraction in [0, 1).
// A negative base splits x into an integer n and a fraction within
// fracBounds, choosing n = ceil(x - hi); the integer digits and the
// fractional digits then add up to x without any sign.
func formatRat(x *big.Rat, b Base, prec int) (Result, error) {
	if err := b.check(); err != nil {
		return Result{}, err
	}
	if prec < 0 {
		return Result{}, fmt.Errorf("precision %v: %w", prec, ErrInvalidArgument)
	}

	neg := false
	var n *big.Int
	y := new(big.Rat)
	if b.IsNeg() {
		_, hi := fracBounds(b)
		t := new(big.Rat).Sub(x, hi)
		n = floorRat(t.Neg(t))
		n.Neg(n)
		y.Sub(x, y.SetInt(n))
	} else {
		a := new(big.Rat).Abs(x)
		neg = x.Sign() < 0
		n = floorRat(a)
		y.Sub(a, y.SetInt(n))
	}

	whole, err := FormatInt(n, b)
	if err != nil {
		return Result{}, fmt.Errorf("writing integer part: %w", err)
	}
	f, err := expandFrac(y, b, prec)
	if err != nil {
		return Result{}, fmt.Errorf("writing fractional part: %w", err)
	}
	return newResult(b, neg, whole, f), nil
}
