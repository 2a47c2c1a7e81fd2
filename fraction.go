package radix

import (
	"fmt"
	"math/big"
)

// maxFix bounds the digit correction loop of negative bases.
// A sound step needs at most one correction.
const maxFix = 2

// fraction holds the fractional digits produced by expandFrac.
type fraction struct {
	digits string
	cycle  int  // index in digits where the cycle starts, or -1
	cutoff bool // whether prec digits were produced without end or cycle
}

// FormatFrac converts frac, a number in the range [0, 1), to base b.
// Digits are produced until the expansion terminates, a repeating cycle
// is found, or prec digits have been produced.
// See [Result.Frac] for the digits.
//
// For a positive base the integer part of the result is always "0".
// For a negative base it can be "1", because the digits after the radix
// point of a negative base cannot express every value of [0, 1).
// For example, 1/2 in base -2 is "1.1", that is 1 - 1/2.
//
// FormatFrac returns an error if:
//   - b is not a valid base;
//   - prec is negative;
//   - frac is outside of [0, 1).
func FormatFrac(frac *big.Rat, b Base, prec int) (Result, error) {
	if frac.Sign() < 0 || frac.Cmp(ratOne) >= 0 {
		return Result{}, fmt.Errorf("formatting fraction %v: not within [0, 1): %w", frac.RatString(), ErrInvalidArgument)
	}
	return formatRat(frac, b, prec)
}

// ParseFrac converts the digits that follow the radix point in base b to
// a fraction.
// Each digit d at position k, starting from 1, contributes d * b^-k, so for
// a negative base the result can be negative.
// An empty string is 0.
//
// ParseFrac returns an error if b is not a valid base or a character is
// not a digit of base b.
func ParseFrac(s string, b Base) (*big.Rat, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	base := new(big.Rat).SetInt64(int64(b))
	pow := new(big.Rat).Inv(base)
	term := new(big.Rat)
	z := new(big.Rat)
	for i := 0; i < len(s); i++ {
		d, err := digitIn(s[i], b)
		if err != nil {
			return nil, fmt.Errorf("parsing %q at position %v: %w", s, i, err)
		}
		term.SetInt64(int64(d))
		term.Mul(term, pow)
		z.Add(z, term)
		pow.Quo(pow, base)
	}
	return z, nil
}

// fracBounds returns the interval [lo, hi] of the values that the
// digits after the radix point can express in base b:
//
//	[0, 1]                 for b = r > 0
//	[-r/(r+1), 1/(r+1)]    for b = -r < 0
//
// The interval always has length 1.
func fracBounds(b Base) (lo, hi *big.Rat) {
	if !b.IsNeg() {
		return new(big.Rat), new(big.Rat).SetInt64(1)
	}
	r := int64(b.Radix())
	return big.NewRat(-r, r+1), big.NewRat(1, r+1)
}

// expandFrac produces the digits of y in base b.
// For a positive base y must be in [0, 1), for a negative base
// it must be within fracBounds.
//
// The remainder after each digit stays within the same interval, and since
// its denominator never grows there are finitely many remainders:
// every expansion either terminates or repeats.
// A repeated remainder is found by its exact value.
func expandFrac(y *big.Rat, b Base, prec int) (fraction, error) {
	f := fraction{cycle: -1}
	if y.Sign() == 0 {
		return f, nil
	}
	r := int64(b.Radix())
	lo, hi := fracBounds(b)
	base := new(big.Rat).SetInt64(int64(b))
	y = new(big.Rat).Set(y)
	dig := new(big.Rat)
	seen := make(map[string]int)
	buf := make([]byte, 0, min(prec, 64))

	for y.Sign() != 0 {
		// Cycle
		key := y.RatString()
		if i, ok := seen[key]; ok {
			f.cycle = i
			break
		}
		if len(buf) >= prec {
			f.cutoff = true
			break
		}
		seen[key] = len(buf)

		// Next digit
		y.Mul(y, base)
		var d int64
		if b.IsNeg() {
			var err error
			d, err = negDigit(y, r, lo, hi)
			if err != nil {
				return fraction{}, fmt.Errorf("expanding digit %v: %w", len(buf), err)
			}
		} else {
			d = floorRat(y).Int64()
		}
		y.Sub(y, dig.SetInt64(d))

		c, err := DigitToChar(int(d))
		if err != nil || d >= r {
			return fraction{}, fmt.Errorf("expanding digit %v: %w", len(buf), errInvariant)
		}
		buf = append(buf, c)
	}

	f.digits = string(buf)
	return f, nil
}

// negDigit chooses the digit d of a negative base of radix r for
// t = y * b, such that t - d is within [lo, hi].
// The initial estimate floor(t - lo) is corrected by at most maxFix steps,
// it only overshoots when t - lo is exactly r.
func negDigit(t *big.Rat, r int64, lo, hi *big.Rat) (int64, error) {
	x := new(big.Rat).Sub(t, lo)
	d := floorRat(x).Int64()
	rem := new(big.Rat).Sub(t, new(big.Rat).SetInt64(d))
	for n := 0; d >= r || rem.Cmp(lo) < 0; n++ {
		if n == maxFix {
			return 0, fmt.Errorf("digit correction did not converge: %w", errInvariant)
		}
		d--
		rem.Add(rem, ratOne)
	}
	for n := 0; d < 0 || rem.Cmp(hi) > 0; n++ {
		if n == maxFix {
			return 0, fmt.Errorf("digit correction did not converge: %w", errInvariant)
		}
		d++
		rem.Sub(rem, ratOne)
	}
	if d < 0 || d >= r || rem.Cmp(lo) < 0 {
		return 0, fmt.Errorf("digit %v out of range for radix %v: %w", d, r, errInvariant)
	}
	return d, nil
}

var ratOne = big.NewRat(1, 1)

// floorRat returns the largest integer not greater than x.
func floorRat(x *big.Rat) *big.Int {
	// Denominators of big.Rat are always positive,
	// so Euclidean division is floor division here.
	return new(big.Int).Div(x.Num(), x.Denom())
}
