package radix

import (
	"fmt"
	"math/big"
)

// FormatInt returns the digits of n in base b, most significant first.
//
// For a positive base a negative n is written as '-' followed by the digits of |n|.
// For a negative base the result never has a sign: every integer has a
// representation with non-negative digits only, which is the one returned.
// Zero is "0" in every base.
//
// FormatInt returns an error if b is not a valid base.
func FormatInt(n *big.Int, b Base) (string, error) {
	buf, err := appendInt(nil, n, b)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// appendInt appends the digits of n in base b to buf.
func appendInt(buf []byte, n *big.Int, b Base) ([]byte, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		return append(buf, '0'), nil
	}
	neg := false
	if !b.IsNeg() && n.Sign() < 0 {
		neg = true
		n = new(big.Int).Abs(n)
	}
	base := big.NewInt(int64(b))

	// Digits, least significant first
	var rev []byte
	q, r, err := QuoRem(n, base)
	for {
		if err != nil {
			return nil, fmt.Errorf("peeling digit %v: %w", len(rev), err)
		}
		c, cerr := DigitToChar(int(r.Int64()))
		if cerr != nil {
			return nil, fmt.Errorf("peeling digit %v: %w: %w", len(rev), errInvariant, cerr)
		}
		rev = append(rev, c)
		if q.Sign() == 0 {
			break
		}
		if b.IsNeg() && q.Cmp(bigMinusOne) == 0 {
			q, r, err = quoRemMinusOne(q, base)
		} else {
			q, r, err = QuoRem(q, base)
		}
	}

	// Sign
	if neg {
		buf = append(buf, '-')
	}

	// Digits, most significant first
	for i := len(rev) - 1; i >= 0; i-- {
		buf = append(buf, rev[i])
	}
	return buf, nil
}

// ParseInt converts a string of digits in base b to an integer.
// Letters are case-insensitive.
// A leading '-' is accepted only for a positive base, since a negative base
// needs no sign to write negative integers.
//
// ParseInt returns an error if:
//   - b is not a valid base;
//   - the string is empty or has a misplaced sign;
//   - a character is not a digit of base b.
func ParseInt(s string, b Base) (*big.Int, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	neg := false
	if len(s) > 0 && s[0] == '-' {
		if b.IsNeg() {
			return nil, fmt.Errorf("parsing %q: negative sign not allowed with negative base: %w", s, ErrInvalidFormat)
		}
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("parsing integer: no digits: %w", ErrInvalidFormat)
	}
	z, err := parseDigits(s, b)
	if err != nil {
		return nil, err
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// parseDigits accumulates an unsigned digit string with Horner's method.
// The base keeps its sign, so digits of a negative base get alternating weights.
func parseDigits(s string, b Base) (*big.Int, error) {
	base := big.NewInt(int64(b))
	dig := new(big.Int)
	z := new(big.Int)
	for i := 0; i < len(s); i++ {
		d, err := digitIn(s[i], b)
		if err != nil {
			return nil, fmt.Errorf("parsing %q at position %v: %w", s, i, err)
		}
		z.Mul(z, base)
		z.Add(z, dig.SetInt64(int64(d)))
	}
	return z, nil
}
