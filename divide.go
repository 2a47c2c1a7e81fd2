package radix

import (
	"fmt"
	"math/big"
)

var (
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
)

// QuoRem returns the quotient q and the remainder r of x divided by y,
// such that
//
//	x = q * y + r
//	0 <= r < |y|
//
// Unlike [big.Int.QuoRem] and [big.Int.DivMod], the remainder is never
// negative, whatever the signs of x and y are.
// This is the division used to peel digits off an integer in a negative base.
// The arguments are not modified.
//
// QuoRem returns an error if y is 0.
func QuoRem(x, y *big.Int) (q, r *big.Int, err error) {
	if y.Sign() == 0 {
		return nil, nil, fmt.Errorf("computing %v / %v: %w", x, y, ErrDivisionByZero)
	}
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	normRem(q, r, y)
	return q, r, nil
}

// quoRemMinusOne is QuoRem for x = -1 and y < 0, where the quotient is
// known in closed form: floor(-1 / y) + 1.
// It must agree with QuoRem, it only saves a division.
//
// quoRemMinusOne returns an error for any other arguments, including y = 0.
func quoRemMinusOne(x, y *big.Int) (q, r *big.Int, err error) {
	switch {
	case y.Sign() >= 0:
		return nil, nil, fmt.Errorf("minus one shortcut needs a negative divisor, got %v: %w", y, ErrInvalidArgument)
	case x.Cmp(bigMinusOne) != 0:
		return nil, nil, fmt.Errorf("minus one shortcut needs a dividend of -1, got %v: %w", x, ErrInvalidArgument)
	}
	// -1 / y lies in (0, 1], so truncation and floor agree.
	q = new(big.Int).Quo(bigMinusOne, y)
	q.Add(q, bigOne)
	r = new(big.Int).Mul(q, y)
	r.Sub(x, r)
	normRem(q, r, y)
	return q, r, nil
}

// normRem moves the remainder r into [0, |y|) keeping q * y + r unchanged.
func normRem(q, r, y *big.Int) {
	step := big.NewInt(int64(y.Sign()))
	abs := new(big.Int).Abs(y)
	for r.Sign() < 0 {
		q.Sub(q, step)
		r.Add(r, abs)
	}
	for r.Cmp(abs) >= 0 {
		q.Add(q, step)
		r.Sub(r, abs)
	}
}
