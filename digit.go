package radix

import "fmt"

const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DigitToChar returns the character of digit d:
// '0' to '9' for 0 to 9 and 'A' to 'Z' for 10 to 35.
//
// DigitToChar returns an error if d is not between 0 and 35.
func DigitToChar(d int) (byte, error) {
	if d < 0 || d >= len(digits) {
		return 0, fmt.Errorf("digit %v: %w", d, ErrDigitOutOfRange)
	}
	return digits[d], nil
}

// CharToDigit returns the digit of character c.
// Letters are case-insensitive, so both 'z' and 'Z' are 35.
//
// CharToDigit returns an error if c is not an ASCII digit or letter.
func CharToDigit(c byte) (int, error) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), nil
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, nil
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, nil
	}
	return 0, fmt.Errorf("character %q: %w", c, ErrInvalidCharacter)
}

// digitIn decodes c and checks that it is a digit of base b.
func digitIn(c byte, b Base) (int, error) {
	d, err := CharToDigit(c)
	if err != nil {
		return 0, err
	}
	if d >= b.Radix() {
		return 0, fmt.Errorf("character %q in base %v: %w", c, b, ErrDigitOutOfRange)
	}
	return d, nil
}
