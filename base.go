package radix

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Base type represents the radix of a positional numeral system.
// Its magnitude is between 2 and 36, and it can be negative.
// The zero value is not a valid base.
//
// A negative base (a [negabase]) uses the digits 0 to |b|-1 like its
// positive counterpart, but the weight of each position alternates in sign.
// Every integer, positive or negative, has exactly one representation
// in a negative base without a sign character.
//
// Base is a plain integer, so it is safe for concurrent use by multiple goroutines.
//
// [negabase]: https://en.wikipedia.org/wiki/Negative_base
type Base int8

const (
	MinBase = -36 // smallest supported base
	MaxBase = 36  // largest supported base
)

// NewBase converts an integer to a base.
// NewBase returns an error if b is -1, 0 or 1, or if |b| is greater than 36.
func NewBase(b int) (Base, error) {
	switch {
	case b == 0:
		return 0, fmt.Errorf("base %v: positional notation is undefined: %w", b, ErrUnsupportedBase)
	case b == 1 || b == -1:
		return 0, fmt.Errorf("base %v: representations are not unique: %w", b, ErrUnsupportedBase)
	case b < MinBase || b > MaxBase:
		return 0, fmt.Errorf("base %v: magnitude must be between 2 and %v: %w", b, MaxBase, ErrUnsupportedBase)
	}
	return Base(b), nil
}

// MustNewBase is like [NewBase] but panics if the integer is not a valid base.
// It simplifies safe initialization of global variables holding bases.
func MustNewBase(b int) Base {
	c, err := NewBase(b)
	if err != nil {
		panic(fmt.Sprintf("NewBase(%v) failed: %v", b, err))
	}
	return c
}

// ParseBase converts a string to a base.
// The input string must be a decimal integer, optionally preceded by a sign:
//
//	16
//	+16
//	-2
//
// ParseBase returns an error if the string does not represent a valid base.
func ParseBase(s string) (Base, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing base %q: %w", s, ErrUnsupportedBase)
	}
	return NewBase(n)
}

// MustParseBase is like [ParseBase] but panics if the string cannot be parsed.
func MustParseBase(s string) Base {
	b, err := ParseBase(s)
	if err != nil {
		panic(fmt.Sprintf("ParseBase(%q) failed: %v", s, err))
	}
	return b
}

// Valid returns true if b can be used for conversions.
// Only the zero value and out-of-range conversions from integers are invalid.
func (b Base) Valid() bool {
	_, err := NewBase(int(b))
	return err == nil
}

// check is like [Base.Valid] but returns the reason.
func (b Base) check() error {
	_, err := NewBase(int(b))
	return err
}

// Radix returns the number of digits of the base, that is |b|.
func (b Base) Radix() int {
	if b < 0 {
		return -int(b)
	}
	return int(b)
}

// IsNeg returns:
//
//	true  if b < 0
//	false otherwise
func (b Base) IsNeg() bool {
	return b < 0
}

// String method implements the [fmt.Stringer] interface and returns
// the base as a decimal integer.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (b Base) String() string {
	return strconv.Itoa(int(b))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON numbers and JSON strings are accepted.
// See also constructor [ParseBase].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (b *Base) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*b, err = ParseBase(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Base(0), err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (b Base) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(b), 10), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseBase].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (b *Base) UnmarshalText(text []byte) error {
	var err error
	*b, err = ParseBase(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Base(0), err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (b Base) AppendText(text []byte) ([]byte, error) {
	return strconv.AppendInt(text, int64(b), 10), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (b Base) MarshalText() ([]byte, error) {
	return b.AppendText(nil)
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (b *Base) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*b, err = NewBase(int(value))
	case string:
		*b, err = ParseBase(value)
	case []byte:
		*b, err = ParseBase(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Base(0), NullBase{}, Base(0))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Base(0), err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (b Base) Value() (driver.Value, error) {
	return int64(b), nil
}

// NullBase represents a base that can be null.
// Its zero value is null.
// NullBase is not thread-safe.
type NullBase struct {
	Base  Base
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Base.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullBase) Scan(value any) error {
	if value == nil {
		n.Base = 0
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Base.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Base.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullBase) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Base.Value()
}

// Bases returns the bases from -36 to 36 in ascending order, skipping -1, 0 and 1.
// If positiveOnly is true, only the bases from 2 to 36 are returned.
func Bases(positiveOnly bool) []Base {
	bases := make([]Base, 0, 2*(MaxBase-1))
	if !positiveOnly {
		for b := MinBase; b <= -2; b++ {
			bases = append(bases, Base(b))
		}
	}
	for b := 2; b <= MaxBase; b++ {
		bases = append(bases, Base(b))
	}
	return bases
}
