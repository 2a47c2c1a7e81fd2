package radix

import (
	"fmt"
	"strings"
)

// Result represents a number written in some base.
// It consists of an optional sign, the integer digits and the fractional
// digits, which may end with a repeating cycle.
// The zero value is "0".
// Result is designed to be safe for concurrent use by multiple goroutines.
type Result struct {
	base   Base   // target base, zero when unknown
	neg    bool   // whether a '-' precedes the number
	whole  string // integer digits
	frac   string // fractional digits, including the cycle
	cycle  int    // index in frac where the cycle starts, or -1
	cutoff bool   // whether the expansion was cut at the precision limit
}

func newResult(b Base, neg bool, whole string, f fraction) Result {
	return Result{
		base:   b,
		neg:    neg,
		whole:  whole,
		frac:   f.digits,
		cycle:  f.cycle,
		cutoff: f.cutoff,
	}
}

// Base returns the base the number is written in.
func (r Result) Base() Base {
	return r.base
}

// IsNeg returns true if the number is written with a leading '-'.
// This never happens for negative bases.
func (r Result) IsNeg() bool {
	return r.neg
}

// Int returns the digits of the integer part, without a sign.
func (r Result) Int() string {
	if r.whole == "" {
		return "0"
	}
	return r.whole
}

// Frac returns the digits of the fractional part, with the repeating cycle,
// if any, enclosed in parentheses.
// For example, 1/6 in base 10 has the fractional part "1(6)".
// Frac returns an empty string if the number is an integer.
func (r Result) Frac() string {
	if !r.IsRepeating() {
		return r.frac
	}
	return r.frac[:r.cycle] + "(" + r.frac[r.cycle:] + ")"
}

// Prefix returns the fractional digits that precede the repeating cycle.
// If there is no cycle, Prefix returns all fractional digits.
func (r Result) Prefix() string {
	if !r.IsRepeating() {
		return r.frac
	}
	return r.frac[:r.cycle]
}

// Cycle returns the repeating fractional digits, or an empty string
// if the expansion terminates or was cut.
func (r Result) Cycle() string {
	if !r.IsRepeating() {
		return ""
	}
	return r.frac[r.cycle:]
}

// IsRepeating returns true if the fractional part ends with a repeating cycle.
func (r Result) IsRepeating() bool {
	return r.cycle >= 0 && r.cycle < len(r.frac)
}

// RepeatStart returns the index of the first repeating fractional digit.
// If there is no cycle, ok is false.
func (r Result) RepeatStart() (index int, ok bool) {
	if !r.IsRepeating() {
		return 0, false
	}
	return r.cycle, true
}

// IsTruncated returns true if the fractional expansion neither terminated
// nor repeated within the precision limit and was cut.
func (r Result) IsTruncated() bool {
	return r.cutoff
}

// IsInt returns true if there are no fractional digits.
func (r Result) IsInt() bool {
	return r.frac == ""
}

// String method implements the [fmt.Stringer] interface and returns
// the number in the following format:
//
//	["-"] digit+ ["." digit+ | "." digit* "(" digit+ ")"]
//
// where digit is one of 0-9, A-Z.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Result) String() string {
	var sb strings.Builder
	sb.Grow(len(r.whole) + len(r.frac) + 4)
	if r.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(r.Int())
	if r.frac != "" {
		sb.WriteByte('.')
		sb.WriteString(r.Frac())
	}
	return sb.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description    |
//	| ------ | ------- | -------------- |
//	| %s, %v | 0.1(6)  | Number         |
//	| %q     | "0.1(6)"| Quoted number  |
//
// The '-' format flag and width are supported by all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Result) Format(state fmt.State, verb rune) {
	s := r.String()
	switch verb {
	case 'q', 'Q':
		s = `"` + s + `"`
	case 's', 'S', 'v', 'V':
		// as is
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(radix.Result=%s)", verb, s)
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	//nolint:errcheck
	state.Write([]byte(s))
}

// Truncate returns the string representation of r shortened to at most
// width characters: longer strings keep their first width-3 characters
// followed by "...".
// Truncation is for display only.
func (r Result) Truncate(width int) string {
	s := r.String()
	if width < 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
