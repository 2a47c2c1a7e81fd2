package radix

import (
	"fmt"
	"strings"
	"testing"
)

func TestResult_String(t *testing.T) {
	tests := []struct {
		r                       Result
		want, wantInt, wantFrac string
		wantPrefix, wantCycle   string
		wantRep, wantIsInt      bool
	}{
		{Result{}, "0", "0", "", "", "", false, true},
		{Result{base: 10, whole: "3", cycle: -1}, "3", "3", "", "", "", false, true},
		{Result{base: 10, whole: "0", frac: "16", cycle: 1}, "0.1(6)", "0", "1(6)", "1", "6", true, false},
		{Result{base: 10, neg: true, whole: "0", frac: "16", cycle: 1}, "-0.1(6)", "0", "1(6)", "1", "6", true, false},
		{Result{base: 10, whole: "0", frac: "3", cycle: 0}, "0.(3)", "0", "(3)", "", "3", true, false},
		{Result{base: 16, whole: "FF", frac: "8", cycle: -1}, "FF.8", "FF", "8", "8", "", false, false},
		{Result{base: 10, whole: "3", frac: "142", cycle: -1, cutoff: true}, "3.142", "3", "142", "142", "", false, false},
	}
	for _, tt := range tests {
		r := tt.r
		if got := r.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", r, got, tt.want)
		}
		if got := r.Int(); got != tt.wantInt {
			t.Errorf("%+v.Int() = %q, want %q", r, got, tt.wantInt)
		}
		if got := r.Frac(); got != tt.wantFrac {
			t.Errorf("%+v.Frac() = %q, want %q", r, got, tt.wantFrac)
		}
		if got := r.Prefix(); got != tt.wantPrefix {
			t.Errorf("%+v.Prefix() = %q, want %q", r, got, tt.wantPrefix)
		}
		if got := r.Cycle(); got != tt.wantCycle {
			t.Errorf("%+v.Cycle() = %q, want %q", r, got, tt.wantCycle)
		}
		if got := r.IsRepeating(); got != tt.wantRep {
			t.Errorf("%+v.IsRepeating() = %v, want %v", r, got, tt.wantRep)
		}
		if got := r.IsInt(); got != tt.wantIsInt {
			t.Errorf("%+v.IsInt() = %v, want %v", r, got, tt.wantIsInt)
		}
	}
}

func TestResult_Format(t *testing.T) {
	r := Result{base: 10, neg: true, whole: "0", frac: "16", cycle: 1}
	tests := []struct {
		format, want string
	}{
		{"%s", "-0.1(6)"},
		{"%v", "-0.1(6)"},
		{"%q", `"-0.1(6)"`},
		{"%10s", "   -0.1(6)"},
		{"%-10s|", "-0.1(6)   |"},
		{"%12q", `   "-0.1(6)"`},
		{"%3v", "-0.1(6)"},
		{"%d", "%!d(radix.Result=-0.1(6))"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, r); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, r, got, tt.want)
		}
	}
}

func TestResult_Truncate(t *testing.T) {
	long := Result{base: 2, whole: "1" + strings.Repeat("0", 60), cycle: -1}
	tests := []struct {
		r     Result
		width int
		want  string
	}{
		{Result{whole: "12345"}, 5, "12345"},
		{Result{whole: "123456"}, 5, "12..."},
		{Result{whole: "123456"}, 2, "123456"},
		{long, DisplayWidth, "1" + strings.Repeat("0", 46) + "..."},
		{long, 61, long.String()},
	}
	for _, tt := range tests {
		got := tt.r.Truncate(tt.width)
		if got != tt.want {
			t.Errorf("%v.Truncate(%v) = %q, want %q", tt.r, tt.width, got, tt.want)
		}
		if tt.width >= 3 && len(got) > tt.width {
			t.Errorf("%v.Truncate(%v) has %v characters", tt.r, tt.width, len(got))
		}
	}
}
