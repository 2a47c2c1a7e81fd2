package radix

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewBase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for b := -36; b <= 36; b++ {
			if b >= -1 && b <= 1 {
				continue
			}
			got, err := NewBase(b)
			if err != nil {
				t.Errorf("NewBase(%v) failed: %v", b, err)
				continue
			}
			if int(got) != b {
				t.Errorf("NewBase(%v) = %v", b, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{-1000, -128, -37, -1, 0, 1, 37, 127, 256}
		for _, tt := range tests {
			_, err := NewBase(tt)
			if !errors.Is(err, ErrUnsupportedBase) {
				t.Errorf("NewBase(%v) = %v, want %v", tt, err, ErrUnsupportedBase)
			}
		}
	})
}

func TestMustNewBase(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewBase(1) did not panic")
			}
		}()
		MustNewBase(1)
	})
}

func TestParseBase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Base
		}{
			{"2", 2},
			{"+16", 16},
			{"-2", -2},
			{"36", 36},
			{"-36", -36},
		}
		for _, tt := range tests {
			got, err := ParseBase(tt.s)
			if err != nil {
				t.Errorf("ParseBase(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseBase(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "0", "1", "-1", "37", "hex", "2.0", " 2"}
		for _, tt := range tests {
			_, err := ParseBase(tt)
			if !errors.Is(err, ErrUnsupportedBase) {
				t.Errorf("ParseBase(%q) = %v, want %v", tt, err, ErrUnsupportedBase)
			}
		}
	})
}

func TestMustParseBase(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseBase(\"0\") did not panic")
			}
		}()
		MustParseBase("0")
	})
}

func TestBase_Radix(t *testing.T) {
	tests := []struct {
		b       Base
		wantRad int
		wantNeg bool
	}{
		{2, 2, false},
		{-2, 2, true},
		{36, 36, false},
		{-36, 36, true},
	}
	for _, tt := range tests {
		if got := tt.b.Radix(); got != tt.wantRad {
			t.Errorf("%v.Radix() = %v, want %v", tt.b, got, tt.wantRad)
		}
		if got := tt.b.IsNeg(); got != tt.wantNeg {
			t.Errorf("%v.IsNeg() = %v, want %v", tt.b, got, tt.wantNeg)
		}
	}
}

func TestBase_Valid(t *testing.T) {
	tests := []struct {
		b    Base
		want bool
	}{
		{0, false},
		{1, false},
		{-1, false},
		{37, false},
		{-37, false},
		{2, true},
		{-2, true},
	}
	for _, tt := range tests {
		if got := tt.b.Valid(); got != tt.want {
			t.Errorf("Base(%d).Valid() = %v, want %v", int8(tt.b), got, tt.want)
		}
	}
}

func TestBase_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(struct{ B Base }{-16})
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		want := `{"B":-16}`
		if string(got) != want {
			t.Errorf("json.Marshal = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			text string
			want Base
		}{
			{`{"B":-16}`, -16},
			{`{"B":"36"}`, 36},
			{`{"B":null}`, 0},
		}
		for _, tt := range tests {
			var got struct{ B Base }
			if err := json.Unmarshal([]byte(tt.text), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.text, err)
				continue
			}
			if got.B != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.text, got.B, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{`{"B":1}`, `{"B":"x"}`, `{"B":40}`}
		for _, tt := range tests {
			var got struct{ B Base }
			if err := json.Unmarshal([]byte(tt), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestBase_Text(t *testing.T) {
	b := Base(-7)
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", b, err)
	}
	if string(text) != "-7" {
		t.Errorf("%v.MarshalText() = %q, want %q", b, text, "-7")
	}
	var got Base
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if got != b {
		t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, b)
	}
	if err := got.UnmarshalText([]byte("0")); err == nil {
		t.Errorf("UnmarshalText(\"0\") did not fail")
	}
}

func TestBase_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Base
		}{
			{int64(2), 2},
			{"-36", -36},
			{[]byte("10"), 10},
		}
		for _, tt := range tests {
			var got Base
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, int64(0), "1", 1.5, int64(1000)}
		for _, tt := range tests {
			var got Base
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestBase_Value(t *testing.T) {
	got, err := Base(-2).Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got != int64(-2) {
		t.Errorf("Value() = %v, want %v", got, int64(-2))
	}
}

func TestNullBase(t *testing.T) {
	var n NullBase
	if err := n.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if n.Valid {
		t.Errorf("Scan(nil) is valid")
	}
	v, err := n.Value()
	if err != nil || v != nil {
		t.Errorf("Value() = (%v, %v), want (nil, nil)", v, err)
	}
	if err := n.Scan("16"); err != nil {
		t.Fatalf("Scan(\"16\") failed: %v", err)
	}
	if !n.Valid || n.Base != 16 {
		t.Errorf("Scan(\"16\") = %+v, want {Base:16 Valid:true}", n)
	}
	v, err = n.Value()
	if err != nil || v != int64(16) {
		t.Errorf("Value() = (%v, %v), want (16, nil)", v, err)
	}
}

func TestBases(t *testing.T) {
	tests := []struct {
		positiveOnly bool
		wantLen      int
		wantFirst    Base
	}{
		{false, 70, -36},
		{true, 35, 2},
	}
	for _, tt := range tests {
		got := Bases(tt.positiveOnly)
		if len(got) != tt.wantLen {
			t.Errorf("Bases(%v) has %v bases, want %v", tt.positiveOnly, len(got), tt.wantLen)
			continue
		}
		if got[0] != tt.wantFirst || got[len(got)-1] != 36 {
			t.Errorf("Bases(%v) = [%v ... %v], want [%v ... 36]", tt.positiveOnly, got[0], got[len(got)-1], tt.wantFirst)
		}
		for i, b := range got {
			if !b.Valid() {
				t.Errorf("Bases(%v) contains %v", tt.positiveOnly, b)
			}
			if i > 0 && got[i-1] >= b {
				t.Errorf("Bases(%v) is not ascending at %v", tt.positiveOnly, b)
			}
		}
	}
}
