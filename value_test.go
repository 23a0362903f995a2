package kinex

import "testing"

type label string

func (l label) String() string { return string(l) }

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 10.5, 10.5},
		{"int", 3, 3},
		{"uint8", uint8(200), 200},
		{"float32", float32(0.25), 0.25},
		{"px", "120px", 120},
		{"bare numeral", "80", 80},
		{"negative em", "-12.5em", -12.5},
		{"leading dot", ".5", 0.5},
		{"plus sign", "+4%", 4},
		{"leading space", "  7px", 7},
		{"exponent", "1e3px", 1000},
		{"em is not an exponent", "2em", 2},
		{"no numeral", "auto", 0},
		{"empty", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"stringer", label("42deg"), 42},
		{"bytes", []byte("9px"), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseValue(tt.in); got != tt.want {
				t.Errorf("ParseValue(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnitOf(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{10, ""},
		{0.5, ""},
		{"120px", "px"},
		{"80", ""},
		{"-12.5em", "em"},
		{"2em", "em"},
		{"50%", "%"},
		{"1e3px", "px"},
		{"auto", "auto"},
		{label("90deg"), "deg"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := UnitOf(tt.in); got != tt.want {
			t.Errorf("UnitOf(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		m    float64
		unit string
		want any
	}{
		{5, "", 5.0},
		{0.5, "", 0.5},
		{60, "px", "60px"},
		{12.25, "em", "12.25em"},
		{-3, "px", "-3px"},
		{1e21, "px", "1000000000000000000000px"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.m, tt.unit); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %#v, want %#v", tt.m, tt.unit, got, tt.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	for _, in := range []string{"120px", "-4.5em", "0.25", "33%"} {
		got := FormatValue(ParseValue(in), UnitOf(in))
		if in == "0.25" {
			if got != 0.25 {
				t.Errorf("round trip of %q = %#v", in, got)
			}
			continue
		}
		if got != in {
			t.Errorf("round trip of %q = %#v", in, got)
		}
	}
}
