package format

import "testing"

func TestGroupDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		sep   string
		size  int
		want  string
	}{
		{"1234567", ",", 3, "1,234,567"},
		{"-1234", ",", 3, "-1,234"},
		{"123", ",", 3, "123"},
		{"0xDEADBEEF", "_", 4, "0xDEAD_BEEF"},
		{"-0b101101", "_", 4, "-0b10_1101"},
		{"FFFF", " ", 4, "FFFF"},
		{"12345", ",", 0, "12345"},
		{"00", "_", 1, "0_0"},
	}
	for _, tt := range tests {
		if got := GroupDigits(tt.input, tt.sep, tt.size); got != tt.want {
			t.Errorf("GroupDigits(%q, %q, %d) = %q; want %q", tt.input, tt.sep, tt.size, got, tt.want)
		}
	}
}

func TestNumberPad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         Number
		width     int
		precision int
		left      bool
		zero      bool
		want      string
	}{
		{"no padding", Number{Sign: "-", Digits: "42"}, 0, -1, false, false, "-42"},
		{"right aligned", Number{Sign: "-", Digits: "42"}, 6, -1, false, false, "   -42"},
		{"left aligned", Number{Digits: "42"}, 5, -1, true, false, "42   "},
		{"zero fill after prefix", Number{Sign: "-", Prefix: "0x", Digits: "FF"}, 8, -1, false, true, "-0x000FF"},
		{"left wins over zero", Number{Digits: "7"}, 3, -1, true, true, "7  "},
		{"precision", Number{Sign: "+", Digits: "7"}, 0, 3, false, false, "+007"},
		{"precision disables zero", Number{Digits: "7"}, 5, 2, false, true, "   07"},
		{"zero precision of zero", Number{Digits: "0"}, 2, 0, false, false, "  "},
		{"width smaller than body", Number{Digits: "123456"}, 3, -1, false, true, "123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.n.Pad(tt.width, tt.precision, tt.left, tt.zero); got != tt.want {
				t.Errorf("Pad() = %q; want %q", got, tt.want)
			}
		})
	}
}
