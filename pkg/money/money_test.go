package money

import "testing"

func TestParseCents(t *testing.T) {
	tests := []struct {
		in    string
		want  int64
		valid bool
	}{
		{"0", 0, true},
		{"1", 100, true},
		{"175.75", 17575, true},
		{"0.01", 1, true},
		{"1200.50", 120050, true},
		{"-40.25", -4025, true},
		{"1.005", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCents(tt.in)
		if ok != tt.valid {
			t.Errorf("ParseCents(%q) valid = %v, want %v", tt.in, ok, tt.valid)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseCents(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{17575, "175.75"},
		{120050, "1200.50"},
		{-4025, "-40.25"},
	}

	for _, tt := range tests {
		if got := Format(tt.cents); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "0.01", "175.75", "99999.99"} {
		cents, ok := ParseCents(s)
		if !ok {
			t.Fatalf("ParseCents(%q) failed", s)
		}
		if got := Format(cents); got != s {
			t.Errorf("Format(ParseCents(%q)) = %q", s, got)
		}
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{175.75, 17575},
		// Classic float artifact: 0.1 + 0.2
		{0.30000000000000004, 30},
		{10.005, 1001},
	}

	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToFloat(t *testing.T) {
	if got := ToFloat(17575); got != 175.75 {
		t.Errorf("ToFloat(17575) = %v, want 175.75", got)
	}
}
