package layout

import "testing"

func TestAlignmentOffset(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		min, max  float64
		extent    float64
		want      float64
	}{
		{name: "leading", alignment: Leading, min: 10, max: 110, extent: 30, want: 10},
		{name: "trailing", alignment: Trailing, min: 0, max: 100, extent: 30, want: 70},
		{name: "center", alignment: Center, min: 0, max: 100, extent: 30, want: 35},
		{name: "center with origin", alignment: Center, min: 20, max: 60, extent: 10, want: 35},
		{name: "oversized trailing", alignment: Trailing, min: 0, max: 10, extent: 30, want: -20},
		{name: "unknown falls back to leading", alignment: Alignment(42), min: 5, max: 100, extent: 30, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.alignment.Offset(tt.min, tt.max, tt.extent); got != tt.want {
				t.Errorf("Offset(%v, %v, %v) = %v, want %v", tt.min, tt.max, tt.extent, got, tt.want)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in     string
		want   Alignment
		wantOK bool
	}{
		{"", Leading, false},
		{"leading", Leading, true},
		{"Top", Leading, true},
		{"center", Center, true},
		{" middle ", Center, true},
		{"trailing", Trailing, true},
		{"bottom", Trailing, true},
		{"END", Trailing, true},
		{"firstTextBaseline", Leading, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAlignment(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAlignment(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAlignmentString(t *testing.T) {
	if got := Trailing.String(); got != "trailing" {
		t.Errorf("Trailing.String() = %q, want %q", got, "trailing")
	}
	if got := Alignment(9).String(); got != "Alignment(9)" {
		t.Errorf("Alignment(9).String() = %q, want %q", got, "Alignment(9)")
	}
}
