package idea

import "testing"

func TestComplexityFromString(t *testing.T) {
	tests := []struct {
		in     string
		want   Complexity
		wantOK bool
	}{
		{in: "Simple", want: ComplexitySimple, wantOK: true},
		{in: "simple", want: ComplexitySimple, wantOK: true},
		{in: "MEDIUM", want: ComplexityMedium, wantOK: true},
		{in: " hard ", want: ComplexityHard, wantOK: true},
		{in: "간단", wantOK: false},
		{in: "banana", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ComplexityFromString(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ComplexityFromString(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
