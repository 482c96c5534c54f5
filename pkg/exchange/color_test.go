package exchange

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"full hex", "#ff8800", "#FF8800", true},
		{"already canonical", "#00FF00", "#00FF00", true},
		{"shorthand expanded", "#f80", "#FF8800", true},
		{"surrounding space", "  #abcdef ", "#ABCDEF", true},
		{"aci red", "1", "#FF0000", true},
		{"aci white", "7", "#FFFFFF", true},
		{"aci byblock", "0", "", false},
		{"aci bylayer", "256", "", false},
		{"aci out of head", "42", "", false},
		{"bad hex digit", "#ff88gg", "", false},
		{"wrong length", "#ff880", "", false},
		{"empty", "", "", false},
		{"word", "red", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeColor(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
