package extract

import (
	"testing"
)

func TestBalancedSpan(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		open    int
		wantEnd int
		wantOK  bool
	}{
		{name: "flat pair", s: "{}", open: 0, wantEnd: 1, wantOK: true},
		{name: "nested pair", s: "{a{b}c}", open: 0, wantEnd: 6, wantOK: true},
		{name: "inner pair", s: "{a{b}c}", open: 2, wantEnd: 4, wantOK: true},
		{name: "deeply nested", s: "{{{}}}", open: 0, wantEnd: 5, wantOK: true},
		{name: "trailing text ignored", s: "{x} tail {y}", open: 0, wantEnd: 2, wantOK: true},
		{name: "unbalanced", s: "{{}", open: 0, wantOK: false},
		{name: "never closed", s: "{abc", open: 0, wantOK: false},
		{name: "not an open brace", s: "a{b}", open: 0, wantOK: false},
		{name: "open out of range", s: "{}", open: 2, wantOK: false},
		{name: "negative open", s: "{}", open: -1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := BalancedSpan(tt.s, tt.open)
			if ok != tt.wantOK {
				t.Fatalf("BalancedSpan(%q, %d) ok = %v, want %v", tt.s, tt.open, ok, tt.wantOK)
			}
			if ok && end != tt.wantEnd {
				t.Errorf("BalancedSpan(%q, %d) end = %d, want %d", tt.s, tt.open, end, tt.wantEnd)
			}
		})
	}
}
