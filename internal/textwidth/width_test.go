package textwidth_test

import (
	"testing"

	"github.com/lululau/isocal/internal/textwidth"
)

func TestStringWidthMixedScripts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "hello", 5},
		{"chinese", "中文", 4},
		{"mixed", "A中", 3},
		{"multiline", "ab\n中文", 4},
		{"ansi", "\x1b[1;31m 18\x1b[0m", 3},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.StringWidth(tt.in); got != tt.want {
				t.Fatalf("StringWidth(%q)=%d want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"January", 21, "       January       "},
		{"February", 21, "      February       "},
		{"May", 7, "  May  "},
		{"toolong", 3, "toolong"},
	}
	for _, tt := range tests {
		if got := textwidth.Center(tt.in, tt.width); got != tt.want {
			t.Fatalf("Center(%q, %d)=%q want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
