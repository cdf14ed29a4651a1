package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the maximum visual width (in monospace columns) of the
// provided string, ignoring ANSI styling. East Asian wide and fullwidth runes
// occupy two columns.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Center pads s on both sides to width columns. When the padding is odd the
// extra space goes to the right.
func Center(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}

// StripANSI removes SGR escape sequences.
func StripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func lineWidth(s string) int {
	n := 0
	for _, r := range StripANSI(s) {
		switch {
		case r == '\r':
		case unicode.Is(unicode.Mn, r):
		default:
			n += runeWidth(r)
		}
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
