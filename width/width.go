// ABOUTME: Visible-width measurement for styled terminal text
// ABOUTME: Grapheme-cluster iteration via uniseg; go-runewidth for cell widths

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grapheme returns the display width in terminal cells of a single grapheme
// cluster. The width of a cluster is the width of its first rune; combining
// marks and variation selectors contribute nothing.
func Grapheme(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// String returns the display width of s. ANSI escape sequences contribute
// zero width; everything else is measured grapheme cluster by grapheme
// cluster.
func String(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	rest := StripANSI(s)
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w += Grapheme(cluster)
	}
	return w
}

// isPlainASCII reports whether s contains only printable ASCII, which lets
// String skip grapheme segmentation entirely.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
