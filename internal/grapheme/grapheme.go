// Package grapheme holds the character-level helpers shared by the token
// list and the terminal demo. A "character" is a user-perceived grapheme
// cluster, never a byte or a rune.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Split returns the grapheme clusters of text.
func Split(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// DropLast removes the final grapheme cluster of text.
func DropLast(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	end := 0
	for g.Next() {
		start, _ := g.Positions()
		end = start
	}
	return text[:end]
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	return w
}

// PadRight pads text with spaces up to width cells.
func PadRight(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// IsLatin reports whether every rune of s is an ASCII letter or digit.
func IsLatin(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// IsPunct reports whether every rune of s is punctuation or a symbol.
func IsPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
