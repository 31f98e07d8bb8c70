// Package word defines the dictionary words that candidates and resolved
// tokens carry.
package word

import "maps"

// Kind classifies a word.
type Kind uint8

const (
	// KindPhonetic is a word reached through a reading (spell).
	KindPhonetic Kind = iota
	// KindEmoji is a pictograph offered alongside phonetic candidates.
	KindEmoji
	// KindSymbol is a non-phonetic symbol word.
	KindSymbol
)

// Spell is the reading of a phonetic word, e.g. "kuài".
// Chars is the toneless key sequence used for lookup, e.g. "kuai".
type Spell struct {
	Value string
	Chars string
	ID    int
}

// Radical is the grouping key used by the advance filter.
type Radical struct {
	Value       string
	StrokeCount int
}

// Word is one dictionary entry.
type Word struct {
	Kind    Kind
	Value   string
	Spell   Spell
	Radical Radical
	Variant string
	// Strokes maps a stroke name to its count in the glyph.
	Strokes map[string]int
	// Weight is the dictionary rank weight; higher ranks first.
	Weight int
}

// IsPhonetic reports whether w is a phonetic word with a reading.
func (w *Word) IsPhonetic() bool {
	return w != nil && w.Kind == KindPhonetic && w.Spell.Value != ""
}

// Equal reports content equality: same kind, value and reading.
func (w *Word) Equal(o *Word) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.Kind == o.Kind && w.Value == o.Value && w.Spell == o.Spell
}

// Clone returns a deep copy of w.
func (w *Word) Clone() *Word {
	if w == nil {
		return nil
	}
	out := *w
	out.Strokes = maps.Clone(w.Strokes)
	return &out
}

func (w *Word) String() string {
	if w == nil {
		return ""
	}
	if w.Spell.Value == "" {
		return w.Value
	}
	return w.Value + "(" + w.Spell.Value + ")"
}

// StrokeCounts counts each stroke code in a stroke order such as "25121".
func StrokeCounts(order string) map[string]int {
	if order == "" {
		return nil
	}
	counts := make(map[string]int)
	for _, r := range order {
		counts[string(r)]++
	}
	return counts
}
