package candidate

import (
	"maps"
	"slices"

	"github.com/iw2rmb/syllable/word"
)

// Stroke is one of the basic brush strokes a stroke filter counts.
type Stroke struct {
	Name string
	Code string
}

// Strokes lists the filterable strokes in keyboard order. Word.Strokes is
// keyed by Code.
var Strokes = []Stroke{
	{Name: "一", Code: "1"},
	{Name: "丨", Code: "2"},
	{Name: "丿", Code: "3"},
	{Name: "㇏", Code: "4"},
	{Name: "𠃋", Code: "5"},
}

// Filter narrows candidates. Every non-empty dimension must match; an
// empty dimension accepts everything.
type Filter struct {
	Spells   []word.Spell
	Radicals []word.Radical
	// Strokes maps a stroke code to the minimum count a word must have.
	Strokes map[string]int
}

// IsEmpty reports whether f accepts every candidate.
func (f Filter) IsEmpty() bool {
	if len(f.Spells) > 0 || len(f.Radicals) > 0 {
		return false
	}
	for _, n := range f.Strokes {
		if n > 0 {
			return false
		}
	}
	return true
}

// Matches reports whether w passes f. A nil w is a page placeholder and
// always passes. Words without a reading never pass an active filter.
func (f Filter) Matches(w *word.Word) bool {
	if w == nil {
		return true
	}
	if f.IsEmpty() {
		return true
	}
	if !w.IsPhonetic() {
		return false
	}

	if len(f.Spells) > 0 && !slices.Contains(f.Spells, w.Spell) {
		return false
	}
	if len(f.Radicals) > 0 && !slices.Contains(f.Radicals, w.Radical) {
		return false
	}
	// Words without stroke data cannot be judged by strokes.
	if len(w.Strokes) == 0 {
		return true
	}
	for code, n := range f.Strokes {
		if n > 0 && w.Strokes[code] < n {
			return false
		}
	}
	return true
}

func (f Filter) Equal(o Filter) bool {
	return slices.Equal(f.Spells, o.Spells) &&
		slices.Equal(f.Radicals, o.Radicals) &&
		maps.Equal(f.activeStrokes(), o.activeStrokes())
}

func (f Filter) Clone() Filter {
	return Filter{
		Spells:   slices.Clone(f.Spells),
		Radicals: slices.Clone(f.Radicals),
		Strokes:  maps.Clone(f.Strokes),
	}
}

// WithSpell selects a single reading and drops any radical selection,
// since radicals are offered per reading. Selecting the active reading
// again clears it.
func (f Filter) WithSpell(s word.Spell) Filter {
	out := f.Clone()
	out.Radicals = nil
	if len(f.Spells) == 1 && f.Spells[0] == s {
		out.Spells = nil
	} else {
		out.Spells = []word.Spell{s}
	}
	return out
}

// ToggleRadical adds r to the radical selection, or removes it when it is
// already selected.
func (f Filter) ToggleRadical(r word.Radical) Filter {
	out := f.Clone()
	if i := slices.Index(out.Radicals, r); i >= 0 {
		out.Radicals = slices.Delete(out.Radicals, i, i+1)
	} else {
		out.Radicals = append(out.Radicals, r)
	}
	return out
}

// AddStroke changes the minimum count of a stroke by delta, never going
// below zero.
func (f Filter) AddStroke(code string, delta int) Filter {
	out := f.Clone()
	if out.Strokes == nil {
		out.Strokes = make(map[string]int)
	}
	n := max(0, out.Strokes[code]+delta)
	if n == 0 {
		delete(out.Strokes, code)
	} else {
		out.Strokes[code] = n
	}
	return out
}

func (f Filter) activeStrokes() map[string]int {
	out := make(map[string]int, len(f.Strokes))
	for code, n := range f.Strokes {
		if n > 0 {
			out[code] = n
		}
	}
	return out
}

// BestMatchFirst applies f to ranked words, keeping the matches among the
// first pageSize words on page one.
//
// When both the head and the rest have matches and they do not fit on one
// page, the head matches are padded with nil placeholders up to pageSize
// and the rest matches follow on later pages.
func BestMatchFirst(words []*word.Word, f Filter, pageSize int) []*word.Word {
	if f.IsEmpty() {
		return words
	}
	if pageSize < 1 {
		pageSize = 1
	}

	split := min(pageSize, len(words))
	var head []*word.Word
	for _, w := range words[:split] {
		if w != nil && f.Matches(w) {
			head = append(head, w)
		}
	}
	var rest []*word.Word
	for _, w := range words[split:] {
		if !f.Matches(w) {
			continue
		}
		if w != nil && slices.ContainsFunc(head, w.Equal) {
			continue
		}
		rest = append(rest, w)
	}

	switch total := len(head) + len(rest); {
	case total == 0:
		return nil
	case len(head) == 0:
		return rest
	case total <= pageSize:
		return append(head, rest...)
	}

	out := make([]*word.Word, pageSize, pageSize+len(rest))
	copy(out, head)
	return append(out, rest...)
}
