package tokenlist

import (
	"slices"

	"github.com/iw2rmb/syllable/word"
)

// ASCII stops end a phrase only between two phonetic tokens, so that
// "e.g." inside Latin text does not split a phrase.
var (
	asciiPhraseStops     = []string{",", ".", ";", ":", "?", "!"}
	fullWidthPhraseStops = []string{"，", "。", "；", "：", "？", "！", "∶", "…"}
)

// Completion is a phrase continuation offered for the phonetic run at the
// cursor.
type Completion struct {
	Words []*word.Word
}

// SetPhraseCompletions caches completions until the next reset.
func (l *List) SetPhraseCompletions(c []Completion) {
	if len(c) == 0 {
		l.completions = nil
		return
	}
	l.completions = slices.Clone(c)
}

func (l *List) PhraseCompletions() []Completion { return slices.Clone(l.completions) }

func (l *List) ClearPhraseCompletions() { l.completions = nil }

// view returns the token at i, with the pending buffer standing in for the
// selected slot.
func (l *List) view(i int) *Token {
	t := l.At(i)
	if t != nil && t == l.cur.selected {
		return l.cur.pending
	}
	return t
}

// viewIndex resolves id to a position, mapping the pending buffer to the
// selected slot.
func (l *List) viewIndex(id ID) int {
	if id != 0 && id == l.cur.pending.id {
		return l.SelectedIndex()
	}
	return l.IndexOf(id)
}

// neighbour returns the nearest content next to position i in direction
// dir (-1 or 1), looking through one gap.
func (l *List) neighbour(i, dir int) *Token {
	j := i + dir
	t := l.At(j)
	if t == nil {
		return nil
	}
	if t.kind == KindGap {
		if p := l.nonEmptyPendingOn(t); p != nil {
			return p
		}
		j += dir
	}
	return l.view(j)
}

func (l *List) isPhraseEndAt(i int) bool {
	t := l.view(i)
	if t == nil || t.kind == KindSpace {
		return true
	}
	if !t.IsSymbol() {
		return false
	}

	chars := t.Chars()
	if slices.Contains(asciiPhraseStops, chars) {
		left, right := l.neighbour(i, -1), l.neighbour(i, 1)
		return (left == nil || left.IsPhonetic()) && (right == nil || right.IsPhonetic())
	}
	return slices.Contains(fullWidthPhraseStops, chars)
}

// PhraseWordsFrom returns the contiguous phonetic words ending at the token
// with id (the pending buffer's ID is accepted too). The result is empty
// when that token is not phonetic.
func (l *List) PhraseWordsFrom(id ID) []*word.Word {
	from := l.viewIndex(id)
	if from < 0 {
		return nil
	}

	var words []*word.Word
	for i := from; i >= 0; i-- {
		t := l.view(i)
		if t.kind == KindGap || (l.tokens[i].kind == KindGap && t.IsEmpty()) {
			continue
		}
		if !t.IsPhonetic() {
			break
		}
		words = append(words, t.word)
	}
	slices.Reverse(words)
	return words
}

// PhraseContaining returns the non-empty tokens of the segment around the
// token with id. Segments end at the list ends, at spaces and at sentence
// punctuation.
func (l *List) PhraseContaining(id ID) []*Token {
	from := l.viewIndex(id)
	if from < 0 {
		return nil
	}

	var before []*Token
	for i := from - 1; i >= 0 && !l.isPhraseEndAt(i); i-- {
		if t := l.view(i); t.kind != KindGap && !t.IsEmpty() {
			before = append(before, t)
		}
	}
	slices.Reverse(before)

	phrase := before
	for i := from; i < len(l.tokens) && !l.isPhraseEndAt(i); i++ {
		if t := l.view(i); t.kind != KindGap && !t.IsEmpty() {
			phrase = append(phrase, t)
		}
	}
	return phrase
}

// PhraseWords splits the whole list into runs of phonetic words.
func (l *List) PhraseWords() [][]*word.Word {
	var phrases [][]*word.Word
	var cur []*word.Word
	for i := range l.tokens {
		t := l.view(i)
		switch {
		case l.isPhraseEndAt(i):
			if len(cur) > 0 {
				phrases = append(phrases, cur)
				cur = nil
			}
		case t.IsPhonetic():
			cur = append(cur, t.word)
		}
	}
	if len(cur) > 0 {
		phrases = append(phrases, cur)
	}
	return phrases
}
