package dict

import (
	"slices"

	"github.com/iw2rmb/syllable/word"
)

// sameWord matches words by written form and reading. Phrases are stored
// apart from words, so dictionary IDs may differ.
func sameWord(a, b *word.Word) bool {
	return a != nil && b != nil && a.Value == b.Value && a.Spell.Value == b.Spell.Value
}

// continuation returns the words of phrase that follow the longest tail of
// context that phrase starts with.
func continuation(phrase, context []*word.Word) []*word.Word {
	for k := min(len(context), len(phrase)-1); k > 0; k-- {
		tail := context[len(context)-k:]
		if slices.EqualFunc(tail, phrase[:k], sameWord) {
			return phrase[k:]
		}
	}
	return nil
}

// Continuations collects the continuations of context from phrases, in
// phrase order, without duplicates.
func Continuations(phrases [][]*word.Word, context []*word.Word, limit int) [][]*word.Word {
	var out [][]*word.Word
	for _, p := range phrases {
		if limit > 0 && len(out) >= limit {
			break
		}
		next := continuation(p, context)
		if len(next) == 0 {
			continue
		}
		dup := slices.ContainsFunc(out, func(o []*word.Word) bool {
			return slices.EqualFunc(o, next, sameWord)
		})
		if !dup {
			out = append(out, next)
		}
	}
	return out
}

// PromoteContinuations moves candidates that continue a known phrase of
// context to the front, keeping the relative order of everything else.
func PromoteContinuations(candidates, context []*word.Word, phrases [][]*word.Word) []*word.Word {
	if len(context) == 0 || len(candidates) == 0 {
		return candidates
	}

	var firsts []*word.Word
	for _, next := range Continuations(phrases, context, 0) {
		firsts = append(firsts, next[0])
	}
	if len(firsts) == 0 {
		return candidates
	}

	promoted := make([]*word.Word, 0, len(candidates))
	rest := make([]*word.Word, 0, len(candidates))
	for _, c := range candidates {
		if slices.ContainsFunc(firsts, func(f *word.Word) bool { return sameWord(f, c) }) {
			promoted = append(promoted, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(promoted, rest...)
}
