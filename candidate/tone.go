package candidate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/iw2rmb/syllable/word"
)

// toneMarks groups toned vowels by base vowel, each in ascending tone order.
var toneMarks = [][]string{
	{"ā", "á", "ǎ", "à"},
	{"ō", "ó", "ǒ", "ò"},
	{"ē", "é", "ě", "è"},
	{"ê̄", "ế", "ê̌", "ề", "ê"},
	{"ī", "í", "ǐ", "ì"},
	{"ū", "ú", "ǔ", "ù"},
	{"ǖ", "ǘ", "ǚ", "ǜ"},
	{"ń", "ň", "ǹ"},
	{"m̄", "ḿ", "m̀"},
}

const neutralToneOrder = 1000

// ToneOrder ranks a reading by its toned vowel. A reading carries at most
// one toned vowel; neutral-tone readings rank last.
func ToneOrder(spell string) int {
	for i, tones := range toneMarks {
		for j, tone := range tones {
			if strings.Contains(spell, tone) {
				return i*10 + j
			}
		}
	}
	return neutralToneOrder
}

// SortSpells orders readings by tone, then by dictionary ID.
func SortSpells(spells []word.Spell) {
	slices.SortStableFunc(spells, func(a, b word.Spell) int {
		return cmp.Or(
			cmp.Compare(ToneOrder(a.Value), ToneOrder(b.Value)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

// DistinctSpells returns the readings of the phonetic words in words,
// each once, ordered by SortSpells.
func DistinctSpells(words []*word.Word) []word.Spell {
	var spells []word.Spell
	for _, w := range words {
		if w.IsPhonetic() && !slices.Contains(spells, w.Spell) {
			spells = append(spells, w.Spell)
		}
	}
	SortSpells(spells)
	return spells
}
