package candidate

import (
	"cmp"
	"slices"

	"github.com/iw2rmb/syllable/word"
)

// WeightedRadical is a radical with its occurrence count over the readings
// that contributed to it.
type WeightedRadical struct {
	word.Radical
	Weight int
}

// AggregateRadicals scores each radical by how many phonetic words carry
// it, counting only words whose reading is in spells (all readings when
// spells is empty). The result is ordered by weight, heaviest first, then
// by stroke count.
func AggregateRadicals(words []*word.Word, spells []word.Spell) []WeightedRadical {
	weights := make(map[word.Radical]int)
	for _, w := range words {
		if !w.IsPhonetic() || w.Radical.Value == "" {
			continue
		}
		if len(spells) > 0 && !slices.Contains(spells, w.Spell) {
			continue
		}
		weights[w.Radical]++
	}

	out := make([]WeightedRadical, 0, len(weights))
	for r, n := range weights {
		out = append(out, WeightedRadical{Radical: r, Weight: n})
	}
	slices.SortFunc(out, func(a, b WeightedRadical) int {
		return cmp.Or(
			cmp.Compare(b.Weight, a.Weight),
			cmp.Compare(a.StrokeCount, b.StrokeCount),
			cmp.Compare(a.Value, b.Value),
		)
	})
	return out
}

// Radicals strips the weights from rs.
func Radicals(rs []WeightedRadical) []word.Radical {
	out := make([]word.Radical, len(rs))
	for i, r := range rs {
		out[i] = r.Radical
	}
	return out
}
