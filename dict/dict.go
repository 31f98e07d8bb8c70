// Package dict defines the dictionary the composer queries for candidates,
// an in-memory implementation and a YAML seed format.
package dict

import (
	"context"
	"errors"

	"github.com/iw2rmb/syllable/word"
)

// ErrNotFound is returned by Lookup when no word is spelled by the key.
var ErrNotFound = errors.New("dict: not found")

// Dictionary resolves typed keys to ranked candidate words.
type Dictionary interface {
	// Lookup returns the words spelled by key, best first. phrase holds the
	// phonetic words typed just before the key and may bias the ranking.
	Lookup(ctx context.Context, key string, phrase []*word.Word) ([]*word.Word, error)
	// IsValidSpelling reports whether key spells at least one word.
	IsValidSpelling(key string) bool
}

// PhrasePredictor is implemented by dictionaries that know whole phrases.
type PhrasePredictor interface {
	// PredictPhrases returns up to limit continuations of phrase.
	PredictPhrases(ctx context.Context, phrase []*word.Word, limit int) ([][]*word.Word, error)
}

// Learner is implemented by dictionaries that rank by usage.
type Learner interface {
	// Learn records that w was chosen.
	Learn(ctx context.Context, w *word.Word) error
}
