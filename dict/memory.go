package dict

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/iw2rmb/syllable/word"
)

// Memory is an in-memory dictionary. It is safe for concurrent use, so one
// instance can serve several sessions.
type Memory struct {
	mu      sync.RWMutex
	words   map[string][]*word.Word
	used    map[string]int
	phrases [][]*word.Word
}

var (
	_ Dictionary      = (*Memory)(nil)
	_ PhrasePredictor = (*Memory)(nil)
	_ Learner         = (*Memory)(nil)
)

func NewMemory() *Memory {
	return &Memory{
		words: make(map[string][]*word.Word),
		used:  make(map[string]int),
	}
}

// Key returns the lookup key of w: the toneless reading for phonetic
// words, the keyword for the others.
func Key(w *word.Word) string {
	return strings.ToLower(w.Spell.Chars)
}

// Add stores words. Words without a key are ignored; a word equal to a
// stored one replaces it.
func (m *Memory) Add(words ...*word.Word) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range words {
		key := Key(w)
		if key == "" {
			continue
		}
		w = w.Clone()
		list := m.words[key]
		if i := slices.IndexFunc(list, w.Equal); i >= 0 {
			list[i] = w
			continue
		}
		m.words[key] = append(list, w)
	}
}

// AddPhrase stores a known phrase. Phrases of fewer than two words carry
// no continuation and are ignored.
func (m *Memory) AddPhrase(words ...*word.Word) {
	if len(words) < 2 {
		return
	}
	phrase := make([]*word.Word, len(words))
	for i, w := range words {
		phrase[i] = w.Clone()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.phrases = append(m.phrases, phrase)
}

// Words returns every stored word ordered by key, then rank.
func (m *Memory) Words() []*word.Word {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.words))
	for k := range m.words {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var out []*word.Word
	for _, k := range keys {
		out = append(out, m.ranked(k)...)
	}
	return out
}

// Phrases returns the stored phrases.
func (m *Memory) Phrases() [][]*word.Word {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.phrases)
}

func (m *Memory) Lookup(ctx context.Context, key string, phrase []*word.Word) ([]*word.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	key = strings.ToLower(key)
	if len(m.words[key]) == 0 {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrNotFound)
	}
	return PromoteContinuations(m.ranked(key), phrase, m.phrases), nil
}

func (m *Memory) IsValidSpelling(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.words[strings.ToLower(key)]) > 0
}

func (m *Memory) PredictPhrases(ctx context.Context, phrase []*word.Word, limit int) ([][]*word.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return Continuations(m.phrases, phrase, limit), nil
}

// Learn counts a choice of w; more used words rank first.
func (m *Memory) Learn(ctx context.Context, w *word.Word) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.used[usageKey(w)]++
	return nil
}

// ranked copies the words of key ordered by usage, then weight. The caller
// holds the lock.
func (m *Memory) ranked(key string) []*word.Word {
	list := make([]*word.Word, len(m.words[key]))
	for i, w := range m.words[key] {
		list[i] = w.Clone()
	}
	slices.SortStableFunc(list, func(a, b *word.Word) int {
		return cmp.Or(
			cmp.Compare(m.used[usageKey(b)], m.used[usageKey(a)]),
			cmp.Compare(b.Weight, a.Weight),
		)
	})
	return list
}

func usageKey(w *word.Word) string {
	return w.Value + "\x00" + w.Spell.Value
}
