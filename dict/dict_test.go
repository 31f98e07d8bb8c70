package dict

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/syllable/word"
)

func values(words []*word.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Value
	}
	return out
}

func loadSeed(t *testing.T) *Memory {
	t.Helper()
	m, err := LoadYAMLFile("testdata/seed.yaml")
	require.NoError(t, err)
	return m
}

func TestMemory_LookupRanksByWeight(t *testing.T) {
	m := loadSeed(t)

	got, err := m.Lookup(context.Background(), "hao", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"号", "好", "😀"}, values(got))

	got, err = m.Lookup(context.Background(), "NI", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"你", "泥"}, values(got))
}

func TestMemory_LookupUnknownKey(t *testing.T) {
	m := loadSeed(t)

	_, err := m.Lookup(context.Background(), "xyz", nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, m.IsValidSpelling("xyz"))
	assert.True(t, m.IsValidSpelling("hao"))
}

func TestMemory_LookupHonorsContext(t *testing.T) {
	m := loadSeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Lookup(ctx, "ni", nil)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = m.PredictPhrases(ctx, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Learn(ctx, nil), context.Canceled)
}

func TestMemory_PhraseContextPromotesContinuation(t *testing.T) {
	m := loadSeed(t)
	ni, err := m.Lookup(context.Background(), "ni", nil)
	require.NoError(t, err)

	got, err := m.Lookup(context.Background(), "hao", ni[:1])
	require.NoError(t, err)
	assert.Equal(t, []string{"好", "号", "😀"}, values(got))

	next, err := m.PredictPhrases(context.Background(), ni[:1], 5)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, []string{"好"}, values(next[0]))
}

func TestMemory_LearnRanksUsedFirst(t *testing.T) {
	m := loadSeed(t)
	ni, err := m.Lookup(context.Background(), "ni", nil)
	require.NoError(t, err)

	require.NoError(t, m.Learn(context.Background(), ni[1]))

	got, err := m.Lookup(context.Background(), "ni", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"泥", "你"}, values(got))
}

func TestMemory_AddReplacesEqualWord(t *testing.T) {
	m := NewMemory()
	w := &word.Word{Value: "中", Spell: word.Spell{Value: "zhōng", Chars: "zhong"}, Weight: 1}
	m.Add(w)

	w2 := w.Clone()
	w2.Weight = 7
	m.Add(w2, &word.Word{Value: "no key"})

	words := m.Words()
	require.Len(t, words, 1)
	assert.Equal(t, 7, words[0].Weight)
}

func TestLoadYAML_Words(t *testing.T) {
	m := loadSeed(t)
	words := m.Words()
	require.Len(t, words, 5)

	var hao *word.Word
	for _, w := range words {
		if w.Value == "好" {
			hao = w
		}
	}
	require.NotNil(t, hao)
	assert.Equal(t, word.Radical{Value: "女", StrokeCount: 3}, hao.Radical)
	assert.Equal(t, map[string]int{"5": 2, "3": 1, "1": 2, "2": 1}, hao.Strokes)
	assert.NotZero(t, hao.Spell.ID)
	assert.Len(t, m.Phrases(), 1)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "words:\n  - {value: a, chars: a, kind: glyph}\n"},
		{"missing spell", "words:\n  - {value: 你, chars: ni}\n"},
		{"missing chars", "words:\n  - {value: 你, spell: nǐ}\n"},
		{"phrase length mismatch", "words:\n  - {value: 你, spell: nǐ, chars: ni}\nphrases:\n  - {value: 你好, spell: nǐ}\n"},
		{"phrase word unknown", "words:\n  - {value: 你, spell: nǐ, chars: ni}\nphrases:\n  - {value: 你们, spell: nǐ men}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, errInvalidSeed)
		})
	}

	_, err := LoadYAML(strings.NewReader("words: [\n"))
	assert.Error(t, err)
	_, err = LoadYAML(strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)

	m, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m.Words())
}

func TestContinuations(t *testing.T) {
	pw := func(v, s string) *word.Word {
		return &word.Word{Value: v, Spell: word.Spell{Value: s}}
	}
	zhong, guo, ren, wen := pw("中", "zhōng"), pw("国", "guó"), pw("人", "rén"), pw("文", "wén")
	phrases := [][]*word.Word{
		{zhong, guo, ren},
		{zhong, wen},
		{guo, ren},
	}

	got := Continuations(phrases, []*word.Word{wen, zhong, guo}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"人"}, values(got[0]))

	got = Continuations(phrases, []*word.Word{zhong}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"国", "人"}, values(got[0]))

	assert.Empty(t, Continuations(phrases, nil, 0))
}
