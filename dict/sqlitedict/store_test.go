package sqlitedict

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/word"
)

func values(words []*word.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Value
	}
	return out
}

func openSeeded(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict", "words.db")

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	m, err := dict.LoadYAMLFile("../testdata/seed.yaml")
	require.NoError(t, err)
	require.NoError(t, s.ImportMemory(context.Background(), m))
	return s, path
}

func TestOpen_MigratesSchema(t *testing.T) {
	_, path := openSeeded(t)

	v, err := SchemaVersion(path)
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)

	// Reopening an up-to-date database is a no-op migration.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	n, err := s2.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSchemaVersion_FreshDatabase(t *testing.T) {
	v, err := SchemaVersion(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestStore_Lookup(t *testing.T) {
	s, _ := openSeeded(t)
	ctx := context.Background()

	got, err := s.Lookup(ctx, "hao", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"号", "好", "😀"}, values(got))

	hao := got[1]
	assert.Equal(t, "hǎo", hao.Spell.Value)
	assert.Equal(t, word.Radical{Value: "女", StrokeCount: 3}, hao.Radical)
	assert.Equal(t, map[string]int{"5": 2, "3": 1, "1": 2, "2": 1}, hao.Strokes)
	assert.Equal(t, word.KindEmoji, got[2].Kind)

	_, err = s.Lookup(ctx, "zzz", nil)
	assert.ErrorIs(t, err, dict.ErrNotFound)

	assert.True(t, s.IsValidSpelling("NI"))
	assert.False(t, s.IsValidSpelling("zzz"))
}

func TestStore_PhraseContext(t *testing.T) {
	s, _ := openSeeded(t)
	ctx := context.Background()

	ni, err := s.Lookup(ctx, "ni", nil)
	require.NoError(t, err)

	got, err := s.Lookup(ctx, "hao", ni[:1])
	require.NoError(t, err)
	assert.Equal(t, []string{"好", "号", "😀"}, values(got))

	next, err := s.PredictPhrases(ctx, ni[:1], 3)
	require.NoError(t, err)
	require.Len(t, next, 1)
	require.Len(t, next[0], 1)
	assert.Equal(t, "好", next[0][0].Value)
	assert.Equal(t, "hao", next[0][0].Spell.Chars, "continuations resolve to stored words")
}

func TestStore_LearnAndReimport(t *testing.T) {
	s, _ := openSeeded(t)
	ctx := context.Background()

	ni, err := s.Lookup(ctx, "ni", nil)
	require.NoError(t, err)
	require.NoError(t, s.Learn(ctx, ni[1]))
	require.NoError(t, s.Learn(ctx, nil))

	got, err := s.Lookup(ctx, "ni", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"泥", "你"}, values(got))

	// Reimporting updates fields but keeps usage.
	w := ni[0].Clone()
	w.Weight = 1000
	require.NoError(t, s.Import(ctx, []*word.Word{w}, nil))

	got, err = s.Lookup(ctx, "ni", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"泥", "你"}, values(got))
	assert.Equal(t, 1000, got[1].Weight)
}

func TestStore_LookupCanceled(t *testing.T) {
	s, _ := openSeeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Lookup(ctx, "ni", nil)
	assert.Error(t, err)
}

func TestCloseNilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}
