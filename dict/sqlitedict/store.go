// Package sqlitedict stores a dictionary in SQLite. The schema is created
// and upgraded by embedded migrations when the store is opened.
package sqlitedict

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/word"
)

// phraseScanLimit bounds how many stored phrases one lookup considers.
const phraseScanLimit = 200

// Store is a SQLite-backed dictionary. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

var (
	_ dict.Dictionary      = (*Store)(nil)
	_ dict.PhrasePredictor = (*Store)(nil)
	_ dict.Learner         = (*Store)(nil)
)

// Open opens or creates the database at path and migrates it to the
// current schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	if err := Migrate(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Import upserts words and inserts phrases in one transaction. A word
// already stored keeps its usage count.
func (s *Store) Import(ctx context.Context, words []*word.Word, phrases [][]*word.Word) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	if err := importTx(ctx, tx, words, phrases); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importTx(ctx context.Context, tx *sql.Tx, words []*word.Word, phrases [][]*word.Word) error {
	for _, w := range words {
		if dict.Key(w) == "" {
			continue
		}
		strokes, err := encodeStrokes(w.Strokes)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO words (kind, value, spell, chars, spell_id, radical, radical_strokes, variant, strokes, weight)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (kind, value, spell) DO UPDATE SET
				chars = excluded.chars,
				spell_id = excluded.spell_id,
				radical = excluded.radical,
				radical_strokes = excluded.radical_strokes,
				variant = excluded.variant,
				strokes = excluded.strokes,
				weight = excluded.weight`,
			int(w.Kind), w.Value, w.Spell.Value, dict.Key(w), w.Spell.ID,
			w.Radical.Value, w.Radical.StrokeCount, w.Variant, strokes, w.Weight,
		)
		if err != nil {
			return fmt.Errorf("insert word %s: %w", w, err)
		}
	}

	for i, p := range phrases {
		value, spell := joinPhrase(p)
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO phrases (value, spell, weight) VALUES (?, ?, ?)`,
			value, spell, len(phrases)-i,
		)
		if err != nil {
			return fmt.Errorf("insert phrase %s: %w", value, err)
		}
	}
	return nil
}

// ImportMemory copies an in-memory dictionary into the store.
func (s *Store) ImportMemory(ctx context.Context, m *dict.Memory) error {
	return s.Import(ctx, m.Words(), m.Phrases())
}

func (s *Store) Lookup(ctx context.Context, key string, phrase []*word.Word) ([]*word.Word, error) {
	key = strings.ToLower(key)
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, value, spell, chars, spell_id, radical, radical_strokes, variant, strokes, weight
		FROM words
		WHERE chars = ?
		ORDER BY used DESC, weight DESC, id ASC`, key)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", key, err)
	}
	defer rows.Close()

	var words []*word.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", key, err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup %q: %w", key, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("lookup %q: %w", key, dict.ErrNotFound)
	}

	phrases, err := s.phrasesAround(ctx, phrase)
	if err != nil {
		return nil, err
	}
	return dict.PromoteContinuations(words, phrase, phrases), nil
}

func (s *Store) IsValidSpelling(key string) bool {
	var ok bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM words WHERE chars = ?)`, strings.ToLower(key)).Scan(&ok)
	return err == nil && ok
}

func (s *Store) PredictPhrases(ctx context.Context, phrase []*word.Word, limit int) ([][]*word.Word, error) {
	phrases, err := s.phrasesAround(ctx, phrase)
	if err != nil {
		return nil, err
	}

	out := dict.Continuations(phrases, phrase, limit)
	for _, next := range out {
		for i, w := range next {
			full, err := s.word(ctx, w.Value, w.Spell.Value)
			if err != nil {
				return nil, err
			}
			if full != nil {
				next[i] = full
			}
		}
	}
	return out, nil
}

// Learn counts a choice of w; more used words rank first.
func (s *Store) Learn(ctx context.Context, w *word.Word) error {
	if w == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE words SET used = used + 1 WHERE kind = ? AND value = ? AND spell = ?`,
		int(w.Kind), w.Value, w.Spell.Value,
	)
	if err != nil {
		return fmt.Errorf("learn %s: %w", w, err)
	}
	return nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// phrasesAround loads the stored phrases that contain the last word of
// phrase.
func (s *Store) phrasesAround(ctx context.Context, phrase []*word.Word) ([][]*word.Word, error) {
	if len(phrase) == 0 {
		return nil, nil
	}
	last := phrase[len(phrase)-1]

	rows, err := s.db.QueryContext(ctx, `
		SELECT value, spell FROM phrases
		WHERE value LIKE ? ESCAPE '\'
		ORDER BY weight DESC, id ASC
		LIMIT ?`, "%"+escapeLike(last.Value)+"%", phraseScanLimit)
	if err != nil {
		return nil, fmt.Errorf("load phrases: %w", err)
	}
	defer rows.Close()

	var phrases [][]*word.Word
	for rows.Next() {
		var value, spell string
		if err := rows.Scan(&value, &spell); err != nil {
			return nil, fmt.Errorf("load phrases: %w", err)
		}
		parts, err := dict.SplitPhrase(value, spell)
		if err != nil {
			continue
		}
		words := make([]*word.Word, len(parts))
		for i, p := range parts {
			words[i] = &word.Word{Kind: word.KindPhonetic, Value: p[0], Spell: word.Spell{Value: p[1]}}
		}
		phrases = append(phrases, words)
	}
	return phrases, rows.Err()
}

// word loads a phonetic word by written form and reading. It returns nil
// when none is stored.
func (s *Store) word(ctx context.Context, value, spell string) (*word.Word, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT kind, value, spell, chars, spell_id, radical, radical_strokes, variant, strokes, weight
		FROM words
		WHERE kind = ? AND value = ? AND spell = ?`, int(word.KindPhonetic), value, spell)
	w, err := scanWord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load word %s: %w", value, err)
	}
	return w, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWord(sc scanner) (*word.Word, error) {
	var (
		w       word.Word
		kind    int
		strokes string
	)
	err := sc.Scan(&kind, &w.Value, &w.Spell.Value, &w.Spell.Chars, &w.Spell.ID,
		&w.Radical.Value, &w.Radical.StrokeCount, &w.Variant, &strokes, &w.Weight)
	if err != nil {
		return nil, err
	}
	w.Kind = word.Kind(kind)
	if w.Strokes, err = decodeStrokes(strokes); err != nil {
		return nil, err
	}
	return &w, nil
}

func encodeStrokes(strokes map[string]int) (string, error) {
	if len(strokes) == 0 {
		return "", nil
	}
	b, err := json.Marshal(strokes)
	if err != nil {
		return "", fmt.Errorf("encode strokes: %w", err)
	}
	return string(b), nil
}

func decodeStrokes(s string) (map[string]int, error) {
	if s == "" {
		return nil, nil
	}
	var strokes map[string]int
	if err := json.Unmarshal([]byte(s), &strokes); err != nil {
		return nil, fmt.Errorf("decode strokes: %w", err)
	}
	return strokes, nil
}

func joinPhrase(p []*word.Word) (value, spell string) {
	var vb strings.Builder
	spells := make([]string, len(p))
	for i, w := range p {
		vb.WriteString(w.Value)
		spells[i] = w.Spell.Value
	}
	return vb.String(), strings.Join(spells, " ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
