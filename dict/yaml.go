package dict

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/syllable/word"
)

// Seed is the YAML form of a dictionary.
//
//	words:
//	  - value: 好
//	    spell: hǎo
//	    chars: hao
//	    radical: 女
//	    radical_strokes: 3
//	    strokes: "531521"
//	    weight: 90
//	  - value: 😀
//	    kind: emoji
//	    chars: xiao
//	phrases:
//	  - value: 你好
//	    spell: nǐ hǎo
type Seed struct {
	Words   []SeedWord   `yaml:"words"`
	Phrases []SeedPhrase `yaml:"phrases"`
}

type SeedWord struct {
	Value          string `yaml:"value"`
	Kind           string `yaml:"kind,omitempty"`
	Spell          string `yaml:"spell,omitempty"`
	Chars          string `yaml:"chars"`
	SpellID        int    `yaml:"spell_id,omitempty"`
	Radical        string `yaml:"radical,omitempty"`
	RadicalStrokes int    `yaml:"radical_strokes,omitempty"`
	Strokes        string `yaml:"strokes,omitempty"`
	Variant        string `yaml:"variant,omitempty"`
	Weight         int    `yaml:"weight,omitempty"`
}

// SeedPhrase is a phrase written as its characters and their
// space-separated readings.
type SeedPhrase struct {
	Value string `yaml:"value"`
	Spell string `yaml:"spell"`
}

var errInvalidSeed = errors.New("dict: invalid seed")

func parseKind(s string) (word.Kind, error) {
	switch strings.ToLower(s) {
	case "", "phonetic":
		return word.KindPhonetic, nil
	case "emoji":
		return word.KindEmoji, nil
	case "symbol":
		return word.KindSymbol, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", errInvalidSeed, s)
	}
}

// word converts s. Spell IDs missing from the seed come from ids, which
// numbers readings in order of first appearance.
func (s SeedWord) word(ids map[string]int) (*word.Word, error) {
	kind, err := parseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if s.Value == "" || s.Chars == "" {
		return nil, fmt.Errorf("%w: word %q needs value and chars", errInvalidSeed, s.Value)
	}
	if kind == word.KindPhonetic && s.Spell == "" {
		return nil, fmt.Errorf("%w: phonetic word %q needs a spell", errInvalidSeed, s.Value)
	}

	id := s.SpellID
	if id == 0 && s.Spell != "" {
		if id = ids[s.Spell]; id == 0 {
			id = len(ids) + 1
			ids[s.Spell] = id
		}
	}

	return &word.Word{
		Kind:    kind,
		Value:   s.Value,
		Spell:   word.Spell{Value: s.Spell, Chars: strings.ToLower(s.Chars), ID: id},
		Radical: word.Radical{Value: s.Radical, StrokeCount: s.RadicalStrokes},
		Variant: s.Variant,
		Strokes: word.StrokeCounts(s.Strokes),
		Weight:  s.Weight,
	}, nil
}

// SplitPhrase pairs the characters of value with the readings of spell.
func SplitPhrase(value, spell string) ([][2]string, error) {
	chars := []rune(value)
	spells := strings.Fields(spell)
	if len(chars) != len(spells) {
		return nil, fmt.Errorf("%w: phrase %q has %d characters and %d readings", errInvalidSeed, value, len(chars), len(spells))
	}
	out := make([][2]string, len(chars))
	for i := range chars {
		out[i] = [2]string{string(chars[i]), spells[i]}
	}
	return out, nil
}

// Load builds a Memory dictionary from s. Phrase words are resolved
// against the seed's words.
func (s Seed) Load() (*Memory, error) {
	m := NewMemory()
	ids := make(map[string]int)
	byForm := make(map[[2]string]*word.Word)

	for i, sw := range s.Words {
		w, err := sw.word(ids)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		m.Add(w)
		if w.IsPhonetic() {
			byForm[[2]string{w.Value, w.Spell.Value}] = w
		}
	}

	for i, sp := range s.Phrases {
		parts, err := SplitPhrase(sp.Value, sp.Spell)
		if err != nil {
			return nil, fmt.Errorf("phrase %d: %w", i, err)
		}
		phrase := make([]*word.Word, 0, len(parts))
		for _, p := range parts {
			w, ok := byForm[p]
			if !ok {
				return nil, fmt.Errorf("phrase %d: %w: %s(%s) is not a seed word", i, errInvalidSeed, p[0], p[1])
			}
			phrase = append(phrase, w)
		}
		m.AddPhrase(phrase...)
	}
	return m, nil
}

// LoadYAML decodes a seed from r and builds a Memory dictionary from it.
func LoadYAML(r io.Reader) (*Memory, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dictionary seed: %w", err)
	}
	return s.Load()
}

// LoadYAMLFile reads a seed file.
func LoadYAMLFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary seed: %w", err)
	}
	defer f.Close()

	m, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
