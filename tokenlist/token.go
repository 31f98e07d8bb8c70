package tokenlist

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/iw2rmb/syllable/internal/grapheme"
	"github.com/iw2rmb/syllable/word"
)

// ID is the stable identity of a token. Zero is never assigned.
type ID uint64

var lastID atomic.Uint64

func nextID() ID { return ID(lastID.Add(1)) }

// Kind is the variant tag of a Token.
type Kind uint8

const (
	KindGap Kind = iota
	KindChar
	KindSpace
	KindMathExpr
)

func (k Kind) String() string {
	switch k {
	case KindGap:
		return "gap"
	case KindChar:
		return "char"
	case KindSpace:
		return "space"
	case KindMathExpr:
		return "math"
	default:
		return "unknown"
	}
}

// Token is one slot of a List.
//
// Only char tokens carry keys, a resolved word and a pair link. A math
// expression token wraps a nested List.
type Token struct {
	id   ID
	kind Kind

	keys []Key
	word *word.Word
	pair ID

	expr *List
}

// NewGap returns a caret slot.
func NewGap() *Token { return &Token{id: nextID(), kind: KindGap} }

// NewChar returns a char token holding keys.
func NewChar(keys ...Key) *Token {
	return &Token{id: nextID(), kind: KindChar, keys: slices.Clone(keys)}
}

// NewWord returns a char token resolved to w, typed with keys.
func NewWord(w *word.Word, keys ...Key) *Token {
	t := NewChar(keys...)
	t.word = w.Clone()
	return t
}

// NewSpace returns an explicit space token.
func NewSpace() *Token {
	return &Token{id: nextID(), kind: KindSpace, keys: []Key{{Kind: KeySpace, Text: " "}}}
}

// NewMathExpr returns an empty arithmetic expression token.
func NewMathExpr() *Token {
	return &Token{id: nextID(), kind: KindMathExpr, expr: New()}
}

func (t *Token) ID() ID { return t.id }

func (t *Token) Kind() Kind { return t.kind }

// Keys returns a copy of the recorded keys.
func (t *Token) Keys() []Key { return slices.Clone(t.keys) }

// Word returns the resolved word, or nil.
func (t *Token) Word() *word.Word { return t.word }

// SetWord resolves t to w. A nil w clears the resolution.
func (t *Token) SetWord(w *word.Word) {
	if t.kind != KindChar {
		return
	}
	t.word = w.Clone()
}

// Pair returns the partner ID, or zero.
func (t *Token) Pair() ID { return t.pair }

func (t *Token) HasPair() bool { return t.pair != 0 }

// Expr returns the nested list of a math expression token, or nil.
func (t *Token) Expr() *List { return t.expr }

// AppendKey records k. Appending clears a resolved word: the keys changed.
func (t *Token) AppendKey(k Key) {
	if t.kind != KindChar {
		return
	}
	t.keys = append(t.keys, k)
	t.word = nil
}

// ReplaceKeys swaps the recorded keys and clears a resolved word.
func (t *Token) ReplaceKeys(keys []Key) {
	if t.kind != KindChar {
		return
	}
	t.keys = slices.Clone(keys)
	t.word = nil
}

// DropLastKey removes the final key.
func (t *Token) DropLastKey() {
	if t.kind != KindChar || len(t.keys) == 0 {
		return
	}
	t.keys = t.keys[:len(t.keys)-1]
	t.word = nil
}

// DropLastChar removes the final character, splitting a multi-character
// key when needed.
func (t *Token) DropLastChar() {
	if t.kind != KindChar || len(t.keys) == 0 {
		return
	}
	last := &t.keys[len(t.keys)-1]
	if grapheme.Count(last.Text) > 1 {
		last.Text = grapheme.DropLast(last.Text)
		t.word = nil
		return
	}
	t.DropLastKey()
}

// Chars joins the key texts.
func (t *Token) Chars() string {
	var sb strings.Builder
	for _, k := range t.keys {
		sb.WriteString(k.Text)
	}
	return sb.String()
}

// IsEmpty reports whether t holds no content. Gaps are always empty.
func (t *Token) IsEmpty() bool {
	if t == nil {
		return true
	}
	switch t.kind {
	case KindGap:
		return true
	case KindChar:
		return len(t.keys) == 0 && t.word == nil
	case KindSpace:
		return false
	case KindMathExpr:
		return t.expr == nil || t.expr.IsEmpty()
	default:
		return true
	}
}

// IsPhonetic reports whether t resolved to a phonetic word.
func (t *Token) IsPhonetic() bool {
	return t != nil && t.kind == KindChar && t.word.IsPhonetic()
}

// IsLatin reports whether t is an unresolved run of letters and digits.
// A token carrying a chosen word keeps its typed keys but is not Latin.
func (t *Token) IsLatin() bool {
	if t == nil || t.word != nil {
		return false
	}
	return t.allKeys(Key.IsLatin)
}

// IsSymbol reports whether t is punctuation.
func (t *Token) IsSymbol() bool {
	return t.allKeys(func(k Key) bool { return k.Kind == KeySymbol })
}

// IsMathOperator reports whether t is an arithmetic operator.
func (t *Token) IsMathOperator() bool {
	return t.allKeys(func(k Key) bool { return k.Kind == KeyMathOperator })
}

// IsEmoji reports whether t is a pictograph.
func (t *Token) IsEmoji() bool {
	if t != nil && t.word != nil && t.word.Kind == word.KindEmoji {
		return true
	}
	return t.allKeys(func(k Key) bool { return k.Kind == KeyEmoji })
}

// IsReadingOnly reports whether opt renders t as its bare reading.
func (t *Token) IsReadingOnly(opt DisplayOption) bool {
	return opt.SpellMode == SpellReplacing && t.IsPhonetic()
}

func (t *Token) allKeys(pred func(Key) bool) bool {
	if t == nil || t.kind != KindChar || len(t.keys) == 0 {
		return false
	}
	for _, k := range t.keys {
		if !pred(k) {
			return false
		}
	}
	return true
}

// Text renders t under opt.
func (t *Token) Text(opt DisplayOption) string {
	switch t.kind {
	case KindGap:
		return ""
	case KindSpace:
		return " "
	case KindMathExpr:
		if t.expr == nil {
			return ""
		}
		return t.expr.Text(opt)
	case KindChar:
		if t.word == nil {
			return t.Chars()
		}
		value := t.word.Value
		if opt.PreferVariant && t.word.Variant != "" {
			value = t.word.Variant
		}
		if spell := t.word.Spell.Value; spell != "" {
			switch opt.SpellMode {
			case SpellFollowing:
				value = value + "(" + spell + ")"
			case SpellReplacing:
				value = spell
			}
		}
		return value
	default:
		return ""
	}
}

func (t *Token) String() string { return t.Text(DisplayOption{}) }

func (t *Token) clone() *Token {
	out := &Token{
		id:   t.id,
		kind: t.kind,
		keys: slices.Clone(t.keys),
		word: t.word.Clone(),
		pair: t.pair,
	}
	if t.expr != nil {
		out.expr = t.expr.clone()
	}
	return out
}

// sameContent compares everything but identity-independent state.
func (t *Token) sameContent(o *Token) bool {
	if t.kind != o.kind || t.pair != o.pair || t.expr != o.expr {
		return false
	}
	return slices.Equal(t.keys, o.keys) && t.word.Equal(o.word)
}

func cloneTokens(in []*Token) []*Token {
	out := make([]*Token, len(in))
	for i, t := range in {
		out[i] = t.clone()
	}
	return out
}
