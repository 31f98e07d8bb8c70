package tokenlist

import (
	"strings"
	"testing"

	"github.com/iw2rmb/syllable/word"
)

func phonetic(value, spell, chars string) *word.Word {
	return &word.Word{
		Kind:  word.KindPhonetic,
		Value: value,
		Spell: word.Spell{Value: spell, Chars: chars},
	}
}

// typeWord confirms a resolved word at the cursor and moves to the gap after it.
func typeWord(l *List, w *word.Word) *Token {
	t := NewWord(w, AlphabetKeys(w.Spell.Chars)...)
	l.WithPending(t)
	l.ConfirmPendingAndSelectNext()
	return t
}

// typeKeys confirms a char token made of keys and moves to the gap after it.
func typeKeys(l *List, keys ...Key) *Token {
	t := NewChar(keys...)
	l.WithPending(t)
	l.ConfirmPendingAndSelectNext()
	return t
}

// layout renders the sequence as "|" for gaps and token text otherwise,
// with the selected slot wrapped in brackets.
func layout(l *List) string {
	parts := make([]string, 0, l.Len())
	for _, t := range l.Tokens() {
		s := t.String()
		if t.Kind() == KindGap {
			s = "|"
		}
		if l.IsSelected(t.ID()) {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func mustCheck(t *testing.T, l *List) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("invariants: %v\nlayout: %s", err, layout(l))
	}
}

func TestList_New(t *testing.T) {
	l := New()
	mustCheck(t, l)

	if got, want := l.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if !l.IsGapSelected() {
		t.Fatalf("expected gap selected")
	}
	if !l.HasEmptyPending() {
		t.Fatalf("expected empty pending")
	}
	if got, want := l.Pending().Kind(), KindChar; got != want {
		t.Fatalf("pending kind=%v, want %v", got, want)
	}
	if !l.IsEmpty() {
		t.Fatalf("expected empty list")
	}
}

func TestList_ConfirmPending_InsertsBeforeSelectedGap(t *testing.T) {
	l := New()
	for _, k := range AlphabetKeys("kuai") {
		l.Pending().AppendKey(k)
	}

	idx := l.ConfirmPending()
	mustCheck(t, l)

	if got, want := idx, 1; got != want {
		t.Fatalf("idx=%d, want %d", got, want)
	}
	if got, want := layout(l), "| [kuai] |"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}
	if got, want := l.SelectedIndex(), 1; got != want {
		t.Fatalf("selected=%d, want %d", got, want)
	}
}

func TestList_ConfirmPendingAndSelectNext_SelectsTrailingGap(t *testing.T) {
	l := New()
	l.WithPending(NewChar(AlphabetKeys("kuai")...))
	l.ConfirmPendingAndSelectNext()
	mustCheck(t, l)

	if got, want := layout(l), "| kuai [|]"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}
	if l.Selected() != l.Last() {
		t.Fatalf("expected trailing gap selected")
	}
	if !l.HasEmptyPending() {
		t.Fatalf("expected fresh pending on trailing gap")
	}
}

func TestList_ConfirmPending_EmptyPendingIsNoop(t *testing.T) {
	l := New()
	v := l.Version()

	if got := l.ConfirmPending(); got != NoIndex {
		t.Fatalf("idx=%d, want NoIndex", got)
	}
	if got, want := l.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := l.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestList_ConfirmPending_Idempotent(t *testing.T) {
	l := New()
	l.WithPending(NewChar(AlphabetKeys("ni")...))
	first := l.ConfirmPending()

	before := layout(l)
	tokens := l.Tokens()
	v := l.Version()

	second := l.ConfirmPending()
	if second != first {
		t.Fatalf("idx=%d, want %d", second, first)
	}
	if got := layout(l); got != before {
		t.Fatalf("layout=%q, want %q", got, before)
	}
	for i, tok := range l.Tokens() {
		if tok != tokens[i] {
			t.Fatalf("token %d replaced by second confirm", i)
		}
	}
	if got := l.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestList_ConfirmPending_ReplacesInPlaceKeepingIdentity(t *testing.T) {
	l := New()
	ni := typeWord(l, phonetic("你", "nǐ", "ni"))

	l.SelectToken(ni.ID())
	l.Pending().SetWord(phonetic("泥", "ní", "ni"))

	idx := l.ConfirmPending()
	mustCheck(t, l)

	if got, want := idx, 1; got != want {
		t.Fatalf("idx=%d, want %d", got, want)
	}
	got := l.At(idx)
	if got.ID() != ni.ID() {
		t.Fatalf("id=%d, want %d", got.ID(), ni.ID())
	}
	if got, want := got.Word().Value, "泥"; got != want {
		t.Fatalf("word=%q, want %q", got, want)
	}
	if got, want := l.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestList_ConfirmPending_CarriesPairLink(t *testing.T) {
	l := New()
	l.InsertPair(NewChar(Symbol("「")), NewChar(Symbol("」")))
	left, right := l.At(1), l.At(3)

	l.Select(1)
	l.Pending().ReplaceKeys([]Key{Symbol("『")})
	l.ConfirmPending()
	mustCheck(t, l)

	replaced := l.At(1)
	if replaced == left {
		t.Fatalf("expected replaced token instance")
	}
	if got, want := replaced.Pair(), right.ID(); got != want {
		t.Fatalf("pair=%d, want %d", got, want)
	}
	if got, want := l.Partner(right.ID()).Chars(), "『"; got != want {
		t.Fatalf("partner=%q, want %q", got, want)
	}
}

func TestList_Select(t *testing.T) {
	l := New()
	typeKeys(l, AlphabetKeys("ab")...)
	typeKeys(l, Symbol(","))

	l.Select(1)
	if got, want := layout(l), "| [ab] | , |"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}

	v := l.Version()
	l.Select(1)
	l.Select(-1)
	l.Select(99)
	if got := l.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}

	// Moving away confirms the edited pending first.
	l.Pending().AppendKey(Alphabet("c"))
	l.Select(4)
	if got, want := layout(l), "| abc | , [|]"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}
	mustCheck(t, l)
}

func TestList_ConfirmPendingAndSelectByOffset(t *testing.T) {
	l := New()
	typeKeys(l, Alphabet("a"))
	typeKeys(l, Alphabet("b"))

	l.Select(3)
	l.ConfirmPendingAndSelectPrevious()
	if got, want := layout(l), "| a [|] b |"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}

	l.ConfirmPendingAndSelectLast()
	if got, want := l.SelectedIndex(), 4; got != want {
		t.Fatalf("selected=%d, want %d", got, want)
	}
}

func TestList_SelectNextFirstMatched(t *testing.T) {
	l := New()
	typeKeys(l, Alphabet("a"))
	zhong := typeWord(l, phonetic("中", "zhōng", "zhong"))
	l.Select(0)

	got := l.SelectNextFirstMatched((*Token).IsPhonetic)
	if got == nil || got.ID() != zhong.ID() {
		t.Fatalf("matched=%v, want %v", got, zhong)
	}
	if got := l.SelectNextFirstMatched((*Token).IsPhonetic); got != nil {
		t.Fatalf("matched=%v, want nil", got)
	}
	if !l.IsSelected(zhong.ID()) {
		t.Fatalf("expected selection unchanged after a miss")
	}
}

func TestList_OutOfRangeQueries(t *testing.T) {
	l := New()
	if l.At(-1) != nil || l.At(1) != nil {
		t.Fatalf("expected nil for out-of-range At")
	}
	if got := l.IndexOf(0); got != NoIndex {
		t.Fatalf("IndexOf(0)=%d, want NoIndex", got)
	}
	if l.Contains(12345678) {
		t.Fatalf("expected unknown id to be absent")
	}

	l.removeAt(0)
	l.removeAt(5)
	if got, want := l.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestList_EmptyMathExprRemovedOnConfirm(t *testing.T) {
	l := New()
	typeKeys(l, Alphabet("a"))

	m := NewMathExpr()
	m.Expr().WithPending(NewChar(Number("1")))
	m.Expr().ConfirmPendingAndSelectNext()
	l.WithPending(m)
	l.ConfirmPending()
	mustCheck(t, l)

	if got, want := l.Pending(), m; got != want {
		t.Fatalf("expected math token as its own pending")
	}
	if got, want := l.Text(DisplayOption{}), "a 1"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	m.Expr().DeleteBackward()
	if !m.IsEmpty() {
		t.Fatalf("expected empty expression")
	}

	if got := l.ConfirmPending(); got != NoIndex {
		t.Fatalf("idx=%d, want NoIndex", got)
	}
	mustCheck(t, l)
	if got, want := layout(l), "| a [|]"; got != want {
		t.Fatalf("layout=%q, want %q", got, want)
	}
	if got, want := l.Pending().Kind(), KindChar; got != want {
		t.Fatalf("pending kind=%v, want %v", got, want)
	}
}
