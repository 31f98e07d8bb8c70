package tokenlist

import (
	"testing"

	"github.com/iw2rmb/syllable/word"
)

func TestList_Text_Spacing(t *testing.T) {
	ni := phonetic("你", "nǐ", "ni")
	hao := phonetic("好", "hǎo", "hao")
	smile := &word.Word{Kind: word.KindEmoji, Value: "😀"}
	typedSmile := NewWord(&word.Word{Kind: word.KindEmoji, Value: "😀", Spell: word.Spell{Chars: "hao"}}, AlphabetKeys("hao")...)

	math := func(keys ...Key) *Token {
		m := NewMathExpr()
		for _, k := range keys {
			m.Expr().WithPending(NewChar(k))
			m.Expr().ConfirmPendingAndSelectNext()
		}
		return m
	}

	tests := []struct {
		name   string
		tokens []*Token
		opt    DisplayOption
		want   string
	}{
		{
			name:   "phonetic words join",
			tokens: []*Token{NewWord(ni), NewWord(hao)},
			want:   "你好",
		},
		{
			name:   "latin then phonetic",
			tokens: []*Token{NewChar(AlphabetKeys("abc")...), NewWord(ni)},
			want:   "abc 你",
		},
		{
			name:   "phonetic then latin",
			tokens: []*Token{NewWord(ni), NewChar(AlphabetKeys("ok")...)},
			want:   "你 ok",
		},
		{
			name:   "latin then punctuation",
			tokens: []*Token{NewChar(AlphabetKeys("abc")...), NewChar(Symbol(",")), NewChar(AlphabetKeys("de")...)},
			want:   "abc,de",
		},
		{
			name:   "math operators",
			tokens: []*Token{NewChar(Number("1")), NewChar(MathOperator("+")), NewChar(Number("2"))},
			want:   "1 + 2",
		},
		{
			name:   "math expression content",
			tokens: []*Token{NewWord(ni), math(Number("3"), MathOperator("×"), Number("4"))},
			want:   "你 3 × 4",
		},
		{
			name:   "emoji joins",
			tokens: []*Token{NewWord(ni), NewWord(smile)},
			want:   "你😀",
		},
		{
			name:   "chosen emoji keeps typed keys",
			tokens: []*Token{typedSmile, NewWord(ni)},
			want:   "😀你",
		},
		{
			name:   "explicit space is not doubled",
			tokens: []*Token{NewChar(AlphabetKeys("abc")...), NewSpace(), NewChar(AlphabetKeys("def")...)},
			want:   "abc def",
		},
		{
			name:   "reading only",
			tokens: []*Token{NewWord(ni), NewWord(hao), NewChar(Symbol("。"))},
			opt:    DisplayOption{SpellMode: SpellReplacing},
			want:   "nǐ hǎo。",
		},
		{
			name:   "reading following",
			tokens: []*Token{NewWord(ni), NewWord(hao)},
			opt:    DisplayOption{SpellMode: SpellFollowing},
			want:   "你(nǐ)好(hǎo)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			for _, tok := range tt.tokens {
				l.WithPending(tok)
				l.ConfirmPendingAndSelectNext()
			}
			mustCheck(t, l)

			if got := l.Text(tt.opt); got != tt.want {
				t.Fatalf("text=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestList_Text_PreferVariant(t *testing.T) {
	w := phonetic("後", "hòu", "hou")
	w.Variant = "后"

	l := New()
	typeWord(l, w)

	if got, want := l.Text(DisplayOption{}), "後"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := l.Text(DisplayOption{PreferVariant: true}), "后"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestList_NeedGapSpace_PendingTakesPriority(t *testing.T) {
	l := New()
	typeKeys(l, AlphabetKeys("abc")...)

	last := l.Len() - 1
	if l.NeedGapSpace(last, DisplayOption{}) {
		t.Fatalf("expected no space before an empty trailing gap")
	}

	l.Pending().SetWord(phonetic("你", "nǐ", "ni"))
	if !l.NeedGapSpace(last, DisplayOption{}) {
		t.Fatalf("expected space between latin and pending word")
	}

	l.Pending().SetWord(nil)
	l.Pending().AppendKey(Symbol("."))
	if l.NeedGapSpace(last, DisplayOption{}) {
		t.Fatalf("expected no space before pending punctuation")
	}
}

func TestList_NeedGapSpace_TokenAfterSelectedGap(t *testing.T) {
	l := New()
	typeKeys(l, AlphabetKeys("xyz")...)
	l.Select(0)

	if l.NeedGapSpace(1, DisplayOption{}) {
		t.Fatalf("expected no space without pending")
	}
	l.Pending().SetWord(phonetic("我", "wǒ", "wo"))
	if !l.NeedGapSpace(1, DisplayOption{}) {
		t.Fatalf("expected space between pending word and latin token")
	}
	if l.NeedGapSpace(0, DisplayOption{}) || l.NeedGapSpace(-1, DisplayOption{}) || l.NeedGapSpace(9, DisplayOption{}) {
		t.Fatalf("expected no space at the list edges")
	}
}
