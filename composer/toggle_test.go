package composer

import (
	"context"
	"slices"
	"testing"

	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/word"
)

func TestToggle_Apply(t *testing.T) {
	tests := []struct {
		toggle Toggle
		key    string
		want   string
		ok     bool
	}{
		{ToggleSCZ, "shi", "si", true},
		{ToggleSCZ, "si", "shi", true},
		{ToggleSCZ, "zhuang", "zuang", true},
		{ToggleSCZ, "ca", "cha", true},
		{ToggleSCZ, "ma", "", false},
		{ToggleNL, "nü", "lü", true},
		{ToggleNL, "lan", "nan", true},
		{ToggleNL, "ma", "", false},
		{ToggleNG, "ban", "bang", true},
		{ToggleNG, "bang", "ban", true},
		{ToggleNG, "xin", "xing", true},
		{ToggleNG, "feng", "fen", true},
		{ToggleNG, "hao", "", false},
		{ToggleNG, "", "", false},
		{Toggle(0), "si", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.toggle.Apply(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("%v.Apply(%q)=(%q, %v), want (%q, %v)", tt.toggle, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func toggleDict() *dict.Memory {
	m := dict.NewMemory()
	for _, w := range []struct{ value, spell, chars string }{
		{"字", "zì", "zi"},
		{"只", "zhī", "zhi"},
		{"难", "nán", "nan"},
		{"蓝", "lán", "lan"},
		{"狼", "láng", "lang"},
	} {
		m.Add(&word.Word{Kind: word.KindPhonetic, Value: w.value, Spell: word.Spell{Value: w.spell, Chars: w.chars}})
	}
	return m
}

func TestSession_Toggles(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, toggleDict(), 0)

	typeLetters(s, "zi")
	if got, want := s.Toggles(), []Toggle{ToggleSCZ}; !slices.Equal(got, want) {
		t.Fatalf("toggles=%v, want %v", got, want)
	}
	if s.ToggleSpelling(ctx, ToggleNL) {
		t.Fatalf("n/l toggle applied to %q", "zi")
	}
	if !s.ToggleSpelling(ctx, ToggleSCZ) {
		t.Fatalf("s/c/z toggle refused")
	}
	if got, want := s.List().Pending().Chars(), "zhi"; got != want {
		t.Fatalf("pending=%q, want %q", got, want)
	}
	if got, want := pageValues(s), []string{"只"}; !slices.Equal(got, want) {
		t.Fatalf("page=%v, want %v", got, want)
	}

	s.Reset(false)
	typeLetters(s, "lan")
	if got, want := s.Toggles(), []Toggle{ToggleNL, ToggleNG}; !slices.Equal(got, want) {
		t.Fatalf("toggles=%v, want %v", got, want)
	}
	s.ToggleSpelling(ctx, ToggleNG)
	if got, want := pageValues(s), []string{"狼"}; !slices.Equal(got, want) {
		t.Fatalf("page=%v, want %v", got, want)
	}
	if got, want := s.Toggles(), []Toggle{ToggleNG}; !slices.Equal(got, want) {
		t.Fatalf("toggles=%v, want %v", got, want)
	}
}
