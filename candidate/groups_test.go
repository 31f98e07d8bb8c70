package candidate

import (
	"slices"
	"testing"
)

func TestGroups_ActivateResetsPage(t *testing.T) {
	g := NewGroups([]Group[string]{
		{Name: "punct", Items: []string{"，", "。", "？", "！", "、", "；"}},
		{Name: "math", Items: []string{"+", "-", "×", "÷"}},
	}, 4)

	if got, want := g.Active(), "punct"; got != want {
		t.Fatalf("active=%q, want %q", got, want)
	}
	g.Next()
	if got, want := g.Page(), []string{"、", "；"}; !slices.Equal(got, want) {
		t.Fatalf("page=%v, want %v", got, want)
	}

	if !g.ActivateName("math") {
		t.Fatalf("expected ActivateName=true")
	}
	if got := g.PageStart(); got != 0 {
		t.Fatalf("start=%d, want 0", got)
	}
	if got, want := g.Page(), []string{"+", "-", "×", "÷"}; !slices.Equal(got, want) {
		t.Fatalf("page=%v, want %v", got, want)
	}
	if g.Activate(1) || g.Activate(5) || g.ActivateName("emoji") {
		t.Fatalf("expected no-op activations to report false")
	}
	if got, want := g.Names(), []string{"punct", "math"}; !slices.Equal(got, want) {
		t.Fatalf("names=%v, want %v", got, want)
	}
}

func TestGroups_Empty(t *testing.T) {
	g := NewGroups[string](nil, 3)
	if g.Active() != "" || len(g.Page()) != 0 || g.Next() {
		t.Fatalf("expected empty groups to be inert")
	}
}
