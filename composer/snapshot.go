package composer

import (
	"strings"

	"github.com/iw2rmb/syllable/candidate"
	"github.com/iw2rmb/syllable/tokenlist"
	"github.com/iw2rmb/syllable/word"
)

// TokenView is one slot as a view shows it. The selected slot shows the
// pending token when it holds content.
type TokenView struct {
	ID   tokenlist.ID
	Kind tokenlist.Kind
	Text string
	// SpaceBefore asks for a separating space in front of Text.
	SpaceBefore bool
	Selected    bool
	// Editing is set on the selected slot while it shows pending content.
	Editing bool
}

// Snapshot is a copy of everything a view renders.
type Snapshot struct {
	Version uint64
	// Text is the confirmed text, as Commit would return it.
	Text   string
	Tokens []TokenView

	// Candidates is the current page; nil entries are placeholders.
	Candidates []*word.Word
	PageIndex  int
	PageCount  int
	Spells     []word.Spell
	Radicals   []candidate.WeightedRadical
	Filter     candidate.Filter
	Toggles    []Toggle

	Completions []string

	SymbolGroups []string
	SymbolGroup  int
	// Symbols is the current board page; nil when no board is open.
	Symbols         []string
	SymbolPageIndex int
	SymbolPageCount int

	CanRevokeCommit bool
	CanCancelDelete bool
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	opt := s.cfg.Display
	snap := Snapshot{
		Version:         s.list.Version(),
		Text:            s.list.Text(opt),
		Tokens:          s.tokenViews(),
		CanRevokeCommit: s.list.CanRevokeCommit(),
		CanCancelDelete: s.list.CanCancelDelete(),
	}

	if c := s.chooser; c != nil {
		snap.Candidates = c.Page()
		snap.PageIndex = c.PageIndex()
		snap.PageCount = c.PageCount()
		snap.Spells = c.Spells()
		snap.Radicals = c.Radicals()
		snap.Filter = c.Filter()
		snap.Toggles = s.Toggles()
	}
	if b := s.symbols; b != nil {
		snap.SymbolGroups = b.Names()
		snap.SymbolGroup = b.ActiveIndex()
		snap.Symbols = b.Page()
		snap.SymbolPageIndex = b.PageStart() / s.cfg.PageSize
		snap.SymbolPageCount = b.PageCount()
	}

	for _, c := range s.list.PhraseCompletions() {
		var sb strings.Builder
		for _, w := range c.Words {
			sb.WriteString(w.Value)
		}
		snap.Completions = append(snap.Completions, sb.String())
	}
	return snap
}

func (s *Session) tokenViews() []TokenView {
	opt := s.cfg.Display
	pending := s.list.Pending()

	tokens := s.list.Tokens()
	views := make([]TokenView, len(tokens))
	for i, t := range tokens {
		v := TokenView{
			ID:          t.ID(),
			Kind:        t.Kind(),
			Text:        t.Text(opt),
			SpaceBefore: s.list.NeedGapSpace(i, opt),
			Selected:    s.list.IsSelected(t.ID()),
		}
		if v.Selected && !pending.IsEmpty() {
			v.Text = previewText(pending, opt)
			v.Editing = true
		}
		views[i] = v
	}
	return views
}

// previewText renders a pending token. Keys typed inside an expression
// are not confirmed yet, so they are appended here.
func previewText(t *tokenlist.Token, opt tokenlist.DisplayOption) string {
	if t.Kind() != tokenlist.KindMathExpr {
		return t.Text(opt)
	}
	expr := t.Expr()
	text := expr.Text(opt)
	if p := expr.Pending(); !p.IsEmpty() {
		text += p.Text(opt)
	}
	return text
}
