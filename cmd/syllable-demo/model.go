package main

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/syllable/composer"
	"github.com/iw2rmb/syllable/internal/config"
	"github.com/iw2rmb/syllable/internal/grapheme"
)

// configMsg carries a reloaded config file.
type configMsg struct{ cfg *config.Config }

// lastEvent records the most recent session event for the status line.
type lastEvent struct {
	reason composer.Reason
	count  int
}

func (e *lastEvent) record(ev composer.Event) {
	e.reason = ev.Reason
	e.count++
}

type model struct {
	ctx     context.Context
	session *composer.Session
	event   *lastEvent

	keys   keyMap
	help   help.Model
	styles styles

	math      bool
	committed []string
	width     int
}

func newModel(ctx context.Context, s *composer.Session, ev *lastEvent, st styles) model {
	return model{
		ctx:     ctx,
		session: s,
		event:   ev,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  st,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case configMsg:
		m.session.SetDisplay(msg.cfg.DisplayOption())
		m.session.SetPageSize(msg.cfg.Candidates.PageSize)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg), nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) model {
	s, ctx := m.session, m.ctx
	snap := s.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Commit):
		if s.List().HasEmptyPending() || m.math {
			m.math = false
			s.EndMath()
			if text := s.Commit(true); text != "" {
				m.committed = append(m.committed, text)
			}
		} else {
			s.Confirm()
		}
	case key.Matches(msg, m.keys.Choose):
		if !s.Choose(ctx, firstCandidate(snap)) {
			s.InputSpace()
		}
	case key.Matches(msg, m.keys.Backspace):
		s.DeleteBackward(ctx)
	case key.Matches(msg, m.keys.Delete):
		s.DeleteSelected(ctx)
	case key.Matches(msg, m.keys.Left):
		s.MoveLeft(ctx)
	case key.Matches(msg, m.keys.Right):
		s.MoveRight(ctx)
	case key.Matches(msg, m.keys.End):
		s.MoveToEnd(ctx)
	case key.Matches(msg, m.keys.NextPage):
		s.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		s.PrevPage()
	case key.Matches(msg, m.keys.NextSpell):
		if b := s.Symbols(); b != nil {
			if b.Len() > 0 {
				s.SymbolGroup((b.ActiveIndex() + 1) % b.Len())
			}
		} else {
			nextSpell(s, snap)
		}
	case key.Matches(msg, m.keys.Toggle):
		if toggles := s.Toggles(); len(toggles) > 0 {
			s.ToggleSpelling(ctx, toggles[0])
		}
	case key.Matches(msg, m.keys.Completion):
		s.ApplyCompletion(ctx, 0)
	case key.Matches(msg, m.keys.Symbols):
		if s.Symbols() != nil {
			s.CloseSymbols()
		} else {
			s.OpenSymbols()
		}
	case key.Matches(msg, m.keys.Math):
		if m.math {
			s.EndMath()
		}
		m.math = !m.math
	case key.Matches(msg, m.keys.Undo):
		if !s.RevokeCommit(ctx) {
			s.CancelDelete(ctx)
		}
		if n := len(m.committed); n > 0 && s.List().CanRevokeCommit() {
			m.committed = m.committed[:n-1]
			s.List().ClearCommitRevokes()
		}
	case key.Matches(msg, m.keys.Reset):
		m.math = false
		s.Reset(true)
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			m.inputRune(r, snap)
		}
	}
	return m
}

// inputRune routes one typed character. Digits choose a candidate or
// symbol while a page is shown.
func (m model) inputRune(r rune, snap composer.Snapshot) {
	s, ctx, text := m.session, m.ctx, string(r)

	switch {
	case m.math:
		s.InputMath(text)
	case r >= '1' && r <= '9' && snap.Symbols != nil:
		s.ChooseSymbol(int(r - '1'))
	case r >= '1' && r <= '9' && len(snap.Candidates) > 0:
		s.Choose(ctx, int(r-'1'))
	case grapheme.IsLatin(text) && unicode.IsLetter(r):
		s.InputLetter(ctx, strings.ToLower(text))
	case grapheme.IsLatin(text):
		s.InputNumber(text)
	case grapheme.IsPunct(text):
		s.InputSymbol(text)
	}
}

// firstCandidate returns the index of the first real candidate on the
// page, skipping placeholders.
func firstCandidate(snap composer.Snapshot) int {
	for i, w := range snap.Candidates {
		if w != nil {
			return i
		}
	}
	return -1
}

// nextSpell cycles the reading filter through the offered readings and
// back to none.
func nextSpell(s *composer.Session, snap composer.Snapshot) {
	if len(snap.Spells) == 0 {
		return
	}
	next := 0
	if len(snap.Filter.Spells) == 1 {
		for i, sp := range snap.Spells {
			if sp == snap.Filter.Spells[0] {
				next = i + 1
			}
		}
	}
	if next >= len(snap.Spells) {
		s.ClearFilter()
		return
	}
	s.SelectSpell(snap.Spells[next])
}
