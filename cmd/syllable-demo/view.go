package main

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/syllable/composer"
	"github.com/iw2rmb/syllable/internal/grapheme"
	"github.com/iw2rmb/syllable/tokenlist"
)

const caret = "▏"

func (m model) View() string {
	snap := m.session.Snapshot()
	st := m.styles

	var b strings.Builder
	for _, line := range m.committed {
		b.WriteString(st.Committed.Render("» "+line) + "\n")
	}
	b.WriteString(m.renderTokens(snap) + "\n")

	switch {
	case snap.Symbols != nil:
		b.WriteString(m.renderTabs(snap.SymbolGroups, snap.SymbolGroup) + "\n")
		b.WriteString(m.renderPage(snap.Symbols, snap.SymbolPageIndex, snap.SymbolPageCount) + "\n")
	case len(snap.Candidates) > 0 || len(snap.Spells) > 0:
		labels := make([]string, len(snap.Candidates))
		for i, w := range snap.Candidates {
			if w != nil {
				labels[i] = w.Value
			}
		}
		b.WriteString(m.renderPage(labels, snap.PageIndex, snap.PageCount) + "\n")
		b.WriteString(m.renderFilter(snap) + "\n")
	}

	if len(snap.Completions) > 0 {
		b.WriteString(st.Dim.Render("phrase: "+strings.Join(snap.Completions, " / ")) + "\n")
	}
	b.WriteString(m.renderStatus(snap) + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderTokens(snap composer.Snapshot) string {
	st := m.styles
	var b strings.Builder
	for _, v := range snap.Tokens {
		if v.SpaceBefore {
			b.WriteByte(' ')
		}
		switch {
		case v.Selected && v.Kind == tokenlist.KindGap:
			if v.Editing {
				b.WriteString(st.Pending.Render(v.Text))
			}
			b.WriteString(st.Cursor.Render(caret))
		case v.Selected:
			b.WriteString(st.Cursor.Render(v.Text))
		default:
			b.WriteString(st.Text.Render(v.Text))
		}
	}
	return b.String()
}

// renderPage lays labels out in numbered columns of equal cell width.
func (m model) renderPage(labels []string, page, pages int) string {
	st := m.styles
	width := 1
	for _, l := range labels {
		width = max(width, grapheme.Width(l))
	}

	cells := make([]string, 0, len(labels))
	for i, l := range labels {
		if l == "" {
			l = "·"
		}
		cells = append(cells, st.Index.Render(fmt.Sprintf("%d.", i+1))+st.Candidate.Render(grapheme.PadRight(l, width)))
	}
	line := strings.Join(cells, " ")
	if pages > 1 {
		line += st.Dim.Render(fmt.Sprintf("  %d/%d", page+1, pages))
	}
	return line
}

func (m model) renderTabs(names []string, active int) string {
	tabs := make([]string, len(names))
	for i, n := range names {
		if i == active {
			tabs[i] = m.styles.Active.Render("[" + n + "]")
		} else {
			tabs[i] = m.styles.Dim.Render(" " + n + " ")
		}
	}
	return strings.Join(tabs, "")
}

func (m model) renderFilter(snap composer.Snapshot) string {
	st := m.styles
	var parts []string
	for _, sp := range snap.Spells {
		if len(snap.Filter.Spells) == 1 && snap.Filter.Spells[0] == sp {
			parts = append(parts, st.Active.Render(sp.Value))
		} else {
			parts = append(parts, st.Dim.Render(sp.Value))
		}
	}
	for _, r := range snap.Radicals {
		parts = append(parts, st.Dim.Render(r.Value))
	}
	for _, t := range snap.Toggles {
		parts = append(parts, st.Dim.Render("["+t.String()+"]"))
	}
	return strings.Join(parts, " ")
}

func (m model) renderStatus(snap composer.Snapshot) string {
	var flags []string
	if m.math {
		flags = append(flags, "math")
	}
	if snap.CanRevokeCommit {
		flags = append(flags, "ctrl+z revokes commit")
	}
	if snap.CanCancelDelete {
		flags = append(flags, "ctrl+z restores")
	}
	status := fmt.Sprintf("%s #%d", m.event.reason, m.event.count)
	if len(flags) > 0 {
		status += " · " + strings.Join(flags, " · ")
	}
	return m.styles.Dim.Render(status)
}
