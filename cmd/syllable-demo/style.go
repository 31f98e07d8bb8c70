package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Text      lipgloss.Style
	Pending   lipgloss.Style
	Cursor    lipgloss.Style
	Index     lipgloss.Style
	Candidate lipgloss.Style
	Active    lipgloss.Style
	Dim       lipgloss.Style
	Committed lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Text:      r.NewStyle(),
		Pending:   r.NewStyle().Underline(true),
		Cursor:    r.NewStyle().Reverse(true),
		Index:     r.NewStyle().Foreground(lipgloss.Color("240")),
		Candidate: r.NewStyle(),
		Active:    r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       r.NewStyle().Foreground(lipgloss.Color("244")),
		Committed: r.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
