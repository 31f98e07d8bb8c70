package composer

import (
	"github.com/iw2rmb/syllable/candidate"
	"github.com/iw2rmb/syllable/internal/grapheme"
)

// pairs maps an opening symbol to its closing partner.
var pairs = map[string]string{
	"(": ")", "[": "]", "{": "}", "<": ">", "\"": "\"",
	"（": "）", "【": "】", "《": "》", "「": "」", "『": "』", "“": "”", "‘": "’",
}

// DefaultSymbols returns the built-in symbol boards.
func DefaultSymbols() []candidate.Group[string] {
	return []candidate.Group[string]{
		{Name: "中文", Items: grapheme.Split("，。、；：？！…—·（【《「『“‘")},
		{Name: "ASCII", Items: grapheme.Split(",.;:?!'\"([{<@#$%&*-_+=/\\|~^`")},
		{Name: "数学", Items: grapheme.Split("±×÷≈≠≤≥∞√∑π°%‰")},
	}
}

// OpenSymbols shows the symbol boards, starting with the first one. It
// reports false when no boards are configured.
func (s *Session) OpenSymbols() bool {
	if len(s.cfg.Symbols) == 0 {
		return false
	}
	s.symbols = candidate.NewGroups(s.cfg.Symbols, s.cfg.PageSize)
	s.emit(CandidatePageChanged)
	return true
}

func (s *Session) CloseSymbols() {
	if s.symbols == nil {
		return
	}
	s.symbols = nil
	s.emit(CandidatePageChanged)
}

// Symbols returns the open symbol boards, or nil.
func (s *Session) Symbols() *candidate.Groups[string] { return s.symbols }

// SymbolGroup switches to the i-th symbol board.
func (s *Session) SymbolGroup(i int) bool {
	if s.symbols == nil || !s.symbols.Activate(i) {
		return false
	}
	s.emit(CandidatePageChanged)
	return true
}

// ChooseSymbol inputs the i-th symbol of the current board page. Opening
// brackets and quotes insert their matched pair. The board stays open.
func (s *Session) ChooseSymbol(i int) bool {
	if s.symbols == nil {
		return false
	}
	page := s.symbols.Page()
	if i < 0 || i >= len(page) {
		return false
	}
	sym := page[i]
	if right, ok := pairs[sym]; ok {
		s.InsertPair(sym, right)
	} else {
		s.InputSymbol(sym)
	}
	return true
}
