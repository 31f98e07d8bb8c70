package composer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/syllable/candidate"
	"github.com/iw2rmb/syllable/internal/logging"
	"github.com/iw2rmb/syllable/tokenlist"
)

// ErrNoDictionary is returned by New when Config.Dictionary is nil.
var ErrNoDictionary = errors.New("composer: no dictionary configured")

// Session is one composition in progress.
type Session struct {
	id   uuid.UUID
	cfg  Config
	log  *slog.Logger
	list *tokenlist.List

	// chooser is set while the pending token spells a known reading.
	chooser *candidate.Chooser
	// symbols is set while a symbol board is open.
	symbols *candidate.Groups[string]
}

func New(cfg Config) (*Session, error) {
	if cfg.Dictionary == nil {
		return nil, ErrNoDictionary
	}
	cfg = cfg.withDefaults()

	id := uuid.New()
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		id:   id,
		cfg:  cfg,
		log:  log.With("session", id.String()),
		list: tokenlist.New(),
	}, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

// List exposes the underlying token list for inspection. Mutating it
// directly bypasses candidate lookups and events.
func (s *Session) List() *tokenlist.List { return s.list }

// Chooser returns the candidate chooser, or nil when the pending token
// has no candidates.
func (s *Session) Chooser() *candidate.Chooser { return s.chooser }

func (s *Session) Display() tokenlist.DisplayOption { return s.cfg.Display }

// SetDisplay changes how tokens are rendered.
func (s *Session) SetDisplay(opt tokenlist.DisplayOption) {
	if opt == s.cfg.Display {
		return
	}
	s.cfg.Display = opt
	s.emit(SequenceChanged)
}

// SetPageSize changes the page size, keeping the active filter.
func (s *Session) SetPageSize(n int) {
	if n <= 0 || n == s.cfg.PageSize {
		return
	}
	s.cfg.PageSize = n
	if s.chooser != nil {
		c := candidate.NewChooser(s.chooser.Candidates(), n)
		c.SetFilter(s.chooser.Filter())
		s.chooser = c
	}
	if s.symbols != nil {
		active := s.symbols.ActiveIndex()
		s.symbols = candidate.NewGroups(s.cfg.Symbols, n)
		s.symbols.Activate(active)
	}
	s.emit(CandidatePageChanged)
}

// Text renders the confirmed tokens.
func (s *Session) Text() string { return s.list.Text(s.cfg.Display) }

// InputLetter appends a letter to the token being spelled and looks up its
// candidates. A pending token that is not a spelling is confirmed first.
func (s *Session) InputLetter(ctx context.Context, letter string) {
	if letter == "" {
		return
	}
	if !isSpelling(s.list.Pending()) {
		s.confirmAndAdvance()
	}
	s.list.ClearPhraseCompletions()
	s.list.Pending().AppendKey(tokenlist.Alphabet(letter))
	s.log.Debug("input letter", "keys", s.list.Pending().Chars())

	s.lookup(ctx)
	s.emit(SequenceChanged)
}

// InputNumber appends a digit to the pending Latin run.
func (s *Session) InputNumber(digit string) {
	if digit == "" {
		return
	}
	if p := s.list.Pending(); p.Kind() != tokenlist.KindChar || (!p.IsEmpty() && !p.IsLatin()) {
		s.confirmAndAdvance()
	}
	s.list.ClearPhraseCompletions()
	s.list.Pending().AppendKey(tokenlist.Number(digit))
	s.chooser = nil
	s.emit(SequenceChanged)
}

// InputSymbol confirms the pending token and adds a punctuation token.
func (s *Session) InputSymbol(symbol string) {
	if symbol == "" {
		return
	}
	s.insert(tokenlist.NewChar(tokenlist.Symbol(symbol)))
}

// InputEmoji confirms the pending token and adds a pictograph.
func (s *Session) InputEmoji(emoji string) {
	if emoji == "" {
		return
	}
	s.insert(tokenlist.NewChar(tokenlist.Emoji(emoji)))
}

// InputSpace confirms the pending token and adds an explicit space.
func (s *Session) InputSpace() { s.insert(tokenlist.NewSpace()) }

// InsertPair adds a matched pair of symbols and places the cursor between
// them.
func (s *Session) InsertPair(left, right string) {
	if left == "" || right == "" {
		return
	}
	s.closeMath()
	s.list.ClearPhraseCompletions()
	s.list.InsertPair(tokenlist.NewChar(tokenlist.Symbol(left)), tokenlist.NewChar(tokenlist.Symbol(right)))
	s.chooser = nil
	s.log.Debug("insert pair", "left", left, "right", right)
	s.emit(SequenceChanged)
}

// Confirm writes the pending token as typed and moves past it.
func (s *Session) Confirm() {
	if s.list.HasEmptyPending() {
		return
	}
	s.list.ClearPhraseCompletions()
	s.confirmAndAdvance()
	s.emit(SequenceChanged)
}

// DeleteBackward applies backspace at the cursor. Inside an arithmetic
// expression being typed it edits the expression.
func (s *Session) DeleteBackward(ctx context.Context) {
	s.list.ClearPhraseCompletions()
	if p := s.list.Pending(); p.Kind() == tokenlist.KindMathExpr && !p.IsEmpty() {
		p.Expr().DeleteBackward()
		if p.IsEmpty() && s.list.IsGapSelected() {
			s.list.DropPending()
		}
	} else {
		s.list.DeleteBackward()
	}
	s.lookup(ctx)
	s.emit(SequenceChanged)
}

// DeleteSelected removes the selected token.
func (s *Session) DeleteSelected(ctx context.Context) {
	s.list.ClearPhraseCompletions()
	s.list.DeleteSelected()
	s.lookup(ctx)
	s.emit(SequenceChanged)
}

// Select confirms the pending token and moves the cursor to index i of the
// sequence. Selecting a resolved word offers its candidates again.
func (s *Session) Select(ctx context.Context, i int) bool {
	if s.list.At(i) == nil || i == s.list.SelectedIndex() {
		return false
	}
	s.closeMath()
	text := s.Text()
	s.list.Select(i)
	s.list.ClearPhraseCompletions()
	s.lookup(ctx)

	if s.Text() != text {
		s.emit(SequenceChanged)
	} else {
		s.emit(SelectionChanged)
	}
	return true
}

// MoveLeft selects the previous slot.
func (s *Session) MoveLeft(ctx context.Context) bool {
	return s.Select(ctx, s.list.SelectedIndex()-1)
}

// MoveRight selects the next slot.
func (s *Session) MoveRight(ctx context.Context) bool {
	return s.Select(ctx, s.list.SelectedIndex()+1)
}

// MoveToEnd confirms the pending token and selects the trailing gap.
func (s *Session) MoveToEnd(ctx context.Context) bool {
	return s.Select(ctx, s.list.Len()-1)
}

// Commit confirms the pending token and returns the rendered text, leaving
// an empty session. A revokable commit can be undone with RevokeCommit.
func (s *Session) Commit(revokable bool) string {
	s.closeMath()
	s.list.ConfirmPending()
	text := s.list.Commit(revokable, s.cfg.Display)
	s.chooser = nil
	s.log.Debug("commit", "bytes", len(text), "revokable", revokable)
	s.emit(SequenceChanged)
	return text
}

// Reset clears the session. A cancelable reset can be undone with
// CancelDelete.
func (s *Session) Reset(cancelable bool) {
	s.list.Reset(cancelable)
	s.chooser = nil
	s.log.Debug("reset", "cancelable", cancelable)
	s.emit(SequenceChanged)
}

// RevokeCommit restores the content of the last revokable commit.
func (s *Session) RevokeCommit(ctx context.Context) bool {
	if !s.list.RevokeCommit() {
		return false
	}
	s.lookup(ctx)
	s.emit(SequenceChanged)
	return true
}

// CancelDelete restores the content of the last cancelable reset.
func (s *Session) CancelDelete(ctx context.Context) bool {
	if !s.list.CancelDelete() {
		return false
	}
	s.lookup(ctx)
	s.emit(SequenceChanged)
	return true
}

// insert confirms the pending token and adds t after it.
func (s *Session) insert(t *tokenlist.Token) {
	s.confirmAndAdvance()
	s.list.ClearPhraseCompletions()
	s.list.WithPending(t)
	s.list.ConfirmPendingAndSelectNext()
	s.log.Debug("insert", "kind", t.Kind(), "text", t.String())
	s.emit(SequenceChanged)
}

// confirmAndAdvance confirms a non-empty pending token and selects the
// slot after it. An emptied math expression is dropped instead, leaving
// a fresh pending token at its gap.
func (s *Session) confirmAndAdvance() {
	s.chooser = nil
	if s.list.HasEmptyPending() {
		if s.list.Pending().Kind() != tokenlist.KindChar {
			s.list.ConfirmPending()
		}
		return
	}
	s.closeMath()
	s.list.ConfirmPendingAndSelectNext()
}

// isSpelling reports whether t holds only letters, so more letters extend
// its reading.
func isSpelling(t *tokenlist.Token) bool {
	if t.Kind() != tokenlist.KindChar {
		return false
	}
	for _, k := range t.Keys() {
		if k.Kind != tokenlist.KeyAlphabet {
			return false
		}
	}
	return true
}

// spellingKey returns the lookup key of the pending token, or "".
func (s *Session) spellingKey() string {
	p := s.list.Pending()
	if p.IsEmpty() || !isSpelling(p) {
		return ""
	}
	return strings.ToLower(p.Chars())
}
