package composer

import (
	"context"
	"errors"

	"github.com/iw2rmb/syllable/candidate"
	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/tokenlist"
	"github.com/iw2rmb/syllable/word"
)

// lookup rebuilds the chooser for the pending token. Dictionary failures
// leave the session without candidates.
func (s *Session) lookup(ctx context.Context) {
	s.chooser = nil
	key := s.spellingKey()
	if key == "" {
		return
	}

	words, err := s.cfg.Dictionary.Lookup(ctx, key, s.phraseBefore())
	switch {
	case errors.Is(err, dict.ErrNotFound):
		s.log.Debug("no candidates", "key", key)
		return
	case err != nil:
		s.log.Warn("lookup failed", "key", key, "err", err)
		return
	}
	s.chooser = candidate.NewChooser(words, s.cfg.PageSize)
	s.log.Debug("lookup", "key", key, "candidates", len(words))
}

// phraseBefore returns the phonetic words right before the cursor.
func (s *Session) phraseBefore() []*word.Word {
	i := s.list.SelectedIndex()
	if !s.list.IsGapSelected() {
		i--
	}
	prev := s.list.At(i - 1)
	if prev == nil {
		return nil
	}
	return s.list.PhraseWordsFrom(prev.ID())
}

// Choose resolves the pending token to the i-th candidate of the current
// page, confirms it and moves past it.
func (s *Session) Choose(ctx context.Context, i int) bool {
	if s.chooser == nil {
		return false
	}
	w := s.chooser.At(i)
	if w == nil {
		return false
	}

	p := s.list.Pending()
	p.SetWord(w)
	id := p.ID()
	s.list.ConfirmPendingAndSelectNext()
	s.chooser = nil
	s.log.Debug("choose", "word", w.String(), "index", i)

	s.learn(ctx, w)
	s.predict(ctx, id)
	s.emit(SequenceChanged)
	return true
}

// ApplyCompletion appends the words of the i-th phrase completion after
// the cursor.
func (s *Session) ApplyCompletion(ctx context.Context, i int) bool {
	completions := s.list.PhraseCompletions()
	if i < 0 || i >= len(completions) {
		return false
	}
	s.list.ClearPhraseCompletions()
	s.confirmAndAdvance()

	var last tokenlist.ID
	for _, w := range completions[i].Words {
		t := tokenlist.NewWord(w, tokenlist.AlphabetKeys(w.Spell.Chars)...)
		s.list.WithPending(t)
		s.list.ConfirmPendingAndSelectNext()
		s.learn(ctx, w)
		last = t.ID()
	}
	s.log.Debug("apply completion", "index", i, "words", len(completions[i].Words))

	s.predict(ctx, last)
	s.emit(SequenceChanged)
	return true
}

func (s *Session) learn(ctx context.Context, w *word.Word) {
	l, ok := s.cfg.Dictionary.(dict.Learner)
	if !ok {
		return
	}
	if err := l.Learn(ctx, w); err != nil {
		s.log.Warn("learn failed", "word", w.String(), "err", err)
	}
}

// predict offers the continuations of the phrase ending at the token with
// id.
func (s *Session) predict(ctx context.Context, id tokenlist.ID) {
	s.list.ClearPhraseCompletions()
	p, ok := s.cfg.Dictionary.(dict.PhrasePredictor)
	if !ok || s.cfg.CompletionLimit < 0 {
		return
	}
	phrase := s.list.PhraseWordsFrom(id)
	if len(phrase) == 0 {
		return
	}

	next, err := p.PredictPhrases(ctx, phrase, s.cfg.CompletionLimit)
	if err != nil {
		s.log.Warn("predict failed", "err", err)
		return
	}
	completions := make([]tokenlist.Completion, 0, len(next))
	for _, words := range next {
		if len(words) > 0 {
			completions = append(completions, tokenlist.Completion{Words: words})
		}
	}
	s.list.SetPhraseCompletions(completions)
}

// SelectSpell narrows the candidates to one reading; choosing the active
// reading again clears it.
func (s *Session) SelectSpell(spell word.Spell) bool {
	if s.chooser == nil {
		return false
	}
	return s.setFilter(s.chooser.Filter().WithSpell(spell))
}

// ToggleRadical adds or removes a radical from the filter.
func (s *Session) ToggleRadical(r word.Radical) bool {
	if s.chooser == nil {
		return false
	}
	return s.setFilter(s.chooser.Filter().ToggleRadical(r))
}

// AddStroke changes the minimum count of a stroke in the filter.
func (s *Session) AddStroke(code string, delta int) bool {
	if s.chooser == nil {
		return false
	}
	return s.setFilter(s.chooser.Filter().AddStroke(code, delta))
}

func (s *Session) ClearFilter() bool {
	if s.chooser == nil {
		return false
	}
	return s.setFilter(candidate.Filter{})
}

func (s *Session) setFilter(f candidate.Filter) bool {
	if !s.chooser.SetFilter(f) {
		return false
	}
	s.log.Debug("filter", "spells", len(f.Spells), "radicals", len(f.Radicals), "strokes", len(f.Strokes))
	s.emit(FilterChanged)
	return true
}

// NextPage shows the next page of the open symbol board, or of the
// candidates.
func (s *Session) NextPage() bool {
	return s.turnPage(func(p pager) bool { return p.Next() })
}

// PrevPage shows the previous page of the open symbol board, or of the
// candidates.
func (s *Session) PrevPage() bool {
	return s.turnPage(func(p pager) bool { return p.Prev() })
}

type pager interface {
	Next() bool
	Prev() bool
}

func (s *Session) turnPage(turn func(pager) bool) bool {
	var p pager
	switch {
	case s.symbols != nil:
		p = s.symbols
	case s.chooser != nil:
		p = s.chooser
	default:
		return false
	}
	if !turn(p) {
		return false
	}
	s.emit(CandidatePageChanged)
	return true
}
