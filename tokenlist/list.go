package tokenlist

import "slices"

// NoIndex is returned when an operation changed nothing or a lookup missed.
const NoIndex = -1

type cursor struct {
	selected *Token
	pending  *Token
}

// List is the composed-but-uncommitted text of one session.
type List struct {
	tokens []*Token
	cur    cursor

	staged      staged
	completions []Completion

	version uint64
}

// New returns a list holding a single selected gap.
func New() *List {
	l := &List{}
	l.truncate()
	return l
}

func (l *List) truncate() {
	gap := NewGap()
	l.tokens = []*Token{gap}
	l.completions = nil
	l.doSelect(gap)
}

// Version increments on every structural or cursor change.
func (l *List) Version() uint64 { return l.version }

func (l *List) Len() int { return len(l.tokens) }

// Tokens returns a copy of the sequence. The tokens themselves are shared.
func (l *List) Tokens() []*Token { return slices.Clone(l.tokens) }

// At returns the token at i, or nil when i is out of range.
func (l *List) At(i int) *Token {
	if i < 0 || i >= len(l.tokens) {
		return nil
	}
	return l.tokens[i]
}

// IndexOf returns the position of the token with id, or NoIndex.
func (l *List) IndexOf(id ID) int {
	if id == 0 {
		return NoIndex
	}
	for i, t := range l.tokens {
		if t.id == id {
			return i
		}
	}
	return NoIndex
}

func (l *List) Contains(id ID) bool { return l.IndexOf(id) >= 0 }

func (l *List) indexOfToken(t *Token) int {
	if t == nil {
		return NoIndex
	}
	return slices.Index(l.tokens, t)
}

func (l *List) First() *Token { return l.tokens[0] }

func (l *List) Last() *Token { return l.tokens[len(l.tokens)-1] }

// Selected returns the token under the cursor. It is never nil.
func (l *List) Selected() *Token { return l.cur.selected }

func (l *List) SelectedIndex() int { return l.indexOfToken(l.cur.selected) }

func (l *List) IsSelected(id ID) bool { return l.cur.selected.id == id }

func (l *List) IsGapSelected() bool { return l.cur.selected.kind == KindGap }

// Pending returns the in-progress edit buffer of the cursor. It is never nil.
//
// Callers mutate it directly (AppendKey, SetWord, ...); nothing reaches the
// sequence until ConfirmPending.
func (l *List) Pending() *Token { return l.cur.pending }

func (l *List) HasEmptyPending() bool { return l.cur.pending.IsEmpty() }

// NewPending replaces the pending buffer with an empty char token.
func (l *List) NewPending() *Token {
	l.cur.pending = NewChar()
	l.version++
	return l.cur.pending
}

// WithPending replaces the pending buffer with t without confirming the old
// one. A nil t behaves like NewPending.
func (l *List) WithPending(t *Token) *Token {
	if t == nil || t.kind == KindGap {
		return l.NewPending()
	}
	l.cur.pending = t
	l.version++
	return t
}

// DropPending discards in-progress edits.
func (l *List) DropPending() { l.NewPending() }

// IsEmpty reports whether the list holds no content, pending included.
func (l *List) IsEmpty() bool {
	for _, t := range l.tokens {
		if t.kind != KindGap && !t.IsEmpty() {
			return false
		}
	}
	return l.HasEmptyPending()
}

// doSelect moves the cursor onto t and rebuilds the pending buffer: empty
// for a gap, the nested list itself for a math expression, a copy otherwise.
func (l *List) doSelect(t *Token) {
	l.cur.selected = t
	switch t.kind {
	case KindGap:
		l.cur.pending = NewChar()
	case KindMathExpr:
		l.cur.pending = t
	case KindChar, KindSpace:
		l.cur.pending = t.clone()
	}
	l.version++
}

// ConfirmPending writes the pending buffer into the sequence and selects
// the written token, returning its index.
//
// An empty pending is a no-op returning NoIndex, except that an empty
// selected math expression is removed. A selected gap gets (gap, pending)
// inserted before it; a selected token is replaced in place, keeping its
// identity and pair link.
func (l *List) ConfirmPending() int {
	idx := l.SelectedIndex()
	if idx < 0 {
		return NoIndex
	}

	selected, pending := l.cur.selected, l.cur.pending
	if pending.IsEmpty() {
		if selected.kind == KindMathExpr && selected.IsEmpty() {
			l.removeAt(idx)
			l.doSelect(l.tokens[idx-1])
		}
		if l.cur.pending.kind != KindChar {
			l.NewPending()
		}
		return NoIndex
	}

	switch selected.kind {
	case KindGap:
		l.tokens = slices.Insert(l.tokens, idx, NewGap(), pending)
	default:
		if pending.id == selected.id && pending.sameContent(selected) {
			return idx
		}
		pending.id = selected.id
		pending.pair = selected.pair
		l.tokens[idx] = pending
	}

	l.doSelect(pending)
	return l.SelectedIndex()
}

// Select confirms the pending buffer, then moves the cursor to i.
// Selecting the current token or an out-of-range index does nothing.
func (l *List) Select(i int) {
	t := l.At(i)
	if t == nil || t == l.cur.selected {
		return
	}

	l.ConfirmPending()
	if l.indexOfToken(t) < 0 {
		// Confirming dropped an empty math expression together with t.
		t = l.tokens[min(i, len(l.tokens)-1)]
	}
	if t != l.cur.selected {
		l.doSelect(t)
	}
}

// SelectToken selects the token with id.
func (l *List) SelectToken(id ID) { l.Select(l.IndexOf(id)) }

// ConfirmPendingAndSelectByOffset confirms the pending buffer and selects
// the slot offset positions away from the confirmed token.
func (l *List) ConfirmPendingAndSelectByOffset(offset int) {
	idx := l.ConfirmPending()
	if idx < 0 {
		return
	}
	if t := l.At(idx + offset); t != nil {
		l.doSelect(t)
	}
}

func (l *List) ConfirmPendingAndSelectNext() { l.ConfirmPendingAndSelectByOffset(1) }

func (l *List) ConfirmPendingAndSelectPrevious() { l.ConfirmPendingAndSelectByOffset(-1) }

// ConfirmPendingAndSelectLast confirms the pending buffer and moves to the
// trailing gap.
func (l *List) ConfirmPendingAndSelectLast() {
	l.ConfirmPending()
	l.SelectLast()
}

// SelectLast moves the cursor to the trailing gap without confirming.
func (l *List) SelectLast() *Token {
	last := l.Last()
	if last != l.cur.selected {
		l.doSelect(last)
	}
	return last
}

// SelectNextFirstMatched selects the first token after the cursor that
// satisfies match. It returns nil and does nothing when none does.
func (l *List) SelectNextFirstMatched(match func(*Token) bool) *Token {
	for i := l.SelectedIndex() + 1; i < len(l.tokens); i++ {
		if t := l.tokens[i]; match(t) {
			l.doSelect(t)
			return t
		}
	}
	return nil
}

// clone deep-copies the sequence and cursor. The undo slot is not copied.
func (l *List) clone() *List {
	out := &List{tokens: cloneTokens(l.tokens), version: l.version}
	out.restoreCursor(l.cur.selected.id, l.cur.pending)
	return out
}

func (l *List) restoreCursor(selected ID, pending *Token) {
	i := l.IndexOf(selected)
	if i < 0 {
		i = len(l.tokens) - 1
	}
	t := l.tokens[i]
	l.cur.selected = t
	switch {
	case t.kind == KindMathExpr:
		l.cur.pending = t
	case pending == nil:
		l.cur.pending = NewChar()
	default:
		l.cur.pending = pending.clone()
	}
}
