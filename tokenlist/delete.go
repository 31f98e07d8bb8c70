package tokenlist

import (
	"fmt"
	"slices"

	"github.com/iw2rmb/syllable/internal/grapheme"
)

// DeleteBackward applies backspace semantics:
//
//   - a multi-character Latin run under the cursor loses its last character;
//   - on a gap, a non-empty pending is discarded, otherwise the preceding
//     token is removed together with its leading gap;
//   - on a token, the token and its leading gap are removed and the
//     following gap is selected.
//
// Removing one side of a matched pair always removes the other side too.
func (l *List) DeleteBackward() { l.deleteBackward(true) }

// DeleteSelected removes the selected token. On a gap it only discards the
// pending buffer.
func (l *List) DeleteSelected() {
	if l.cur.selected.kind != KindGap {
		l.deleteBackward(false)
	}
	l.DropPending()
}

func (l *List) deleteBackward(byStep bool) {
	idx := l.SelectedIndex()
	if idx < 0 {
		return
	}

	selected, pending := l.cur.selected, l.cur.pending
	current := pending
	if pending.IsEmpty() {
		current = selected
	}
	if byStep && current.IsLatin() && grapheme.Count(current.Chars()) > 1 {
		current.DropLastChar()
		l.version++
		return
	}

	if selected.kind == KindGap {
		if idx == 0 || !pending.IsEmpty() {
			l.DropPending()
			return
		}

		prev := l.tokens[idx-1]
		l.removePartner(prev)
		// Collapsing an empty pair removes the selected gap; the gap that
		// slid into its position takes over.
		if l.indexOfToken(selected) < 0 {
			l.doSelect(l.tokens[idx])
		}
		l.removeToken(prev)
		l.version++
		return
	}

	l.removePartner(selected)
	idx = l.SelectedIndex()
	next := l.tokens[idx+1]
	l.removeToken(selected)
	l.doSelect(next)
}

// removeAt removes the token at i and its leading gap.
func (l *List) removeAt(i int) {
	if i <= 0 || i >= len(l.tokens) || l.tokens[i].kind == KindGap {
		return
	}
	l.tokens = slices.Delete(l.tokens, i-1, i+1)
}

func (l *List) removeToken(t *Token) {
	if t == nil || t.kind == KindGap {
		return
	}
	l.removeAt(l.indexOfToken(t))
}

// removePartner unlinks t from its pair partner and removes the partner.
func (l *List) removePartner(t *Token) {
	if t == nil || t.kind == KindGap || t.pair == 0 {
		return
	}
	partner := l.partnerOf(t)
	partner.pair = 0
	t.pair = 0
	l.removeToken(partner)
}

// partnerOf resolves the pair link of t. A dangling link breaks the pair
// invariant and is a programming error.
func (l *List) partnerOf(t *Token) *Token {
	i := l.IndexOf(t.pair)
	if i < 0 || l.tokens[i].pair != t.id {
		panic(fmt.Sprintf("tokenlist: token %d has a dangling pair link to %d", t.id, t.pair))
	}
	return l.tokens[i]
}

// Partner returns the pair partner of the token with id, or nil.
func (l *List) Partner(id ID) *Token {
	i := l.IndexOf(id)
	if i < 0 || l.tokens[i].pair == 0 {
		return nil
	}
	return l.partnerOf(l.tokens[i])
}

// ClearPairOnSelected unlinks the selected token from its partner.
func (l *List) ClearPairOnSelected() {
	t := l.cur.selected
	if t.kind == KindGap || t.pair == 0 {
		return
	}
	partner := l.partnerOf(t)
	partner.pair = 0
	t.pair = 0
	l.cur.pending.pair = 0
	l.version++
}

// InsertPair confirms the pending buffer, inserts left and right as a linked
// pair at the cursor and selects the gap between them.
func (l *List) InsertPair(left, right *Token) {
	if left.IsEmpty() || right.IsEmpty() || left.kind != KindChar || right.kind != KindChar {
		return
	}

	l.ConfirmPending()
	if l.cur.selected.kind != KindGap {
		l.doSelect(l.tokens[l.SelectedIndex()+1])
	}

	left.pair, right.pair = 0, 0
	l.WithPending(left)
	li := l.ConfirmPending()
	l.doSelect(l.tokens[li+1])

	l.WithPending(right)
	ri := l.ConfirmPending()

	left.pair, right.pair = right.id, left.id
	l.doSelect(l.tokens[ri-1])
}
