package tokenlist

import "strings"

// Text renders the confirmed sequence under opt, inserting one space at
// every position where NeedGapSpace holds. The pending buffer is not
// rendered.
func (l *List) Text(opt DisplayOption) string {
	var sb strings.Builder
	for i, t := range l.tokens {
		sb.WriteString(t.Text(opt))
		if l.NeedGapSpace(i, opt) {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// NeedGapSpace reports whether a separating space belongs after position i.
//
// For a gap the check runs between its nearest content on each side, with a
// non-empty pending on that gap taking the right-hand side. For a token it
// only runs when the gap before it is selected with non-empty pending.
func (l *List) NeedGapSpace(i int, opt DisplayOption) bool {
	if i <= 0 || i >= len(l.tokens) {
		return false
	}

	t := l.tokens[i]
	var left, right *Token
	if t.kind == KindGap {
		left = l.contentOf(l.tokens[i-1])
		if p := l.nonEmptyPendingOn(t); p != nil {
			right = p
		} else if i < len(l.tokens)-1 {
			right = l.contentOf(l.tokens[i+1])
		}
	} else {
		p := l.nonEmptyPendingOn(l.tokens[i-1])
		if p == nil {
			return false
		}
		left, right = p, t
	}
	if left == nil || right == nil {
		return false
	}
	return needSpaceBetween(left, right, opt)
}

func needSpaceBetween(left, right *Token, opt DisplayOption) bool {
	switch {
	case isMathContent(left) || isMathContent(right):
		return true
	case left.IsLatin():
		return !isPunctLike(right)
	case right.IsLatin():
		return !isPunctLike(left)
	case left.IsMathOperator() || right.IsMathOperator():
		return true
	case left.IsReadingOnly(opt):
		return !isPunctLike(right)
	case right.IsReadingOnly(opt):
		return !isPunctLike(left)
	}
	return false
}

func isMathContent(t *Token) bool {
	return t.kind == KindMathExpr && !t.IsEmpty()
}

// isPunctLike treats an explicit space like punctuation: it already
// separates its neighbours.
func isPunctLike(t *Token) bool {
	return t.kind == KindSpace || t.IsSymbol()
}

// nonEmptyPendingOn returns the pending buffer when t is selected and the
// buffer holds content.
func (l *List) nonEmptyPendingOn(t *Token) *Token {
	if t != l.cur.selected || l.cur.pending.IsEmpty() {
		return nil
	}
	return l.cur.pending
}

// contentOf prefers in-progress edits over the stored token.
func (l *List) contentOf(t *Token) *Token {
	if p := l.nonEmptyPendingOn(t); p != nil {
		return p
	}
	return t
}
