package composer

import (
	"strings"

	"github.com/iw2rmb/syllable/tokenlist"
)

const operandChars = "0123456789."

func isOperand(key string) bool {
	return key != "" && strings.Trim(key, operandChars) == ""
}

// InputMath types one key of an arithmetic expression. Digits and the
// decimal point extend the current operand; any other key is an operator.
// The expression stays pending until EndMath or another input confirms it.
func (s *Session) InputMath(key string) {
	if key == "" {
		return
	}
	p := s.list.Pending()
	if p.Kind() != tokenlist.KindMathExpr {
		s.confirmAndAdvance()
		s.list.ClearPhraseCompletions()
		p = s.list.WithPending(tokenlist.NewMathExpr())
	}

	expr := p.Expr()
	if isOperand(key) {
		if expr.Pending().IsMathOperator() {
			expr.ConfirmPendingAndSelectNext()
		}
		expr.Pending().AppendKey(tokenlist.Number(key))
	} else {
		expr.ConfirmPendingAndSelectNext()
		expr.WithPending(tokenlist.NewChar(tokenlist.MathOperator(key)))
		expr.ConfirmPendingAndSelectNext()
	}
	s.log.Debug("input math", "key", key)
	s.emit(SequenceChanged)
}

// EndMath confirms the pending expression. An empty one is dropped.
func (s *Session) EndMath() {
	if s.list.Pending().Kind() != tokenlist.KindMathExpr {
		return
	}
	s.confirmAndAdvance()
	s.emit(SequenceChanged)
}

// closeMath confirms the operand being typed inside a pending expression.
func (s *Session) closeMath() {
	if p := s.list.Pending(); p.Kind() == tokenlist.KindMathExpr {
		p.Expr().ConfirmPendingAndSelectLast()
	}
}
