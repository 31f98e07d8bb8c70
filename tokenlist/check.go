package tokenlist

import (
	"errors"
	"fmt"
)

// Check verifies the structural invariants of l: gaps and tokens alternate
// starting and ending with a gap, pair links are mutual, and the cursor
// points into the sequence. Nested math expressions are checked too.
func (l *List) Check() error {
	var errs []error
	if len(l.tokens) == 0 || len(l.tokens)%2 == 0 {
		errs = append(errs, fmt.Errorf("tokenlist: odd length expected, got %d", len(l.tokens)))
	}

	ids := make(map[ID]int, len(l.tokens))
	for i, t := range l.tokens {
		if want := i%2 == 0; (t.kind == KindGap) != want {
			errs = append(errs, fmt.Errorf("tokenlist: %s token at %d breaks gap alternation", t.kind, i))
		}
		if j, dup := ids[t.id]; dup {
			errs = append(errs, fmt.Errorf("tokenlist: id %d at %d and %d", t.id, j, i))
		}
		ids[t.id] = i
	}

	for i, t := range l.tokens {
		if t.pair != 0 {
			j, ok := ids[t.pair]
			if !ok || l.tokens[j].pair != t.id {
				errs = append(errs, fmt.Errorf("tokenlist: token %d at %d has a one-sided pair link to %d", t.id, i, t.pair))
			}
		}
		if t.kind == KindMathExpr && t.expr != nil {
			if err := t.expr.Check(); err != nil {
				errs = append(errs, fmt.Errorf("tokenlist: math expression at %d: %w", i, err))
			}
		}
	}

	switch {
	case l.cur.selected == nil || l.cur.pending == nil:
		errs = append(errs, errors.New("tokenlist: cursor is not initialized"))
	case l.SelectedIndex() < 0:
		errs = append(errs, fmt.Errorf("tokenlist: selected token %d is not in the sequence", l.cur.selected.id))
	}
	return errors.Join(errs...)
}
