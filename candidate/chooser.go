package candidate

import (
	"slices"

	"github.com/iw2rmb/syllable/word"
)

// Chooser holds the ranked candidates of one pending token together with
// the active filter and the page being browsed.
type Chooser struct {
	candidates []*word.Word
	spells     []word.Spell
	filter     Filter
	pager      *Pager[*word.Word]
}

// NewChooser returns a chooser over ranked candidates with no filter.
func NewChooser(candidates []*word.Word, pageSize int) *Chooser {
	return &Chooser{
		candidates: candidates,
		spells:     DistinctSpells(candidates),
		pager:      NewPager(candidates, pageSize),
	}
}

// Candidates returns the unfiltered ranked candidates.
func (c *Chooser) Candidates() []*word.Word { return c.candidates }

// Filtered returns the candidates the filter keeps, including nil
// placeholders that pad the first page.
func (c *Chooser) Filtered() []*word.Word { return c.pager.Data() }

// Spells returns the readings offered for filtering.
func (c *Chooser) Spells() []word.Spell { return c.spells }

// Radicals returns the radicals offered for the readings the filter
// currently accepts.
func (c *Chooser) Radicals() []WeightedRadical {
	return AggregateRadicals(c.candidates, c.filter.Spells)
}

// Filter returns a copy of the active filter.
func (c *Chooser) Filter() Filter { return c.filter.Clone() }

// SetFilter replaces the active filter. When it differs from the current
// one the candidates are refiltered and browsing restarts at the first
// page. It reports whether anything changed.
func (c *Chooser) SetFilter(f Filter) bool {
	if f.Equal(c.filter) {
		return false
	}
	c.filter = f.Clone()
	c.pager.SetData(BestMatchFirst(c.candidates, c.filter, c.pager.Size()))
	c.pager.Reset()
	return true
}

// AddStroke changes the minimum count of one stroke in the filter.
func (c *Chooser) AddStroke(code string, delta int) bool {
	return c.SetFilter(c.filter.AddStroke(code, delta))
}

func (c *Chooser) ClearFilter() bool { return c.SetFilter(Filter{}) }

// Page returns the current page. Nil entries are placeholders.
func (c *Chooser) Page() []*word.Word { return c.pager.Page() }

func (c *Chooser) PageStart() int { return c.pager.Start() }

func (c *Chooser) PageSize() int { return c.pager.Size() }

func (c *Chooser) PageIndex() int { return c.pager.PageIndex() }

func (c *Chooser) PageCount() int { return c.pager.PageCount() }

func (c *Chooser) Next() bool { return c.pager.Next() }

func (c *Chooser) Prev() bool { return c.pager.Prev() }

// At returns the i-th entry of the current page, or nil.
func (c *Chooser) At(i int) *word.Word {
	page := c.Page()
	if i < 0 || i >= len(page) {
		return nil
	}
	return page[i]
}

// IndexOf returns the position of w among the filtered candidates, or -1.
func (c *Chooser) IndexOf(w *word.Word) int {
	if w == nil {
		return -1
	}
	return slices.IndexFunc(c.pager.Data(), w.Equal)
}
