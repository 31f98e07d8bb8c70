package candidate

// Pager pages a slice in fixed-size windows. Browsing is circular: moving
// past either end wraps around.
type Pager[T any] struct {
	data  []T
	size  int
	start int
}

// NewPager returns a pager over data. A size below 1 is treated as 1.
func NewPager[T any](data []T, size int) *Pager[T] {
	return &Pager[T]{data: data, size: max(1, size)}
}

// SetData swaps the paged data. The page start is kept and corrected on
// the next read.
func (p *Pager[T]) SetData(data []T) { p.data = data }

func (p *Pager[T]) Data() []T { return p.data }

func (p *Pager[T]) Total() int { return len(p.data) }

func (p *Pager[T]) Size() int { return p.size }

// Start returns the index of the first item on the current page. When the
// data shrank below it, the start moves to the last page.
func (p *Pager[T]) Start() int {
	if p.start >= p.Total() {
		p.start = p.lastPageStart()
	}
	return p.start
}

// Page returns the items of the current page. The last page may be short.
func (p *Pager[T]) Page() []T {
	start := p.Start()
	end := min(start+p.size, p.Total())
	return p.data[start:end]
}

// PageIndex returns the 0-based number of the current page.
func (p *Pager[T]) PageIndex() int { return p.Start() / p.size }

// PageCount returns the number of pages. Empty data has none.
func (p *Pager[T]) PageCount() int { return (p.Total() + p.size - 1) / p.size }

// Next advances one page, wrapping to the first page past the end. It
// reports whether the start changed.
func (p *Pager[T]) Next() bool {
	start := p.start + p.size
	if start >= p.Total() {
		start = 0
	}
	return p.update(start)
}

// Prev goes back one page, wrapping to the last page before the first.
func (p *Pager[T]) Prev() bool {
	start := p.start - p.size
	if start < 0 {
		start = p.lastPageStart()
	}
	return p.update(start)
}

// Reset returns to the first page.
func (p *Pager[T]) Reset() { p.start = 0 }

func (p *Pager[T]) update(start int) bool {
	if p.start == start {
		return false
	}
	p.start = start
	return true
}

func (p *Pager[T]) lastPageStart() int {
	total := p.Total()
	if left := total % p.size; left > 0 {
		return total - left
	}
	return max(0, total-p.size)
}
