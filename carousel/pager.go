// Package carousel pages through a fixed list in windows of pageSize items
// with wraparound navigation.
package carousel

// Pager is a window of at most pageSize items over a list. The zero value
// is not usable; construct with New or Restore.
type Pager[T any] struct {
	items []T
	size  int
	index int
	dir   int
}

// New returns a Pager positioned at the first page. A pageSize below 1 is
// treated as 1.
func New[T any](items []T, pageSize int) *Pager[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager[T]{items: items, size: pageSize}
}

// Restore returns a Pager positioned at index, as carried in a request.
// An index outside the list is clamped to the nearest valid start.
func Restore[T any](items []T, pageSize, index int) *Pager[T] {
	p := New(items, pageSize)
	switch {
	case len(items) == 0 || index < 0:
		p.index = 0
	case index >= len(items):
		p.index = p.lastStart()
	default:
		p.index = index
	}
	return p
}

// Next advances one page, wrapping to the start when the list is exhausted.
func (p *Pager[T]) Next() {
	if len(p.items) == 0 {
		return
	}
	next := p.index + p.size
	if next >= len(p.items) {
		next = 0
	}
	p.index = next
	p.dir = 1
}

// Previous moves back one page, wrapping to the last page start.
func (p *Pager[T]) Previous() {
	if len(p.items) == 0 {
		return
	}
	prev := p.index - p.size
	if prev < 0 {
		prev = p.lastStart()
	}
	p.index = prev
	p.dir = -1
}

// JumpTo moves to page (0-based). Pages outside [0, PageCount) are clamped.
func (p *Pager[T]) JumpTo(page int) {
	if len(p.items) == 0 {
		return
	}
	if page < 0 {
		page = 0
	}
	if last := p.PageCount() - 1; page > last {
		page = last
	}
	target := page * p.size
	switch {
	case target > p.index:
		p.dir = 1
	case target < p.index:
		p.dir = -1
	default:
		p.dir = 0
	}
	p.index = target
}

// Page returns the visible slice. A trailing partial page is allowed.
func (p *Pager[T]) Page() []T {
	if len(p.items) == 0 {
		return nil
	}
	end := p.index + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[p.index:end]
}

// Index returns the position of the first visible item.
func (p *Pager[T]) Index() int { return p.index }

// Direction is +1 after moving forward, -1 after moving back, 0 otherwise.
// It only steers the transition animation.
func (p *Pager[T]) Direction() int { return p.dir }

// PageSize returns the window size.
func (p *Pager[T]) PageSize() int { return p.size }

// Len returns the number of items.
func (p *Pager[T]) Len() int { return len(p.items) }

// PageCount returns the number of pages, counting a trailing partial page.
func (p *Pager[T]) PageCount() int {
	return (len(p.items) + p.size - 1) / p.size
}

// CurrentPage returns the page containing Index.
func (p *Pager[T]) CurrentPage() int {
	return p.index / p.size
}

// lastStart is the start index of the last full window.
func (p *Pager[T]) lastStart() int {
	if n := len(p.items) - p.size; n > 0 {
		return n
	}
	return 0
}
