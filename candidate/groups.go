package candidate

// Group is a named board of choosable items.
type Group[T any] struct {
	Name  string
	Items []T
}

// Groups pages one active group at a time. Switching groups restarts at
// the first page.
type Groups[T any] struct {
	groups []Group[T]
	active int
	pager  *Pager[T]
}

// NewGroups returns boards over groups with the first group active.
func NewGroups[T any](groups []Group[T], pageSize int) *Groups[T] {
	g := &Groups[T]{groups: groups, pager: NewPager[T](nil, pageSize)}
	if len(groups) > 0 {
		g.pager.SetData(groups[0].Items)
	}
	return g
}

// Names lists the group names in order.
func (g *Groups[T]) Names() []string {
	names := make([]string, len(g.groups))
	for i, grp := range g.groups {
		names[i] = grp.Name
	}
	return names
}

func (g *Groups[T]) Len() int { return len(g.groups) }

// Active returns the name of the active group, or "" when there are none.
func (g *Groups[T]) Active() string {
	if len(g.groups) == 0 {
		return ""
	}
	return g.groups[g.active].Name
}

func (g *Groups[T]) ActiveIndex() int { return g.active }

// Activate switches to the group at i. It reports whether the active
// group changed.
func (g *Groups[T]) Activate(i int) bool {
	if i < 0 || i >= len(g.groups) || i == g.active {
		return false
	}
	g.active = i
	g.pager.SetData(g.groups[i].Items)
	g.pager.Reset()
	return true
}

// ActivateName switches to the group called name.
func (g *Groups[T]) ActivateName(name string) bool {
	for i, grp := range g.groups {
		if grp.Name == name {
			return g.Activate(i)
		}
	}
	return false
}

func (g *Groups[T]) Page() []T { return g.pager.Page() }

func (g *Groups[T]) PageStart() int { return g.pager.Start() }

func (g *Groups[T]) PageCount() int { return g.pager.PageCount() }

func (g *Groups[T]) Next() bool { return g.pager.Next() }

func (g *Groups[T]) Prev() bool { return g.pager.Prev() }
