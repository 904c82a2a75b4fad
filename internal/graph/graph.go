package graph

// Handle addresses a contact inside a Graph. Handles are dense indexes
// assigned in creation order; they are never invalidated.
type Handle int

// Root is the handle of the root contact, present in every graph.
const Root Handle = 0

const noParent Handle = -1

type contact[T any] struct {
	program T
	state   T
	input   T

	parent   Handle
	children []Handle // structural, in creation order
	shorts   []Handle // short edges, in insertion order
}

// Graph is an append-only arena of contacts. The zero value is not usable;
// construct with New so the root exists.
type Graph[T any] struct {
	contacts []contact[T]
}

// New returns a graph holding only the root contact, with all three of the
// root's values at the zero value of T.
func New[T any]() *Graph[T] {
	return &Graph[T]{contacts: []contact[T]{{parent: noParent}}}
}

// Len returns the number of contacts, root included.
func (g *Graph[T]) Len() int { return len(g.contacts) }

// Root returns the root handle.
func (g *Graph[T]) Root() Handle { return Root }

func (g *Graph[T]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(g.contacts)
}

// AddChild appends a new contact under parent and returns its handle.
// The new contact carries zero values and no out-edges.
func (g *Graph[T]) AddChild(parent Handle) (Handle, error) {
	if !g.valid(parent) {
		return 0, invalidHandlef(parent)
	}
	h := Handle(len(g.contacts))
	g.contacts = append(g.contacts, contact[T]{parent: parent})
	g.contacts[parent].children = append(g.contacts[parent].children, h)
	return h, nil
}

// Short adds a non-structural edge from -> to. The edge is refused with
// ErrCycle when from is reachable from to (including from == to), leaving
// the graph unchanged. The reachability walk visits only the subgraph
// below to.
func (g *Graph[T]) Short(from, to Handle) error {
	if !g.valid(from) {
		return invalidHandlef(from)
	}
	if !g.valid(to) {
		return invalidHandlef(to)
	}
	if g.reachable(to, from) {
		return cyclef(from, to)
	}
	g.contacts[from].shorts = append(g.contacts[from].shorts, to)
	return nil
}

// reachable reports whether target can be reached from start by following
// out-edges of either relation. Handles are assumed valid.
func (g *Graph[T]) reachable(start, target Handle) bool {
	if start == target {
		return true
	}
	seen := make(map[Handle]struct{})
	stack := []Handle{start}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		c := &g.contacts[h]
		for _, next := range c.children {
			if next == target {
				return true
			}
			stack = append(stack, next)
		}
		for _, next := range c.shorts {
			if next == target {
				return true
			}
			stack = append(stack, next)
		}
	}
	return false
}

// Children returns the out-neighbors of h: structural children in creation
// order, then short targets in insertion order. The returned slice is a copy.
func (g *Graph[T]) Children(h Handle) ([]Handle, error) {
	if !g.valid(h) {
		return nil, invalidHandlef(h)
	}
	c := &g.contacts[h]
	if len(c.children) == 0 && len(c.shorts) == 0 {
		return nil, nil
	}
	out := make([]Handle, 0, len(c.children)+len(c.shorts))
	out = append(out, c.children...)
	out = append(out, c.shorts...)
	return out, nil
}

// IsLeaf reports whether h has no out-edges of either relation.
func (g *Graph[T]) IsLeaf(h Handle) (bool, error) {
	if !g.valid(h) {
		return false, invalidHandlef(h)
	}
	c := &g.contacts[h]
	return len(c.children) == 0 && len(c.shorts) == 0, nil
}

// Leaves returns the handles of all leaf contacts in creation order.
func (g *Graph[T]) Leaves() []Handle {
	var out []Handle
	for i := range g.contacts {
		c := &g.contacts[i]
		if len(c.children) == 0 && len(c.shorts) == 0 {
			out = append(out, Handle(i))
		}
	}
	return out
}

// Parent returns the structural parent of h. The root reports ok=false.
func (g *Graph[T]) Parent(h Handle) (parent Handle, ok bool, err error) {
	if !g.valid(h) {
		return 0, false, invalidHandlef(h)
	}
	p := g.contacts[h].parent
	if p == noParent {
		return 0, false, nil
	}
	return p, true, nil
}

func (g *Graph[T]) Program(h Handle) (T, error) {
	if !g.valid(h) {
		var zero T
		return zero, invalidHandlef(h)
	}
	return g.contacts[h].program, nil
}

func (g *Graph[T]) State(h Handle) (T, error) {
	if !g.valid(h) {
		var zero T
		return zero, invalidHandlef(h)
	}
	return g.contacts[h].state, nil
}

func (g *Graph[T]) Input(h Handle) (T, error) {
	if !g.valid(h) {
		var zero T
		return zero, invalidHandlef(h)
	}
	return g.contacts[h].input, nil
}

func (g *Graph[T]) SetProgram(h Handle, v T) error {
	if !g.valid(h) {
		return invalidHandlef(h)
	}
	g.contacts[h].program = v
	return nil
}

func (g *Graph[T]) SetState(h Handle, v T) error {
	if !g.valid(h) {
		return invalidHandlef(h)
	}
	g.contacts[h].state = v
	return nil
}

func (g *Graph[T]) SetInput(h Handle, v T) error {
	if !g.valid(h) {
		return invalidHandlef(h)
	}
	g.contacts[h].input = v
	return nil
}
