package element

import "strings"

// node is the arena-private representation of one element. Relations
// are stored as ElementId indices, never pointers (spec.md §9): ownership
// is flat, so an Arena can be copied, snapshotted or read concurrently
// without chasing pointer cycles.
type node struct {
	tag         string
	id          string
	classes     []string
	attrs       map[string]string
	inlineStyle string
	state       State

	parent   ElementId
	prev     ElementId
	next     ElementId
	children []ElementId
}

// Arena is a minimal, mutable reference implementation of Tree: a flat
// slice of elements addressed by index. It exists for the engine's own
// tests and examples; embedders normally implement Tree directly over
// their own DOM instead of constructing an Arena.
type Arena struct {
	nodes []node
	root  ElementId
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{root: NoElement}
}

// AddRoot creates the tree's root element and returns its ElementId.
// AddRoot must be called at most once per Arena.
func (a *Arena) AddRoot(tag string) ElementId {
	id := a.alloc(tag)
	a.root = id
	return id
}

// AddChild creates a new element with tag as the last child of parent
// and returns its ElementId.
func (a *Arena) AddChild(parent ElementId, tag string) ElementId {
	id := a.alloc(tag)
	pn := &a.nodes[parent]
	if n := len(pn.children); n > 0 {
		prev := pn.children[n-1]
		a.nodes[id].prev = prev
		a.nodes[prev].next = id
	}
	a.nodes[id].parent = parent
	pn.children = append(pn.children, id)
	return id
}

func (a *Arena) alloc(tag string) ElementId {
	id := ElementId(len(a.nodes))
	a.nodes = append(a.nodes, node{
		tag:    tag,
		attrs:  make(map[string]string),
		parent: NoElement,
		prev:   NoElement,
		next:   NoElement,
	})
	return id
}

// SetID sets the element's `id` attribute.
func (a *Arena) SetID(id ElementId, value string) { a.nodes[id].id = value }

// SetClasses replaces the element's class list wholesale.
func (a *Arena) SetClasses(id ElementId, classes ...string) { a.nodes[id].classes = classes }

// AddClass appends a class if not already present.
func (a *Arena) AddClass(id ElementId, class string) {
	n := &a.nodes[id]
	for _, c := range n.classes {
		if c == class {
			return
		}
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes a class if present.
func (a *Arena) RemoveClass(id ElementId, class string) {
	n := &a.nodes[id]
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// SetAttribute sets a non-id, non-style attribute.
func (a *Arena) SetAttribute(id ElementId, name, value string) {
	a.nodes[id].attrs[strings.ToLower(name)] = value
}

// SetInlineStyle sets the raw text of the element's `style` attribute.
func (a *Arena) SetInlineStyle(id ElementId, style string) { a.nodes[id].inlineStyle = style }

// SetState replaces the element's pseudo-class state bits wholesale.
func (a *Arena) SetState(id ElementId, state State) { a.nodes[id].state = state }

// Root implements Tree.
func (a *Arena) Root() (ElementId, bool) {
	if a.root == NoElement {
		return NoElement, false
	}
	return a.root, true
}

// Tag implements Tree.
func (a *Arena) Tag(id ElementId) string { return a.nodes[id].tag }

// ID implements Tree.
func (a *Arena) ID(id ElementId) (string, bool) {
	v := a.nodes[id].id
	return v, v != ""
}

// Classes implements Tree.
func (a *Arena) Classes(id ElementId) []string { return a.nodes[id].classes }

// Attribute implements Tree.
func (a *Arena) Attribute(id ElementId, name string) (string, bool) {
	v, ok := a.nodes[id].attrs[strings.ToLower(name)]
	return v, ok
}

// Parent implements Tree.
func (a *Arena) Parent(id ElementId) (ElementId, bool) {
	p := a.nodes[id].parent
	return p, p != NoElement
}

// PrevSibling implements Tree.
func (a *Arena) PrevSibling(id ElementId) (ElementId, bool) {
	p := a.nodes[id].prev
	return p, p != NoElement
}

// NextSibling implements Tree.
func (a *Arena) NextSibling(id ElementId) (ElementId, bool) {
	n := a.nodes[id].next
	return n, n != NoElement
}

// Children implements Tree.
func (a *Arena) Children(id ElementId) []ElementId { return a.nodes[id].children }

// InlineStyle implements Tree.
func (a *Arena) InlineStyle(id ElementId) string { return a.nodes[id].inlineStyle }

// State implements Tree.
func (a *Arena) State(id ElementId) State { return a.nodes[id].state }

var _ Tree = (*Arena)(nil)
