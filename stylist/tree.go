package stylist

import (
	"fmt"

	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/tree"
	"github.com/xlab/treeprint"
)

// StyleNode is one node of a StyleTree: it mirrors one element of the
// caller's element tree (spec.md §3 "StyleTree mirrors the element
// tree"), carrying the element's ComputedValues and, when a rule's
// selector named one, its pseudo-element computed values. Grounded on
// the teacher's styledtree.StyNode, which wraps a generic tree.Node[T]
// payload pointing back to itself and carries a *style.PropertyMap; here
// the payload carries an ElementId plus *ComputedValues instead of an
// *html.Node plus teacher-style property groups.
type StyleNode struct {
	elem         element.ElementId
	computed     *ComputedValues
	pseudoBefore *ComputedValues
	pseudoAfter  *ComputedValues
}

// newStyleNode allocates a tree.Node[*StyleNode] whose payload is a new
// StyleNode for elem.
func newStyleNode(elem element.ElementId) *tree.Node[*StyleNode] {
	sn := &StyleNode{elem: elem}
	return tree.NewNode[*StyleNode](sn)
}

// Element returns the ElementId this node mirrors.
func (sn *StyleNode) Element() element.ElementId { return sn.elem }

// Computed returns the element's own ComputedValues.
func (sn *StyleNode) Computed() *ComputedValues { return sn.computed }

// StyleTree is the output of a compute pass (spec.md §4.4/§4.5): a tree of
// StyleNode, rooted at the root element, walkable parent→children.
type StyleTree struct {
	root *tree.Node[*StyleNode]
	byID map[element.ElementId]*tree.Node[*StyleNode]
}

// Root returns the root StyleNode.
func (st *StyleTree) Root() *StyleNode {
	if st == nil || st.root == nil {
		return nil
	}
	return st.root.Payload
}

// NodeFor returns the StyleNode mirroring elem, if it was part of the
// tree built by the most recent compute_styles call.
func (st *StyleTree) NodeFor(elem element.ElementId) (*StyleNode, bool) {
	n, ok := st.byID[elem]
	if !ok {
		return nil, false
	}
	return n.Payload, true
}

// Dump renders the tree as an ASCII diagram via xlab/treeprint, showing
// each node's element tag/id — a
// debugging convenience beyond spec.md's opaque query surface
// (SPEC_FULL.md "Stylist + Engine, expanded").
func (st *StyleTree) Dump(elems element.Tree) string {
	if st == nil || st.root == nil {
		return "(empty style tree)"
	}
	out := treeprint.New()
	dumpNode(out, st.root, elems)
	return out.String()
}

func dumpNode(branch treeprint.Tree, n *tree.Node[*StyleNode], elems element.Tree) {
	sn := n.Payload
	tag := elems.Tag(sn.elem)
	label := tag
	if id, ok := elems.ID(sn.elem); ok && id != "" {
		label = fmt.Sprintf("%s#%s", tag, id)
	}
	child := branch.AddBranch(label)
	for _, c := range n.Children(true) {
		dumpNode(child, c, elems)
	}
}
