package engine

import (
	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/stylist"
	"github.com/npillmayer/cssengine/types"
)

// Engine is the public facade over the cascade engine (spec.md §4.5). One
// Engine instance owns one Stylist (stylesheets, RuleIndex, inline
// styles), one element tree contract, one Viewport, and the StyleTree
// produced by its most recent compute pass.
type Engine struct {
	sl       *stylist.Stylist
	elems    element.Tree
	viewport stylist.Viewport
	root     element.ElementId

	tree  *stylist.StyleTree
	dirty bool
}

// New constructs an Engine over elems (the caller-owned element tree
// contract, spec.md §6), rooted at root, with the given viewport.
func New(elems element.Tree, root element.ElementId, viewport stylist.Viewport) *Engine {
	return &Engine{
		sl:       stylist.New(),
		elems:    elems,
		viewport: viewport,
		root:     root,
		dirty:    true,
	}
}

// ParseStylesheet loads a stylesheet (spec.md §4.5 parse_stylesheet).
func (e *Engine) ParseStylesheet(text string, origin types.Origin) (stylist.StyleSheetId, []types.Diagnostic, error) {
	id, diags, err := e.sl.AddStylesheet(text, origin)
	if err != nil {
		return 0, diags, err
	}
	e.dirty = true
	return id, diags, nil
}

// UpdateStylesheet re-parses a loaded stylesheet and invalidates
// dependents (spec.md §4.5 update_stylesheet).
func (e *Engine) UpdateStylesheet(id stylist.StyleSheetId, text string) ([]types.Diagnostic, error) {
	diags, err := e.sl.UpdateStylesheet(id, text)
	if err != nil {
		return diags, err
	}
	return diags, e.Invalidate(Invalidation{Kind: StylesheetUpdated})
}

// RemoveStylesheet unloads a stylesheet (spec.md §4.5
// invalidate(StylesheetRemoved)).
func (e *Engine) RemoveStylesheet(id stylist.StyleSheetId) error {
	e.sl.RemoveStylesheet(id)
	return e.Invalidate(Invalidation{Kind: StylesheetRemoved})
}

// SetInlineStyle sets elem's inline style declarations (spec.md §4.5
// set_inline_style).
func (e *Engine) SetInlineStyle(elem element.ElementId, text string) ([]types.Diagnostic, error) {
	diags, err := e.sl.SetInlineStyle(elem, text)
	if err != nil {
		return diags, err
	}
	return diags, e.Invalidate(Invalidation{Kind: AttributeChange, Element: elem})
}

// ComputeStyles recomputes (if dirty) and returns the full StyleTree for
// the engine's root (spec.md §4.5 compute_styles).
func (e *Engine) ComputeStyles(root element.ElementId) (*stylist.StyleTree, error) {
	if !e.dirty && e.tree != nil && root == e.root {
		return e.tree, nil
	}
	st, err := e.sl.Compute(root, e.elems, e.viewport)
	if err != nil {
		return nil, err
	}
	e.root = root
	e.tree = st
	e.dirty = false
	return st, nil
}

// GetComputedStyle returns elem's ComputedValues, recomputing the whole
// tree first if anything is dirty (spec.md §4.5 get_computed_style).
func (e *Engine) GetComputedStyle(elem element.ElementId) (*stylist.ComputedValues, error) {
	if e.dirty || e.tree == nil {
		if _, err := e.ComputeStyles(e.root); err != nil {
			return nil, err
		}
	}
	node, ok := e.tree.NodeFor(elem)
	if !ok {
		return nil, types.NewError(types.ErrProgrammer, "get_computed_style: element not part of the last compute_styles tree")
	}
	return node.Computed(), nil
}

// Dump renders the most recently computed StyleTree as an ASCII tree
// (SPEC_FULL.md additive debugging convenience via xlab/treeprint).
func (e *Engine) Dump() string {
	if e.tree == nil {
		return "(no computed style tree yet)"
	}
	return e.tree.Dump(e.elems)
}
