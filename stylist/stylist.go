package stylist

import (
	"github.com/npillmayer/cssengine/cascade"
	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/matcher"
	"github.com/npillmayer/cssengine/parser"
	"github.com/npillmayer/cssengine/tree"
	"github.com/npillmayer/cssengine/types"
)

// Resource limits from spec.md §6.
const (
	maxStylesheetBytes = 10 * 1024 * 1024
	maxRulesPerSheet    = 100000
	maxSelectorsPerRule = 1000
	maxSelectorDepth    = 64
)

// inlineDecl is the parsed form of one element's style="..." attribute.
type inlineDecl struct {
	decls []*parser.Declaration
}

// Stylist owns every loaded stylesheet, the RuleIndex built over them,
// and the inline declarations attached to individual elements (spec.md
// §4.4). It has no notion of a particular element tree instance; Compute
// is called fresh against whatever element.Tree the caller supplies.
type Stylist struct {
	nextSheetID    StyleSheetId
	nextSheetOrder int
	sheets         map[StyleSheetId]*styleSheet
	index          *RuleIndex
	inline         map[element.ElementId]*inlineDecl
}

// New returns a Stylist pre-loaded with the built-in user-agent
// stylesheet (SPEC_FULL.md "Supplemented features").
func New() *Stylist {
	sl := &Stylist{
		sheets: make(map[StyleSheetId]*styleSheet),
		index:  newRuleIndex(),
		inline: make(map[element.ElementId]*inlineDecl),
	}
	if _, _, err := sl.AddStylesheet(userAgentCSS, types.UserAgent); err != nil {
		// The built-in stylesheet is a fixed, trusted literal: a failure
		// here is a programmer error in userAgentCSS itself.
		panic(err)
	}
	return sl
}

// AddStylesheet parses source, registers it under origin, and returns its
// id plus any recovered diagnostics (spec.md §4.5 parse_stylesheet).
func (sl *Stylist) AddStylesheet(source string, origin types.Origin) (StyleSheetId, []types.Diagnostic, error) {
	if len(source) > maxStylesheetBytes {
		return 0, nil, types.NewError(types.ErrResourceLimitExceeded, "stylesheet exceeds 10MiB limit")
	}
	parsed := parser.Parse(source)
	if err := validateLimits(parsed); err != nil {
		return 0, nil, err
	}
	id := sl.nextSheetID
	sl.nextSheetID++
	sheet := &styleSheet{id: id, origin: origin, sheetOrder: sl.nextSheetOrder, source: source, parsed: parsed}
	sl.nextSheetOrder++
	sl.sheets[id] = sheet
	sl.index.add(sheet)
	tracer().Debugf("loaded stylesheet %d (origin=%s, %d rules, %d diagnostics)", id, origin, len(parsed.Rules), len(parsed.Diagnostics))
	return id, parsed.Diagnostics, nil
}

// RemoveStylesheet unloads a stylesheet and drops its rules from the
// index (spec.md §4.5 invalidate(StylesheetRemoved)).
func (sl *Stylist) RemoveStylesheet(id StyleSheetId) {
	sheet, ok := sl.sheets[id]
	if !ok {
		return
	}
	sl.index.remove(sheet)
	delete(sl.sheets, id)
}

// UpdateStylesheet re-parses an existing stylesheet in place, keeping its
// id, origin, and source-order position (spec.md §4.5 update_stylesheet).
func (sl *Stylist) UpdateStylesheet(id StyleSheetId, source string) ([]types.Diagnostic, error) {
	sheet, ok := sl.sheets[id]
	if !ok {
		return nil, types.NewError(types.ErrProgrammer, "update_stylesheet: unknown stylesheet id")
	}
	if len(source) > maxStylesheetBytes {
		return nil, types.NewError(types.ErrResourceLimitExceeded, "stylesheet exceeds 10MiB limit")
	}
	parsed := parser.Parse(source)
	if err := validateLimits(parsed); err != nil {
		return nil, err
	}
	sl.index.remove(sheet)
	sheet.source = source
	sheet.parsed = parsed
	sl.index.add(sheet)
	return parsed.Diagnostics, nil
}

// SetInlineStyle parses elem's style="..." declaration list (spec.md §4.5
// set_inline_style).
func (sl *Stylist) SetInlineStyle(elem element.ElementId, source string) ([]types.Diagnostic, error) {
	if len(source) > maxStylesheetBytes {
		return nil, types.NewError(types.ErrResourceLimitExceeded, "inline style exceeds size limit")
	}
	decls, diags := parser.ParseDeclarations(source)
	sl.inline[elem] = &inlineDecl{decls: decls}
	return diags, nil
}

func validateLimits(sheet *parser.Stylesheet) error {
	if len(sheet.Rules) > maxRulesPerSheet {
		return types.NewError(types.ErrResourceLimitExceeded, "stylesheet exceeds 100000 rules")
	}
	for _, rule := range sheet.Rules {
		if len(rule.Selectors) > maxSelectorsPerRule {
			return types.NewError(types.ErrResourceLimitExceeded, "rule exceeds 1000 selectors")
		}
		for _, sel := range rule.Selectors {
			if len(sel.Combinators) > maxSelectorDepth {
				return types.NewError(types.ErrResourceLimitExceeded, "selector exceeds depth limit")
			}
		}
	}
	return nil
}

// Compute builds a full StyleTree for the subtree rooted at root (spec.md
// §4.5 compute_styles). Structural nodes are built first by walking
// elems.Children; a second pass then runs the per-element compute
// pipeline top-down using the generic tree.Walker, mirroring the
// teacher's two-phase cssom.CSSOM.Style (create nodes, then style them)
// and giving this engine the same opportunity for a parallel compute
// pass (spec.md §5) that the teacher's pipeline-based Walker provides.
func (sl *Stylist) Compute(root element.ElementId, elems element.Tree, vp Viewport) (*StyleTree, error) {
	rootNode := newStyleNode(root)
	byID := map[element.ElementId]*tree.Node[*StyleNode]{root: rootNode}
	buildStructure(rootNode, elems, byID)

	walker := tree.NewWalker[*StyleNode](rootNode)
	action := func(n *tree.Node[*StyleNode], parent *tree.Node[*StyleNode], pos int) (*tree.Node[*StyleNode], error) {
		sl.computeNode(n, parent, elems, vp)
		return n, nil
	}
	future := walker.TopDown(action).Promise()
	if _, err := future(); err != nil {
		return nil, types.NewError(types.ErrProgrammer, err.Error())
	}
	return &StyleTree{root: rootNode, byID: byID}, nil
}

func buildStructure(n *tree.Node[*StyleNode], elems element.Tree, byID map[element.ElementId]*tree.Node[*StyleNode]) {
	parentElem := n.Payload.elem
	for _, childID := range elems.Children(parentElem) {
		child := newStyleNode(childID)
		n.AddChild(child)
		byID[childID] = child
		buildStructure(child, elems, byID)
	}
}

func (sl *Stylist) computeNode(n, parent *tree.Node[*StyleNode], elems element.Tree, vp Viewport) {
	sn := n.Payload
	var parentComputed *ComputedValues
	if parent != nil {
		parentComputed = parent.Payload.computed
	}
	applicable, beforeApplicable, afterApplicable := sl.collectApplicable(sn.elem, elems)
	cv := sl.cascadeAndResolve(applicable, parentComputed, vp)
	sn.computed = cv
	if len(beforeApplicable) > 0 {
		sn.pseudoBefore = sl.cascadeAndResolve(beforeApplicable, cv, vp)
	}
	if len(afterApplicable) > 0 {
		sn.pseudoAfter = sl.cascadeAndResolve(afterApplicable, cv, vp)
	}
}

// collectApplicable runs steps 1-3 of spec.md §4.4 for one element: index
// lookup, matching, and folding in inline declarations.
func (sl *Stylist) collectApplicable(elemID element.ElementId, elems element.Tree) (own, before, after []cascade.ApplicableRule) {
	tag := elems.Tag(elemID)
	id, _ := elems.ID(elemID)
	classes := elems.Classes(elemID)
	for _, cr := range sl.index.candidates(tag, id, classes) {
		if !matcher.Matches(cr.selector, elemID, elems) {
			continue
		}
		rules := applicableFromRule(cr)
		switch cr.selector.PseudoElement {
		case "before":
			before = append(before, rules...)
		case "after":
			after = append(after, rules...)
		default:
			own = append(own, rules...)
		}
	}
	if inl, ok := sl.inline[elemID]; ok {
		own = append(own, applicableFromInline(inl)...)
	}
	return own, before, after
}

// sourceOrderOf packs (sheetOrder, ruleOrder, declIndex) into a single
// comparable int, preserving "stylesheet order, then rule index within
// sheet, then declaration index within rule" (spec.md §4.3 point 4).
func sourceOrderOf(sheetOrder, ruleOrder, declIndex int) int {
	return sheetOrder*1_000_000_000 + ruleOrder*1000 + declIndex
}

// inlineSourceOrder is always greater than any sourceOrderOf(...) produced
// from a loaded stylesheet's bounded (sheetOrder, ruleOrder, declIndex)
// ranges, so inline declarations are ordered after all author
// stylesheets. Specificity itself is left at zero for inline, since an
// inline declaration carries no selector to derive one from; a normal
// inline declaration still outranks every normal author rule because
// types.CascadeRank places Inline above Author.
func inlineSourceOrder(declIndex int) int {
	return 1<<62 + declIndex
}

func applicableFromRule(cr *compiledRule) []cascade.ApplicableRule {
	var out []cascade.ApplicableRule
	for declIndex, d := range cr.decls {
		order := sourceOrderOf(cr.sheet.sheetOrder, cr.ruleOrder, declIndex)
		if kvs, ok := expandShorthand(d); ok {
			for _, kv := range kvs {
				out = append(out, cascade.ApplicableRule{
					Property: kv.Property, Value: kv.Value,
					Specificity: cr.selector.Specificity, Origin: cr.sheet.origin,
					Important: d.Important, SourceOrder: order,
				})
			}
			continue
		}
		if d.CustomName != "" {
			out = append(out, cascade.ApplicableRule{
				CustomName: d.CustomName, Value: d.Value,
				Specificity: cr.selector.Specificity, Origin: cr.sheet.origin,
				Important: d.Important, SourceOrder: order,
			})
			continue
		}
		if d.PropertyId == types.PropUnknown {
			continue
		}
		out = append(out, cascade.ApplicableRule{
			Property: d.PropertyId, Value: d.Value,
			Specificity: cr.selector.Specificity, Origin: cr.sheet.origin,
			Important: d.Important, SourceOrder: order,
		})
	}
	return out
}

func applicableFromInline(inl *inlineDecl) []cascade.ApplicableRule {
	var out []cascade.ApplicableRule
	for declIndex, d := range inl.decls {
		order := inlineSourceOrder(declIndex)
		if kvs, ok := expandShorthand(d); ok {
			for _, kv := range kvs {
				out = append(out, cascade.ApplicableRule{
					Property: kv.Property, Value: kv.Value,
					Origin: types.Inline, Important: d.Important, SourceOrder: order,
				})
			}
			continue
		}
		if d.CustomName != "" {
			out = append(out, cascade.ApplicableRule{
				CustomName: d.CustomName, Value: d.Value,
				Origin: types.Inline, Important: d.Important, SourceOrder: order,
			})
			continue
		}
		if d.PropertyId == types.PropUnknown {
			continue
		}
		out = append(out, cascade.ApplicableRule{
			Property: d.PropertyId, Value: d.Value,
			Origin: types.Inline, Important: d.Important, SourceOrder: order,
		})
	}
	return out
}

// cascadeAndResolve implements spec.md §4.4 steps 4-9 for one set of
// applicable declarations, given the ComputedValues to inherit from
// (nil at the root).
func (sl *Stylist) cascadeAndResolve(applicable []cascade.ApplicableRule, parentComputed *ComputedValues, vp Viewport) *ComputedValues {
	props, custom := cascade.Resolve(applicable)

	// Start from a clone of the parent's ComputedValues (spec.md §4.4
	// step 5): this folds the parent's custom-property environment
	// forward for free. resolveProperty resets any non-inherited
	// property with no applicable rule back to its initial value below,
	// since clone() also carries forward the parent's own (not
	// necessarily initial) values for those slots.
	var cv *ComputedValues
	if parentComputed != nil {
		cv = parentComputed.clone()
	} else {
		cv = newComputedValues()
	}
	for name, rule := range custom {
		cv.custom[name] = rule.Value
	}

	parentFontSizePx := vp.RootFontSizePx
	if parentComputed != nil {
		if px, ok := pixelsOf(parentComputed.Get(types.PropFontSize)); ok {
			parentFontSizePx = px
		}
	}

	// font-size resolves against the *parent's* font-size (spec.md §4.4
	// step 8's parenthetical is the only exception to "em multiplies by
	// current font-size"); every other property's em/rem must multiply
	// against this element's own resolved font-size. So font-size is
	// resolved first, under a ctx still carrying the parent's size, and
	// every other property is then resolved under a ctx rebuilt from the
	// result.
	fontSizeCtx := types.ResolutionContext{
		RootFontSize:    vp.RootFontSizePx,
		CurrentFontSize: parentFontSizePx,
		ViewportWidth:   vp.Width,
		ViewportHeight:  vp.Height,
	}
	sl.resolveProperty(types.PropFontSize, props, cv, parentComputed, fontSizeCtx)

	ownFontSizePx := parentFontSizePx
	if px, ok := pixelsOf(cv.Get(types.PropFontSize)); ok {
		ownFontSizePx = px
	}
	ctx := fontSizeCtx
	ctx.CurrentFontSize = ownFontSizePx

	for i := 0; i < types.NumProperties; i++ {
		p := types.PropertyId(i)
		if p == types.PropFontSize {
			continue
		}
		sl.resolveProperty(p, props, cv, parentComputed, ctx)
	}
	return cv
}

// resolveProperty resolves one property's cascaded value (spec.md §4.4
// steps 5-9: explicit inherit/initial/unset keywords, inheritance
// fall-through when no rule applies, var()/calc() and unit resolution
// otherwise) into cv.
func (sl *Stylist) resolveProperty(p types.PropertyId, props map[types.PropertyId]cascade.ApplicableRule, cv *ComputedValues, parentComputed *ComputedValues, ctx types.ResolutionContext) {
	rule, hasRule := props[p]
	if !hasRule {
		switch {
		case parentComputed != nil && types.IsInherited(p):
			cv.set(p, parentComputed.Get(p), parentComputed.IsViewportDependent(p))
		case parentComputed != nil:
			// cv started as a clone of parentComputed; a non-inherited
			// property with no rule must reset to its initial value
			// rather than carry the parent's own value forward.
			cv.set(p, initialValueOf(p), false)
		}
		return
	}
	switch rule.Value.Kind {
	case types.ValInherit:
		if parentComputed != nil {
			cv.set(p, parentComputed.Get(p), parentComputed.IsViewportDependent(p))
		}
	case types.ValInitial:
		cv.set(p, initialValueOf(p), false)
	case types.ValUnset:
		if types.IsInherited(p) && parentComputed != nil {
			cv.set(p, parentComputed.Get(p), parentComputed.IsViewportDependent(p))
		} else {
			cv.set(p, initialValueOf(p), false)
		}
	default:
		resolved := resolveValue(p, rule.Value, cv, ctx, map[string]bool{})
		if resolved.Kind == types.ValLength && resolved.Length.Unit == types.UnitPercent && !types.IsLayoutResolvedLater(p) {
			// p can never receive a percentage basis (no layout stage will
			// ever resolve it for this property) — per spec.md §3
			// invariant v, retention is reserved for properties flagged
			// IsLayoutResolvedLater; anything else falls back to initial.
			resolved = initialValueOf(p)
		}
		cv.set(p, resolved, types.CanCarryViewportUnit(p) && isViewportUnit(rule.Value))
	}
}

// isViewportUnit reports whether v is (or is a list containing) a
// vw/vh length literal, used to flag a computed value as
// viewport-dependent (spec.md §4.4 step 9).
func isViewportUnit(v types.PropertyValue) bool {
	switch v.Kind {
	case types.ValLength:
		return v.Length.Unit == types.UnitVw || v.Length.Unit == types.UnitVh
	case types.ValList:
		for _, item := range v.List {
			if isViewportUnit(item) {
				return true
			}
		}
	}
	return false
}

func pixelsOf(v types.PropertyValue) (float32, bool) {
	if v.Kind != types.ValLength {
		return 0, false
	}
	return v.Length.ResolvePixels(types.ResolutionContext{})
}
