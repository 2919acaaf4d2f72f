package stylist

import "github.com/npillmayer/cssengine/types"

// resolveValue fully resolves v for property p against env (the
// element's custom-property environment, own declarations layered over
// inherited ones) and ctx (for length/calc resolution), implementing
// spec.md §4.4 steps 6-8. visiting tracks the chain of custom-property
// names currently being expanded so that a cycle is detected and
// resolved to the property's initial value (step 6, last sentence)
// instead of recursing forever.
func resolveValue(p types.PropertyId, v types.PropertyValue, env *ComputedValues, ctx types.ResolutionContext, visiting map[string]bool) types.PropertyValue {
	switch v.Kind {
	case types.ValFunction:
		if v.Function == nil {
			return types.Keyword("")
		}
		switch v.Function.Name {
		case "var":
			return resolveVar(p, v.Function.Var, env, ctx, visiting)
		case "calc":
			if resolved, ok := evalCalc(v.Function.Calc, env, ctx, visiting); ok {
				return resolved
			}
			// No percentage basis, or otherwise not evaluable: retain
			// the expression (spec.md §4.4 step 7, last sentence).
			return v
		default:
			return v
		}
	case types.ValList:
		out := make([]types.PropertyValue, len(v.List))
		for i, item := range v.List {
			out[i] = resolveValue(p, item, env, ctx, visiting)
		}
		return types.PropertyValue{Kind: types.ValList, List: out}
	case types.ValLength:
		if px, ok := v.Length.ResolvePixels(ctx); ok {
			return types.LengthValue(types.Px(px))
		}
		return v // invariant v: retain unresolved percentage
	default:
		return v
	}
}

// resolveVar looks up ref.Name in env (spec.md §4.4 step 6: "search own
// declarations then ancestors" — env already folds that chain, since a
// child's ComputedValues.custom starts as a copy of its parent's). A
// cycle (ref.Name already being expanded higher up the same resolution)
// or a missing name with no fallback resolves to p's initial value.
func resolveVar(p types.PropertyId, ref *types.VarRef, env *ComputedValues, ctx types.ResolutionContext, visiting map[string]bool) types.PropertyValue {
	if ref == nil {
		return initialValueOf(p)
	}
	if visiting[ref.Name] {
		return initialValueOf(p)
	}
	if val, ok := env.CustomProperty(ref.Name); ok {
		visiting[ref.Name] = true
		resolved := resolveValue(p, val, env, ctx, visiting)
		delete(visiting, ref.Name)
		return resolved
	}
	if ref.Fallback != nil {
		return resolveValue(p, *ref.Fallback, env, ctx, visiting)
	}
	return initialValueOf(p)
}

// evalCalc evaluates a calc() expression tree, mixing absolute lengths,
// plain numbers, and percentages (spec.md §4.4 step 7). ok is false when
// a leaf does not resolve to a number or length (such as a percentage
// with no basis available) or on division by zero, in which case the
// caller retains the whole expression.
func evalCalc(e *types.CalcExpr, env *ComputedValues, ctx types.ResolutionContext, visiting map[string]bool) (types.PropertyValue, bool) {
	v, unit, ok := evalCalcNumeric(e, env, ctx, visiting)
	if !ok {
		return types.PropertyValue{}, false
	}
	if unit == calcUnitNumber {
		return types.NumberValue(v), true
	}
	return types.LengthValue(types.Px(v)), true
}

type calcUnit int

const (
	calcUnitNumber calcUnit = iota
	calcUnitLength
)

func evalCalcNumeric(e *types.CalcExpr, env *ComputedValues, ctx types.ResolutionContext, visiting map[string]bool) (float32, calcUnit, bool) {
	if e == nil {
		return 0, calcUnitNumber, false
	}
	if e.Op == types.CalcLeaf {
		leaf := resolveValue(types.PropUnknown, e.Leaf, env, ctx, visiting)
		switch leaf.Kind {
		case types.ValNumber:
			return float32(leaf.Number), calcUnitNumber, true
		case types.ValLength:
			px, ok := leaf.Length.ResolvePixels(ctx)
			if !ok {
				return 0, calcUnitLength, false
			}
			return px, calcUnitLength, true
		}
		return 0, calcUnitNumber, false
	}
	lv, lu, ok := evalCalcNumeric(e.Left, env, ctx, visiting)
	if !ok {
		return 0, 0, false
	}
	rv, ru, ok := evalCalcNumeric(e.Right, env, ctx, visiting)
	if !ok {
		return 0, 0, false
	}
	unit := lu
	if unit == calcUnitNumber {
		unit = ru
	}
	switch e.Op {
	case types.CalcAdd:
		return lv + rv, unit, true
	case types.CalcSub:
		return lv - rv, unit, true
	case types.CalcMul:
		return lv * rv, unit, true
	case types.CalcDiv:
		if rv == 0 {
			return 0, unit, false
		}
		return lv / rv, unit, true
	}
	return 0, 0, false
}
