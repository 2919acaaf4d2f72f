package cascade

import "github.com/npillmayer/cssengine/types"

// ApplicableRule bundles everything the cascade needs to rank one
// declaration that matched an element (spec.md §3): the declaration's
// value, the winning selector's specificity, the rule's origin and
// importance, and its position in source order (used as the final
// tie-break, later wins).
type ApplicableRule struct {
	Property    types.PropertyId
	CustomName  string // set, with a leading "--", for custom properties
	Value       types.PropertyValue
	Specificity types.Specificity
	Origin      types.Origin
	Important   bool
	SourceOrder int
}

func (r ApplicableRule) rank() int {
	return types.CascadeRank(r.Origin, r.Important)
}

// higherPriority reports whether candidate outranks current per
// spec.md §4.3: importance+origin first, specificity second, source
// order last (ties broken in favour of the later rule).
func higherPriority(current, candidate ApplicableRule) bool {
	if candidate.rank() != current.rank() {
		return candidate.rank() > current.rank()
	}
	if candidate.Specificity.Less(current.Specificity) {
		return false
	}
	if current.Specificity.Less(candidate.Specificity) {
		return true
	}
	return candidate.SourceOrder >= current.SourceOrder
}

// Resolve picks, for every PropertyId and custom-property name present
// in rules, the single winning ApplicableRule (spec.md §4.3). Rules are
// consumed in any order; the result does not depend on input order
// beyond SourceOrder, which callers must have already stamped
// correctly.
func Resolve(rules []ApplicableRule) (props map[types.PropertyId]ApplicableRule, custom map[string]ApplicableRule) {
	props = make(map[types.PropertyId]ApplicableRule)
	custom = make(map[string]ApplicableRule)
	for _, r := range rules {
		if r.CustomName != "" {
			if prev, ok := custom[r.CustomName]; !ok || higherPriority(prev, r) {
				custom[r.CustomName] = r
			}
			continue
		}
		if prev, ok := props[r.Property]; !ok || higherPriority(prev, r) {
			props[r.Property] = r
		}
	}
	return props, custom
}
