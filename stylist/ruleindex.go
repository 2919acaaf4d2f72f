package stylist

import (
	"github.com/npillmayer/cssengine/parser"
)

// compiledRule is one (selector, declaration-block) pair extracted from a
// loaded stylesheet, plus everything the cascade needs to rank it: its
// sheet, the declarations of the owning rule, and its position within the
// sheet for source-order tie-breaking (spec.md §4.3 point 4).
type compiledRule struct {
	sheet       *styleSheet
	selector    *parser.Selector
	decls       []*parser.Declaration
	ruleOrder   int // index of the owning rule within its stylesheet
}

// RuleIndex buckets compiled rules by their selector's key component (the
// rightmost compound's ID, classes, or tag) so that matching an element
// only has to consider rules that could possibly match it, instead of
// scanning every rule in every stylesheet (spec.md §4.4: "the standard
// right-to-left optimisation"). This bucketing has no direct analogue in
// the teacher, which scans linearly (dom/style/cssom/cssom.go
// FilterMatchesFor); the bucket maps themselves follow the teacher's
// naming style for internal lookup tables.
type RuleIndex struct {
	byID        map[string][]*compiledRule
	byClass     map[string][]*compiledRule
	byTag       map[string][]*compiledRule
	universal   []*compiledRule
}

func newRuleIndex() *RuleIndex {
	return &RuleIndex{
		byID:    make(map[string][]*compiledRule),
		byClass: make(map[string][]*compiledRule),
		byTag:   make(map[string][]*compiledRule),
	}
}

// add inserts every rule of sheet into the index, one compiledRule per
// (selector, declarations) pair — a rule with a selector list
// ("h1, h2 { ... }") contributes one compiledRule per selector, all
// sharing the same declarations and ruleOrder.
func (idx *RuleIndex) add(sheet *styleSheet) {
	for ruleOrder, rule := range sheet.parsed.Rules {
		for _, sel := range rule.Selectors {
			cr := &compiledRule{sheet: sheet, selector: sel, decls: rule.Declarations, ruleOrder: ruleOrder}
			idx.bucket(cr)
		}
	}
}

// remove drops every compiledRule belonging to sheet from every bucket.
func (idx *RuleIndex) remove(sheet *styleSheet) {
	filter := func(rules []*compiledRule) []*compiledRule {
		out := rules[:0]
		for _, r := range rules {
			if r.sheet != sheet {
				out = append(out, r)
			}
		}
		return out
	}
	for k, v := range idx.byID {
		idx.byID[k] = filter(v)
	}
	for k, v := range idx.byClass {
		idx.byClass[k] = filter(v)
	}
	for k, v := range idx.byTag {
		idx.byTag[k] = filter(v)
	}
	idx.universal = filter(idx.universal)
}

// bucket files cr under the key components of its selector's rightmost
// compound: its ID and each of its classes, if it has any; otherwise its
// type; otherwise the universal bucket. A compound may legitimately land in
// more than one bucket's candidate list (e.g. "#x.warn" is keyed by both
// id "x" and class "warn"); matchesCompound re-checks the whole compound
// so duplicates only cost a redundant match attempt, never a wrong one.
func (idx *RuleIndex) bucket(cr *compiledRule) {
	if len(cr.selector.Compounds) == 0 {
		idx.universal = append(idx.universal, cr)
		return
	}
	last := cr.selector.Compounds[len(cr.selector.Compounds)-1]
	filed := false
	for _, s := range last.Simples {
		switch s.Kind {
		case parser.SimpleID:
			idx.byID[s.Name] = append(idx.byID[s.Name], cr)
			filed = true
		case parser.SimpleClass:
			idx.byClass[s.Name] = append(idx.byClass[s.Name], cr)
			filed = true
		}
	}
	if !filed && last.Type != "" {
		idx.byTag[last.Type] = append(idx.byTag[last.Type], cr)
		filed = true
	}
	if !filed {
		idx.universal = append(idx.universal, cr)
	}
}

// candidates collects every rule that could match an element: its
// id-bucket, each of its class-buckets, its tag-bucket, and the
// universal bucket. Duplicates are possible when a rule was filed under
// several buckets; callers deduplicate implicitly because matching the
// same rule twice produces the same ApplicableRule twice, which the
// cascade resolves identically regardless of duplication.
func (idx *RuleIndex) candidates(tag, id string, classes []string) []*compiledRule {
	var out []*compiledRule
	if id != "" {
		out = append(out, idx.byID[id]...)
	}
	for _, c := range classes {
		out = append(out, idx.byClass[c]...)
	}
	out = append(out, idx.byTag[tag]...)
	out = append(out, idx.universal...)
	return out
}
