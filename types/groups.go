package types

import "fmt"

// KeyValue pairs a PropertyId with its resolved value, the output shape
// of splitting a compound (shorthand) property into its longhands.
type KeyValue struct {
	Property PropertyId
	Value    PropertyValue
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// SplitCompound expands a shorthand property's 1-4 space-separated
// values into its four directional longhands, following the standard
// CSS wraparound rule (spec.md §3): 1 value applies to all four sides;
// 2 values are vertical/horizontal; 3 are top/horizontal/bottom; 4 are
// top/right/bottom/left. Grounded on the teacher's
// style.SplitCompoundProperty (dom/style/property.go), generalized from
// string values to PropertyValue and from a switch-per-shorthand to a
// prefix+suffix pair.
func SplitCompound(prefix, suffix string, values []PropertyValue) ([]KeyValue, error) {
	var order [4]int
	switch len(values) {
	case 1:
		order = [4]int{0, 0, 0, 0}
	case 2:
		order = [4]int{0, 1, 0, 1}
	case 3:
		order = [4]int{0, 1, 2, 1}
	case 4:
		order = [4]int{0, 1, 2, 3}
	default:
		return nil, fmt.Errorf("compound property %s%s: expected 1-4 values, got %d", prefix, suffix, len(values))
	}
	out := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		name := prefix + "-" + dir
		if suffix != "" {
			name = prefix + "-" + dir + "-" + suffix
		}
		id, ok := LookupProperty(name)
		if !ok {
			return nil, fmt.Errorf("compound property %s%s: unknown longhand %q", prefix, suffix, name)
		}
		out[i] = KeyValue{Property: id, Value: values[order[i]]}
	}
	return out, nil
}
