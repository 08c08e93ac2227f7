package pactcore

import "fmt"

// Rebuild walks a DiffTree, collapsing it back into an actual/expected pair
// suitable for rendering, and the flat list of Mismatches found along the
// way, per spec.md §4.6.
func Rebuild(tree *DiffTree) (actual, expected Value, errs []Mismatch) {
	a, e := rebuild(tree, &errs)
	return a, e, errs
}

func rebuild(tree *DiffTree, errs *[]Mismatch) (actual, expected Value) {
	switch tree.Kind {
	case DiffObject:
		actualObj := make(map[string]Value, len(tree.Object))
		expectedObj := make(map[string]Value, len(tree.Object))
		for k, sub := range tree.Object {
			a, e := rebuild(sub, errs)
			actualObj[k] = a
			expectedObj[k] = e
		}
		return Object(actualObj), Object(expectedObj)

	case DiffArray:
		actualArr := make([]Value, len(tree.Array))
		expectedArr := make([]Value, len(tree.Array))
		for i, sub := range tree.Array {
			a, e := rebuild(sub, errs)
			actualArr[i] = a
			expectedArr[i] = e
		}
		return Array(actualArr), Array(expectedArr)

	default: // DiffLeaf
		if tree.Mismatch == nil {
			return tree.Value, tree.Value
		}
		m := *tree.Mismatch
		*errs = append(*errs, m)
		return renderMismatch(m)
	}
}

// renderMismatch splits one Mismatch into its actual/expected display
// values, substituting the mismatch's class name for sentinel variants that
// carry no real value on one side.
func renderMismatch(m Mismatch) (actual, expected Value) {
	switch m.Kind {
	case KeyNotFound:
		return String(m.Kind.String()), m.Expected
	case UnexpectedKey:
		return m.Actual, String(m.Kind.String())
	case IndexNotFound:
		return String(m.Kind.String()), m.Expected
	case UnexpectedIndex:
		return m.Actual, String(m.Kind.String())
	case NumberNotMatched:
		return String(numberNotMatchedRender(m)), m.Expected
	case RegexNotMatched:
		return m.Actual, String(fmt.Sprintf("RegexNotMatched(%s)", m.Pattern))
	default: // Difference, TypeNotMatched
		return m.Actual, m.Expected
	}
}

func numberNotMatchedRender(m Mismatch) string {
	min, max := "", ""
	if m.Min != nil {
		min = fmt.Sprintf("%d", *m.Min)
	}
	if m.Max != nil {
		max = fmt.Sprintf("%d", *m.Max)
	}
	return fmt.Sprintf("NumberNotMatched(min=%s, max=%s, %v)", min, max, m.Actual.ToAny())
}
