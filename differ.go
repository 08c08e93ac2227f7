package pactcore

// Compare recursively compares actual against expected at path, dispatching
// on expected's kind, per spec.md §4.5. rules supplies matchingRules
// overrides; ignoreExtraKeys controls whether actual-only object keys are
// reported (true for headers in both request and response kinds, and for
// body in responses).
func Compare(actual, expected Value, path Path, rules *RuleTable, ignoreExtraKeys bool) *DiffTree {
	switch expected.Kind() {
	case KindObject:
		return compareObject(actual, expected, path, rules, ignoreExtraKeys)
	case KindArray:
		return compareArray(actual, expected, path, rules, ignoreExtraKeys)
	default:
		return compareScalar(actual, expected, path, rules)
	}
}

func compareObject(actual, expected Value, path Path, rules *RuleTable, ignoreExtraKeys bool) *DiffTree {
	if !actual.IsObject() {
		return leafMismatch(Mismatch{Kind: TypeNotMatched, Path: path, Actual: actual, Expected: expected})
	}

	expectedObj, _ := expected.AsObject()
	actualObj, _ := actual.AsObject()

	children := make(map[string]*DiffTree, len(expectedObj))
	for k, ev := range expectedObj {
		childPath := path.Child(k)
		av, ok := actualObj[k]
		if !ok {
			children[k] = leafMismatch(Mismatch{Kind: KeyNotFound, Path: childPath, Expected: ev})
			continue
		}
		children[k] = Compare(av, ev, childPath, rules, ignoreExtraKeys)
	}

	if !ignoreExtraKeys {
		for k, av := range actualObj {
			if _, ok := expectedObj[k]; !ok {
				children[k] = leafMismatch(Mismatch{Kind: UnexpectedKey, Path: path.Child(k), Actual: av})
			}
		}
	}

	return &DiffTree{Kind: DiffObject, Object: children}
}

func compareArray(actual, expected Value, path Path, rules *RuleTable, ignoreExtraKeys bool) *DiffTree {
	if !actual.IsArray() {
		return leafMismatch(Mismatch{Kind: TypeNotMatched, Path: path, Actual: actual, Expected: expected})
	}

	expectedArr, _ := expected.AsArray()
	actualArr, _ := actual.AsArray()

	// An array-level rule short-circuits the element walk if it produces a
	// mismatch; if it matches (or no rule applies), fall through to the
	// per-index walk. This is the short-circuit-only behavior spec.md's
	// Design Notes settle on, not the short-circuit-then-walk alternative.
	if vm, ok := rules.Best(path); ok {
		if m := vm.Diff(path, actual, expected); m != nil {
			return leafMismatch(*m)
		}
	}

	n := max(len(actualArr), len(expectedArr))
	children := make([]*DiffTree, n)
	for i := 0; i < n; i++ {
		childPath := path.Index(i)

		av, haveAv := Value{}, false
		if i < len(actualArr) {
			av, haveAv = actualArr[i], true
		}

		ev, haveEv := Value{}, false
		if i < len(expectedArr) {
			ev, haveEv = expectedArr[i], true
		} else if len(expectedArr) > 0 {
			// Type-pattern expansion: an expected array shorter than actual,
			// with a rule covering this index, is expanded by repeating its
			// first element as the pattern for the remaining indices.
			if _, ok := rules.Best(childPath); ok {
				ev, haveEv = expectedArr[0], true
			}
		}

		switch {
		case haveAv && haveEv:
			children[i] = Compare(av, ev, childPath, rules, ignoreExtraKeys)
		case !haveAv && haveEv:
			children[i] = leafMismatch(Mismatch{Kind: IndexNotFound, Path: childPath, Expected: ev})
		case haveAv && !haveEv:
			children[i] = leafMismatch(Mismatch{Kind: UnexpectedIndex, Path: childPath, Actual: av})
		}
	}

	return &DiffTree{Kind: DiffArray, Array: children}
}

func compareScalar(actual, expected Value, path Path, rules *RuleTable) *DiffTree {
	vm, ok := rules.Best(path)
	if !ok {
		vm = Equality{}
	}
	if m := vm.Diff(path, actual, expected); m != nil {
		return leafMismatch(*m)
	}
	return leafOK(actual)
}
