package fleet

import "strings"

// Predicate reports whether a tag name is wanted
type Predicate func(name string) bool

// Contains matches names holding sub. Unless caseSensitive, case is ignored.
func Contains(sub string, caseSensitive bool) Predicate {
	if caseSensitive {
		return func(name string) bool {
			return strings.Contains(name, sub)
		}
	}
	lower := strings.ToLower(sub)
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), lower)
	}
}

// Not negates p
func Not(p Predicate) Predicate {
	return func(name string) bool {
		return !p(name)
	}
}

// All matches names accepted by every predicate. With no predicates it matches everything.
func All(preds ...Predicate) Predicate {
	return func(name string) bool {
		for _, p := range preds {
			if !p(name) {
				return false
			}
		}
		return true
	}
}

// Filter returns the names accepted by p, in their original order. The result
// is never nil.
func Filter(names []string, p Predicate) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if p(name) {
			out = append(out, name)
		}
	}
	return out
}
