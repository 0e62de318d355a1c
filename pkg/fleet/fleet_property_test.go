//go:build property
// +build property

package fleet

import (
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSelectorProperties checks the selector against its definition
func TestSelectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	names := gen.SliceOf(gen.RegexMatch(`^[A-Za-z]{1,3}[0-9]{2}\.[a-z]{1,4}$`))
	sub := gen.RegexMatch(`^[A-Za-z0-9.]{0,2}$`)

	// Property: the result is an ordered subsequence of the input
	properties.Property("result preserves input order", prop.ForAll(
		func(names []string, include string) bool {
			got := SelectorForNames(names).Get(include)
			i := 0
			for _, name := range names {
				if i < len(got) && got[i] == name {
					i++
				}
			}
			return i == len(got)
		},
		names, sub,
	))

	// Property: every returned name satisfies every include and no exclude
	properties.Property("results satisfy the query", prop.ForAll(
		func(names []string, include, exclude string) bool {
			q := Query{Include: []string{include}, Exclude: []string{exclude}, CaseSensitive: true}
			for _, name := range SelectorForNames(names).Sub(q) {
				if !strings.Contains(name, include) {
					return false
				}
				if strings.Contains(name, exclude) {
					return false
				}
			}
			return true
		},
		names, sub, sub.SuchThat(func(s string) bool { return s != "" }),
	))

	// Property: case-insensitive results are a superset of case-sensitive ones
	properties.Property("ignoring case never loses names", prop.ForAll(
		func(names []string, include string) bool {
			sel := SelectorForNames(names)
			strict := sel.Sub(Query{Include: []string{include}, CaseSensitive: true})
			loose := make(map[string]bool)
			for _, name := range sel.Sub(Query{Include: []string{include}}) {
				loose[name] = true
			}
			for _, name := range strict {
				if !loose[name] {
					return false
				}
			}
			return true
		},
		names, sub,
	))

	properties.TestingRun(t)
}

// TestTagProperties checks root and prefix extraction on generated tag names
func TestTagProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	prefix := gen.RegexMatch(`^[A-Z]{1,4}$`)
	root := gen.RegexMatch(`^[a-z_]{1,8}$`)
	code := gen.IntRange(0, 99)

	// Property: a composed tag splits back into its parts
	properties.Property("tag round trip", prop.ForAll(
		func(p, r string, c int) bool {
			name := p + twoDigits(c) + "." + r
			roots := TagRoots([]string{name})
			prefixes := TagPrefixes([]string{name})
			return len(roots) == 1 && roots[0] == r &&
				len(prefixes) == 1 && prefixes[0] == p
		},
		prefix, root, code,
	))

	// Property: extraction output is sorted and free of duplicates
	properties.Property("roots sorted and distinct", prop.ForAll(
		func(names []string) bool {
			roots := TagRoots(append(names, names...))
			if !sort.StringsAreSorted(roots) {
				return false
			}
			for i := 1; i < len(roots); i++ {
				if roots[i] == roots[i-1] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.RegexMatch(`^[A-Z]{1,2}[0-9]{2}\.[a-z]{1,3}$`)),
	))

	properties.TestingRun(t)
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
