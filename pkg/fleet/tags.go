package fleet

import (
	"regexp"
	"sort"

	"csvfleet/pkg/dataset"
)

var (
	// rootPattern captures what follows the last "<digit><digit>." of a name
	rootPattern = regexp.MustCompile(`^.*\d\d\.(.*)`)
	// prefixPattern captures what precedes the last "<digit><digit>." of a name
	prefixPattern = regexp.MustCompile(`^(.*)\d\d\..*`)
)

// TagRoots returns the distinct suffixes of the names that follow the tag
// scheme, sorted. "GT01.power" has root "power".
func TagRoots(names []string) []string {
	return distinctMatches(names, rootPattern)
}

// TagPrefixes returns the distinct prefixes of the names that follow the tag
// scheme, sorted. "GT01.power" has prefix "GT".
func TagPrefixes(names []string) []string {
	return distinctMatches(names, prefixPattern)
}

// FrameTagRoots is TagRoots over the columns of frame
func FrameTagRoots(frame *dataset.Frame) []string {
	return TagRoots(frame.Columns())
}

// FrameTagPrefixes is TagPrefixes over the columns of frame
func FrameTagPrefixes(frame *dataset.Frame) []string {
	return TagPrefixes(frame.Columns())
}

func distinctMatches(names []string, re *regexp.Regexp) []string {
	seen := make(map[string]struct{})
	for _, name := range names {
		if m := re.FindStringSubmatch(name); m != nil {
			seen[m[1]] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
