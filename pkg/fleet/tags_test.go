package fleet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTagRootsAndPrefixes(t *testing.T) {
	tests := []struct {
		name         string
		names        []string
		wantRoots    []string
		wantPrefixes []string
	}{
		{
			name:         "single tag",
			names:        []string{"xxx01.yyy"},
			wantRoots:    []string{"yyy"},
			wantPrefixes: []string{"xxx"},
		},
		{
			name:         "deduplicated and sorted",
			names:        []string{"GT02.speed", "GT01.power", "ST01.power", "GT01.speed"},
			wantRoots:    []string{"power", "speed"},
			wantPrefixes: []string{"GT", "ST"},
		},
		{
			name:         "non matching names skipped",
			names:        []string{"timestamp", "GT1.power", "GT01power", "GT01.power"},
			wantRoots:    []string{"power"},
			wantPrefixes: []string{"GT"},
		},
		{
			name:         "last code wins",
			names:        []string{"A11.B22.c"},
			wantRoots:    []string{"c"},
			wantPrefixes: []string{"A11.B"},
		},
		{
			name:         "more digits stay in the prefix",
			names:        []string{"GT101.power"},
			wantRoots:    []string{"power"},
			wantPrefixes: []string{"GT1"},
		},
		{
			name:         "empty parts",
			names:        []string{"01."},
			wantRoots:    []string{""},
			wantPrefixes: []string{""},
		},
		{
			name:         "no names",
			names:        nil,
			wantRoots:    []string{},
			wantPrefixes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantRoots, TagRoots(tt.names)); diff != "" {
				t.Errorf("TagRoots() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPrefixes, TagPrefixes(tt.names)); diff != "" {
				t.Errorf("TagPrefixes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrameTags(t *testing.T) {
	frame := frameWithColumns(t, "GT01.power", "GT02.power", "ST01.flow")

	assert.Equal(t, []string{"flow", "power"}, FrameTagRoots(frame))
	assert.Equal(t, []string{"GT", "ST"}, FrameTagPrefixes(frame))
}
