package fleet

import (
	"errors"

	"csvfleet/pkg/dataset"
)

// ErrSelectorSource is returned when a selector gets both or neither of a frame and a name list
var ErrSelectorSource = errors.New("selector needs exactly one of a frame or a list of names")

// Selector picks tag names by substring. It reads either a frame, whose
// columns are looked up on every query, or a fixed list of names.
type Selector struct {
	frame *dataset.Frame
	names []string
}

// Query describes a selection. Every Include substring must appear in a name
// and no Exclude substring may. Matching ignores case unless CaseSensitive.
type Query struct {
	Include       []string
	Exclude       []string
	CaseSensitive bool
}

// NewSelector builds a selector over frame or over names. Exactly one of them
// must be non-nil.
func NewSelector(frame *dataset.Frame, names []string) (*Selector, error) {
	if (frame == nil) == (names == nil) {
		return nil, ErrSelectorSource
	}
	if frame != nil {
		return &Selector{frame: frame}, nil
	}
	return &Selector{names: append([]string{}, names...)}, nil
}

// SelectorForFrame builds a selector over the columns of frame
func SelectorForFrame(frame *dataset.Frame) *Selector {
	return &Selector{frame: frame}
}

// SelectorForNames builds a selector over a copy of names
func SelectorForNames(names []string) *Selector {
	return &Selector{names: append([]string{}, names...)}
}

// Names returns the names the selector chooses from
func (s *Selector) Names() []string {
	if s.frame != nil {
		return s.frame.Columns()
	}
	return append([]string{}, s.names...)
}

// Sub returns the names matching q in their original order. No match gives
// an empty slice.
func (s *Selector) Sub(q Query) []string {
	preds := make([]Predicate, 0, len(q.Include)+len(q.Exclude))
	for _, sub := range q.Include {
		preds = append(preds, Contains(sub, q.CaseSensitive))
	}
	for _, sub := range q.Exclude {
		preds = append(preds, Not(Contains(sub, q.CaseSensitive)))
	}
	return Filter(s.Names(), All(preds...))
}

// Get returns the names containing every substring, ignoring case
func (s *Selector) Get(substrings ...string) []string {
	return s.Sub(Query{Include: substrings})
}
