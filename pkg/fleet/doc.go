// Package fleet works with column names that follow the fleet tag scheme
// <prefix><two digit unit code>.<suffix>, for example "GT01.power" for the
// power reading of unit 01 of the GT fleet.
//
// A Selector picks tag names by substring:
//
//	sel := fleet.SelectorForFrame(frame)
//	power := sel.Get("power")                                  // any case
//	gt := sel.Sub(fleet.Query{Include: []string{"GT", "power"}, Exclude: []string{"GT03"}})
//
// TagRoots and TagPrefixes list the suffixes and prefixes present, and
// BuildCalculated derives one new column per unit from a function of that
// unit's columns.
package fleet
