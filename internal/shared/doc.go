// Package shared groups helpers used across csvfleet packages that belong to
// no single domain. Its testutil subpackage holds the log capture handler and
// CSV fixture writers used by the package tests.
package shared
