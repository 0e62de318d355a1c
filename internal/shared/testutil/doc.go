// Package testutil holds test helpers shared across csvfleet packages: a
// buffered slog handler for asserting log output and small CSV fixture writers.
package testutil
