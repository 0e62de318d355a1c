// Package csvhelper inspects and lightly reshapes CSV files before they are
// loaded for analysis.
//
// Inspection works on raw lines and never loads more than it needs:
//
//	n, err := csvhelper.NumRows("plant.csv")
//	sep, err := csvhelper.Delimiter("plant.csv")
//	rows, err := csvhelper.Head("plant.csv", csvhelper.DefaultPreviewOptions())
//
// FindNaNs lists the non-numeric tokens of a file so they can be passed as
// missing-value markers to a reader. RemoveRow rewrites a file without one
// line, replacing it atomically. ColSubset and ReadFiles go through
// pkg/dataset: the former writes a column subset to a new file, the latter
// joins every file under a path on the index.
package csvhelper
