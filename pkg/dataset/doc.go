// Package dataset provides a small in-memory table for CSV munging.
//
// A Frame is an ordered set of named text columns (Series) with an optional
// index column. Cells are never type-coerced on load: every value stays the
// text found in the file, and a cell is either present or missing (NA).
// Numeric access parses on demand and yields NaN for missing or non-numeric
// cells.
//
// Frames are read from CSV (ReadCSV, ParseCSV) or from the first sheet of an
// Excel workbook (ReadXLSX), combined with JoinOuter on their index, and
// turned back into records with Records for writing.
//
// Example usage:
//
//	f, err := dataset.ReadCSV("plant.csv", dataset.ReadOptions{IndexCol: 0})
//	if err != nil {
//	    return err
//	}
//	power, ok := f.Column("GT01.power")
package dataset
