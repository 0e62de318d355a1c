// Package exporter writes tabular data back to CSV files.
//
// CSVWriter writes raw header and record slices, or a whole dataset.Frame
// with its missing cells rendered as a marker string (NaN by default). A new
// file is produced through files.Manager.WriteAtomic so readers never observe
// a half written file. An optional UTF-8 BOM can be prefixed for Excel compatibility.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(files.NewManager(""))
//	err := writer.WriteFrame("out/subset.csv", frame, exporter.FrameOptions{NARep: "NaN"})
package exporter
