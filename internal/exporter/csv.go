package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"csvfleet/internal/files"
	"csvfleet/pkg/dataset"
)

// DefaultNARep is written for missing cells unless the caller overrides it
const DefaultNARep = "NaN"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	manager *files.Manager
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(manager *files.Manager) *CSVWriter {
	if manager == nil {
		manager = files.NewManager("")
	}
	return &CSVWriter{manager: manager}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
	Delimiter rune // 0 means ','
}

// FrameOptions configures how a frame is rendered to CSV
type FrameOptions struct {
	NARep     string // written for missing cells; "" means DefaultNARep
	WithIndex bool   // emit the frame index as the first column
	BOMPrefix bool
	Delimiter rune
}

// WriteCSV writes data to a CSV file with the given options. An existing file
// is replaced atomically.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	slog.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	return w.manager.WriteAtomic(filePath, func(out io.Writer) error {
		if options.BOMPrefix {
			if _, err := out.Write(utf8BOM); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}
		return writeRecords(out, options)
	})
}

func writeRecords(out io.Writer, options WriteOptions) error {
	writer := csv.NewWriter(out)
	if options.Delimiter != 0 {
		writer.Comma = options.Delimiter
	}

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFrame writes a frame with its header. Missing cells become the NA
// marker and the index is dropped unless requested.
func (w *CSVWriter) WriteFrame(filePath string, frame *dataset.Frame, options FrameOptions) error {
	naRep := options.NARep
	if naRep == "" {
		naRep = DefaultNARep
	}

	headers, records := frame.Records(naRep, options.WithIndex)
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: options.BOMPrefix,
		Delimiter: options.Delimiter,
	})
}
