package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"csvfleet/internal/exporter"
	"csvfleet/internal/files"
	"csvfleet/internal/validation"
	"csvfleet/pkg/csvhelper"
	"csvfleet/pkg/dataset"
	"csvfleet/pkg/fleet"
)

func (a *app) rowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows <file>",
		Short: "Count the lines of a file, blank lines included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			n, err := csvhelper.NumRows(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) delimiterCmd() *cobra.Command {
	var sniffBytes int
	cmd := &cobra.Command{
		Use:   "delimiter <file>",
		Short: "Guess the field delimiter of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			if !cmd.Flags().Changed("bytes") {
				sniffBytes = a.cfg.CSV.SniffBytes
			}
			d, err := csvhelper.DelimiterN(args[0], sniffBytes)
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", d)
			return nil
		},
	}
	cmd.Flags().IntVar(&sniffBytes, "bytes", csvhelper.DefaultSniffBytes, "number of bytes to inspect")
	return cmd
}

// previewCmd builds head, tail and sample, which differ only in the operation
func (a *app) previewCmd(name, short string) *cobra.Command {
	var rows, chars int
	var seed uint64
	cmd := &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			opts := csvhelper.PreviewOptions{NRows: rows, NChars: chars}
			if !cmd.Flags().Changed("rows") {
				opts.NRows = a.cfg.CSV.PreviewRows
			}
			if !cmd.Flags().Changed("chars") {
				opts.NChars = a.cfg.CSV.PreviewChars
			}
			if seed != 0 {
				opts.Rand = rand.New(rand.NewPCG(seed, seed))
			}

			var lines []string
			var err error
			switch name {
			case "head":
				lines, err = csvhelper.Head(args[0], opts)
			case "tail":
				lines, err = csvhelper.Tail(args[0], opts)
			default:
				lines, err = csvhelper.RandomRows(args[0], opts)
			}
			if err != nil {
				return a.fail(cmd, err)
			}
			return printLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", csvhelper.DefaultPreviewRows, "number of rows")
	cmd.Flags().IntVarP(&chars, "chars", "c", csvhelper.DefaultPreviewChars, "characters kept per row, negative for the whole line")
	if name == "sample" {
		cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a repeatable draw (0 draws at random)")
	}
	return cmd
}

func (a *app) nansCmd() *cobra.Command {
	var keepHeader, keepIndex bool
	var delimiter string
	cmd := &cobra.Command{
		Use:   "nans <file>",
		Short: "List the non-numeric values of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			d, err := parseDelimiter(delimiter)
			if err != nil {
				return a.fail(cmd, err)
			}
			found, err := csvhelper.FindNaNs(args[0], csvhelper.NaNOptions{
				SkipHeader:   !keepHeader,
				SkipIndexCol: !keepIndex,
				Delimiter:    d,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return printLines(cmd.OutOrStdout(), quoteAll(found.Sorted()))
		},
	}
	cmd.Flags().BoolVar(&keepHeader, "keep-header", false, "inspect the header row too")
	cmd.Flags().BoolVar(&keepIndex, "keep-index", false, "inspect the first column too")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", `field delimiter ("\t" or "tab" for tabs)`)
	return cmd
}

func (a *app) removeRowCmd() *cobra.Command {
	var row int
	cmd := &cobra.Command{
		Use:   "remove-row <file> --row n",
		Short: "Rewrite a file without one line (0 is the first, -1 the last)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			if err := csvhelper.RemoveRow(args[0], row); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&row, "row", "r", 0, "line to remove, counting from 0; negative counts from the end")
	cmd.MarkFlagRequired("row")
	return cmd
}

func (a *app) subsetCmd() *cobra.Command {
	var noFirst, bom bool
	var naRep, delimiter string
	cmd := &cobra.Command{
		Use:   "subset <src> <dst> <pattern>...",
		Short: "Write the columns whose name contains any pattern to a new file",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDelimiter(delimiter)
			if err != nil {
				return a.fail(cmd, err)
			}
			opts := csvhelper.SubsetOptions{
				IncludeFirst: a.cfg.CSV.IncludeFirst && !noFirst,
				NARep:        a.cfg.CSV.NARep,
				Delimiter:    d,
				BOMPrefix:    a.cfg.CSV.BOMPrefix || bom,
			}
			if cmd.Flags().Changed("na-rep") {
				opts.NARep = naRep
			}
			cols, err := csvhelper.ColSubset(args[0], args[1], args[2:], opts)
			if err != nil {
				return a.fail(cmd, err)
			}
			return printLines(cmd.OutOrStdout(), cols)
		},
	}
	cmd.Flags().BoolVar(&noFirst, "no-first", false, "do not lead with the first column")
	cmd.Flags().BoolVar(&bom, "bom", false, "start the output with a UTF-8 byte order mark")
	cmd.Flags().StringVar(&naRep, "na-rep", csvhelper.DefaultNARep, "text written for missing cells")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter of the source")
	return cmd
}

func (a *app) loadCmd() *cobra.Command {
	var out, delimiter string
	var indexCol int
	cmd := &cobra.Command{
		Use:   "load <path>",
		Short: "Join every file under a path on the index and write the result",
		Long: `load reads a file, every file of a directory or every file matching a
glob pattern, joins them on the index column and writes one CSV with the
index first. Excel workbooks are read from their first sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDelimiter(delimiter)
			if err != nil {
				return a.fail(cmd, err)
			}
			frame, err := csvhelper.ReadFiles(args[0], dataset.ReadOptions{Delimiter: d, IndexCol: indexCol})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.writeFrame(cmd, frame, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter of the inputs")
	cmd.Flags().IntVar(&indexCol, "index-col", 0, "position of the index column, -1 for none")
	return cmd
}

// tagsCmd builds roots and prefixes
func (a *app) tagsCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			frame, err := dataset.ReadCSV(args[0], dataset.DefaultReadOptions())
			if err != nil {
				return a.fail(cmd, err)
			}
			if name == "roots" {
				return printLines(cmd.OutOrStdout(), fleet.FrameTagRoots(frame))
			}
			return printLines(cmd.OutOrStdout(), fleet.FrameTagPrefixes(frame))
		},
	}
}

func (a *app) selectCmd() *cobra.Command {
	var exclude []string
	var caseSensitive bool
	cmd := &cobra.Command{
		Use:   "select <file> <substring>...",
		Short: "List the columns containing every substring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			frame, err := dataset.ReadCSV(args[0], dataset.DefaultReadOptions())
			if err != nil {
				return a.fail(cmd, err)
			}
			names := fleet.SelectorForFrame(frame).Sub(fleet.Query{
				Include:       args[1:],
				Exclude:       exclude,
				CaseSensitive: caseSensitive,
			})
			return printLines(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "substrings that must not appear")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case")
	return cmd
}

// rowFuncs are the calculations calc offers
var rowFuncs = map[string]fleet.RowFunc{
	"sum": func(args []float64) float64 {
		total := 0.0
		for _, v := range args {
			total += v
		}
		return total
	},
	"mean": func(args []float64) float64 {
		total := 0.0
		for _, v := range args {
			total += v
		}
		return total / float64(len(args))
	},
	"min": func(args []float64) float64 {
		m := math.Inf(1)
		for _, v := range args {
			m = math.Min(m, v)
		}
		return m
	},
	"max": func(args []float64) float64 {
		m := math.Inf(-1)
		for _, v := range args {
			m = math.Max(m, v)
		}
		return m
	},
	"diff": func(args []float64) float64 {
		d := args[0]
		for _, v := range args[1:] {
			d -= v
		}
		return d
	},
	"ratio": func(args []float64) float64 {
		r := args[0]
		for _, v := range args[1:] {
			r /= v
		}
		return r
	},
}

func (a *app) calcCmd() *cobra.Command {
	var roots []string
	var output, op, out string
	var indexCol int
	cmd := &cobra.Command{
		Use:   "calc <file> --roots .a,.b --output .c --op sum",
		Short: "Add a calculated variable for every unit of a fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := rowFuncs[op]
			if !ok {
				return a.fail(cmd, fmt.Errorf("unknown operation %q", op))
			}
			if err := a.checkFile(cmd, args[0]); err != nil {
				return err
			}
			frame, err := dataset.ReadCSV(args[0], dataset.ReadOptions{IndexCol: indexCol})
			if err != nil {
				return a.fail(cmd, err)
			}
			series, err := fleet.BuildCalculated(frame, fn, roots, output)
			if err != nil {
				return a.fail(cmd, err)
			}
			frame, err = frame.WithColumns(series...)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.writeFrame(cmd, frame, out)
		},
	}
	cmd.Flags().StringSliceVar(&roots, "roots", nil, "input roots; the first one names the units")
	cmd.Flags().StringVar(&output, "output", "", "root of the calculated columns")
	cmd.Flags().StringVar(&op, "op", "sum", "calculation: sum, mean, min, max, diff or ratio")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&indexCol, "index-col", 0, "position of the index column, -1 for none")
	cmd.MarkFlagRequired("roots")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) filesCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "files <dir>",
		Short: "List the CSV files of a directory, or the files matching --pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			discovery := files.NewDiscovery("")
			var found []files.FileInfo
			var err error
			if pattern != "" {
				found, err = discovery.FindFilesByPattern(args[0], pattern)
			} else {
				found, err = discovery.FindCSVFiles(args[0])
			}
			if err != nil {
				return a.fail(cmd, err)
			}
			lines := make([]string, len(found))
			for i, f := range found {
				lines[i] = fmt.Sprintf("%s\t%d", f.Name, f.Size)
			}
			return printLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "glob pattern matched inside the directory")
	return cmd
}

// checkFile fails early when path is not a readable regular file
func (a *app) checkFile(cmd *cobra.Command, path string) error {
	if err := validation.NewFileValidator(a.logger).ValidateFile(path); err != nil {
		return a.fail(cmd, err)
	}
	return nil
}

// writeFrame writes frame, index first, to path or to the command's output
func (a *app) writeFrame(cmd *cobra.Command, frame *dataset.Frame, path string) error {
	if path != "" {
		writer := exporter.NewCSVWriter(files.NewManager(""))
		err := writer.WriteFrame(path, frame, exporter.FrameOptions{
			NARep:     a.cfg.CSV.NARep,
			WithIndex: true,
			BOMPrefix: a.cfg.CSV.BOMPrefix,
		})
		if err != nil {
			return a.fail(cmd, err)
		}
		return nil
	}

	header, records := frame.Records(a.cfg.CSV.NARep, true)
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return nil
}

// parseDelimiter turns a flag value into a rune. "\t" and "tab" mean a tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Quote(v)
	}
	return out
}

func printLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
