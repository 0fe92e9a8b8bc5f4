// Package cli implements the latextab command line.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/latextab"
	"github.com/bjaus/latextab/internal/env"
	"github.com/bjaus/latextab/internal/logging"
)

const stdio = "-"

// sourceParams are the flags shared by every command that reads a table.
type sourceParams struct {
	delimiter string
	flexible  bool
	sheet     string
}

type convertParams struct {
	source   sourceParams
	caption  string
	label    string
	variant  string
	args     string
	mode     string
	multirow bool
	pad      bool
	config   string
}

type logParams struct {
	level  string
	format string
}

// NewRootCommand returns the latextab command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var params convertParams
	var logs logParams

	root := &cobra.Command{
		Use:   "latextab [input [output]]",
		Short: "Convert CSV files to LaTeX tables",
		Long: `Convert a CSV file (or an .xlsx sheet) into a LaTeX table.

The input defaults to stdin and the output to stdout; "-" selects either
explicitly. The first row is the header. With --mode extended (or
--multirow) the first two rows form the header: a blank cell in the first
row widens the label to its left into a \multicolumn, and a label whose cell
in the second row is blank becomes a \multirow.

Every flag can also be set through an environment variable named
LATEXTAB_<FLAG>, with dashes replaced by underscores, or through a YAML file
given with --config whose keys are flag names. Command line flags take
precedence over the environment, which takes precedence over the file.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.CheckEnvironmentVariables(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigFile(cmd.Flags(), params.config); err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), logs.level, logs.format)
			if err != nil {
				return err
			}
			if err := runConvert(cmd, logger, params, args); err != nil {
				logger.WithError(err).Debug("Conversion failed.")
				return err
			}
			return nil
		},
	}

	flags := root.Flags()
	addSourceFlags(root, &params.source)
	flags.StringVar(&params.caption, "caption", "Caption Here", "table caption, omitted when empty")
	flags.StringVar(&params.label, "label", "Label Here", "table label, omitted when empty")
	flags.StringVar(&params.variant, "variant", "", `table environment variant, e.g. "*" for table*`)
	flags.StringVar(&params.args, "args", "", `argument string after \begin{table}, e.g. "[h]"`)
	flags.StringVarP(&params.mode, "mode", "m", latextab.Simple.String(), "header mode: simple or extended")
	flags.BoolVar(&params.multirow, "multirow", false, "shorthand for --mode extended")
	flags.BoolVar(&params.pad, "pad", false, "align cell separators in the generated source")
	flags.StringVarP(&params.config, "config", "c", "", "YAML file with default flag values")
	root.PersistentFlags().StringVar(&logs.level, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&logs.format, "log-format", "text", "log format: text or json")

	root.AddCommand(newDescribeCommand(&logs))
	return root
}

func addSourceFlags(cmd *cobra.Command, p *sourceParams) {
	cmd.Flags().StringVarP(&p.delimiter, "delimiter", "d", ",", `field delimiter, a single character or "tab"`)
	cmd.Flags().BoolVar(&p.flexible, "flexible", false, "accept records with differing field counts")
	cmd.Flags().StringVar(&p.sheet, "sheet", "", "sheet to read from an .xlsx input (default: first sheet)")
}

func runConvert(cmd *cobra.Command, logger *logrus.Logger, params convertParams, args []string) error {
	tbl, err := params.table()
	if err != nil {
		return err
	}
	input, output := stdio, stdio
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}

	log := logger.WithFields(logrus.Fields{"input": input, "output": output, "mode": tbl.Mode})
	log.Debug("Converting table.")

	var buf bytes.Buffer
	var columns int
	err = withSource(cmd.InOrStdin(), input, params.source, tbl, func(rows iter.Seq2[latextab.Row, error]) error {
		return latextab.WriteIter(&buf, countColumns(rows, &columns), tbl)
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"columns": columns, "bytes": buf.Len()}).Debug("Table rendered.")
	if output == stdio {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

// countColumns passes rows through, recording the width of the header row.
func countColumns(rows iter.Seq2[latextab.Row, error], n *int) iter.Seq2[latextab.Row, error] {
	return func(yield func(latextab.Row, error) bool) {
		first := true
		for row, err := range rows {
			if first && err == nil {
				*n = len(row)
				first = false
			}
			if !yield(row, err) {
				return
			}
		}
	}
}

func (p convertParams) table() (latextab.Table, error) {
	mode, err := latextab.ParseHeaderMode(p.mode)
	if err != nil {
		return latextab.Table{}, err
	}
	if p.multirow {
		mode = latextab.HeaderModeFromBool(p.multirow)
	}
	tbl, err := p.source.table()
	if err != nil {
		return latextab.Table{}, err
	}
	tbl.Caption = p.caption
	tbl.Label = p.label
	tbl.Variant = p.variant
	tbl.Args = p.args
	tbl.Mode = mode
	tbl.Pad = p.pad
	return tbl, nil
}

func (p sourceParams) table() (latextab.Table, error) {
	delim, err := parseDelimiter(p.delimiter)
	if err != nil {
		return latextab.Table{}, err
	}
	return latextab.Table{Delimiter: delim, Flexible: p.flexible}, nil
}

var errDelimiter = errors.New("delimiter must be a single character")

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", errDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// withSource opens the named input and hands its rows to fn. Files ending
// in .xlsx are read as spreadsheets, everything else as delimited text.
func withSource(stdin io.Reader, name string, p sourceParams, tbl latextab.Table, fn func(iter.Seq2[latextab.Row, error]) error) error {
	r := stdin
	if name != stdio {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return fn(latextab.ReadSheet(r, p.sheet))
	}
	return fn(latextab.ReadRows(r, tbl))
}
