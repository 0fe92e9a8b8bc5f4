package cli

import (
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/latextab"
	"github.com/bjaus/latextab/internal/logging"
)

func newDescribeCommand(logs *logParams) *cobra.Command {
	var source sourceParams
	var output string

	cmd := &cobra.Command{
		Use:   "describe [input]",
		Short: "Print the merged header layout of a table",
		Long: `Print the header layout inferred from the first two rows of the input:
every label with its kind (single, multicolumn or multirow), start column
and extent, and the partial rules drawn under the header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), logs.level, logs.format)
			if err != nil {
				return err
			}
			format, err := latextab.ParseLayoutFormat(output)
			if err != nil {
				return err
			}
			tbl, err := source.table()
			if err != nil {
				return err
			}
			input := stdio
			if len(args) > 0 {
				input = args[0]
			}

			var layout latextab.Layout
			err = withSource(cmd.InOrStdin(), input, source, tbl, func(rows iter.Seq2[latextab.Row, error]) error {
				layout, err = latextab.ReadLayout(rows)
				return err
			})
			if err != nil {
				logger.WithError(err).WithField("input", input).Debug("Layout inference failed.")
				return err
			}
			logger.WithFields(logrus.Fields{
				"columns": layout.Columns,
				"spans":   len(layout.Spans),
				"rules":   len(layout.Rules),
			}).Debug("Layout inferred.")
			return latextab.Describe(cmd.OutOrStdout(), format, layout)
		},
	}

	addSourceFlags(cmd, &source)
	cmd.Flags().StringVarP(&output, "output", "o", latextab.LayoutJSON.String(), "output format: json or yaml")
	return cmd
}
