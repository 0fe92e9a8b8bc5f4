// Package latextab converts tabular data into a LaTeX tabular environment.
//
// The central entry points are [Write] and [Marshal], which read delimited
// text (CSV by default) and emit a complete table block: the outer table
// environment, a centered tabular with one bordered column per input column,
// the header, one line per data row, and an optional caption and label.
//
//	err := latextab.Write(os.Stdout, f, latextab.Table{Caption: "Results"})
//
// Use [WriteIter] or [WriteChan] when rows come from somewhere else, for
// example [ReadSheet] for spreadsheet files.
//
// # Header Modes
//
// A [Table] selects one of two [HeaderMode] values:
//
//   - [Simple] — the first row is rendered as a plain row and closed with a
//     full \hline. Data rows start at the second row.
//   - [Extended] — the first two rows form the header and merged cells are
//     inferred from blanks. Data rows start at the third row.
//
// Use [ParseHeaderMode] to convert a CLI flag string into a [HeaderMode].
//
// # Merged Headers
//
// In Extended mode a blank cell in the first row means the label to its left
// spans it, producing a \multicolumn. A label that stands alone and has a
// blank cell below it in the second row spans both rows, producing a
// \multirow. The two never combine: a label either widens or deepens.
//
//	Group,,,ID      →  \multicolumn{3}{|c|}{Group} & \multirow{2}{*}{ID}\\\cline{1-3}
//	x,y,z,             x & y & z & \\ \hline
//
// Partial rules (\cline) are emitted under every run of columns not covered
// by a \multirow. [ResolveHeader] exposes this rendering directly, and
// [NewLayout] and [Describe] report the inferred structure as JSON or YAML.
//
// Cell content is written verbatim; no LaTeX escaping is applied.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrSourceRead] — the delimited text or spreadsheet could not be read
//   - [ErrMalformedHeader] — a header label spans rows and columns at once
//   - [ErrMissingRow] — the source ends before the header is complete
//   - [ErrUnsupportedMode] — unknown header mode string
//   - [ErrUnsupportedFormat] — unknown layout format string
package latextab
