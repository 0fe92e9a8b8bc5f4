package latextab

import "strings"

const (
	rowIndent = "\t\t\t"
	cellSep   = " & "
	rowBreak  = `\\`
	rowHLine  = `\\ \hline ` + "\n"
)

// RenderRow renders one tabular row: the fields joined by " & ", followed
// by a row break and a full-width \hline.
func RenderRow(row Row) string {
	var sb strings.Builder
	sb.WriteString(rowIndent)
	sb.WriteString(strings.Join(row, cellSep))
	sb.WriteString(rowHLine)
	return sb.String()
}
