package latextab

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnWidths returns the display width of the widest cell per column.
func columnWidths(rows []Row) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// padRow left-aligns every cell except the last one to its column width.
// The last cell is left alone so rows carry no trailing blanks.
func padRow(row Row, widths []int) Row {
	out := make(Row, len(row))
	for i, cell := range row {
		if i == len(row)-1 || i >= len(widths) {
			out[i] = cell
			continue
		}
		out[i] = alignCell(cell, widths[i])
	}
	return out
}

func alignCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
