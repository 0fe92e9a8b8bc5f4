package latextab

import (
	"io"
	"iter"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSheet returns the rows of a spreadsheet sheet as a single-pass
// sequence. An empty sheet name selects the first sheet. Every row is
// widened to the sheet's used range, since trailing empty cells are not
// stored in the workbook.
func ReadSheet(r io.Reader, sheet string) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		f, err := excelize.OpenReader(r)
		if err != nil {
			yield(nil, sourceError(err))
			return
		}
		defer f.Close()

		if sheet == "" {
			sheet = f.GetSheetName(0)
		}
		width, err := sheetWidth(f, sheet)
		if err != nil {
			yield(nil, sourceError(err))
			return
		}

		rows, err := f.Rows(sheet)
		if err != nil {
			yield(nil, sourceError(err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			cols, err := rows.Columns()
			if err != nil {
				yield(nil, sourceError(err))
				return
			}
			if !yield(widenRow(cols, width), nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, sourceError(err))
		}
	}
}

// sheetWidth returns the column count of the sheet's used range: the
// wider of its recorded dimension ("A1:C4") and its widest stored row.
// Writers may leave the dimension out or stale, so the rows are scanned too.
func sheetWidth(f *excelize.File, sheet string) (int, error) {
	width, err := dimensionWidth(f, sheet)
	if err != nil {
		return 0, err
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return 0, err
		}
		width = max(width, len(cols))
	}
	return width, rows.Error()
}

func dimensionWidth(f *excelize.File, sheet string) (int, error) {
	dim, err := f.GetSheetDimension(sheet)
	if err != nil || dim == "" {
		return 0, err
	}
	last := dim
	if _, after, ok := strings.Cut(dim, ":"); ok {
		last = after
	}
	col, _, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0, err
	}
	return col, nil
}

func widenRow(cols []string, width int) Row {
	if len(cols) >= width {
		return Row(cols)
	}
	row := make(Row, width)
	copy(row, cols)
	return row
}
