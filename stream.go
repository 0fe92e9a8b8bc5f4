package latextab

import (
	"bytes"
	"io"
	"iter"
)

// WriteIter converts rows produced by seq and writes the table to w. The
// first row is the header; in Extended mode the second row is consumed by
// the header as well. The sequence is read once, and nothing is written to
// w unless every row converts.
func WriteIter(w io.Writer, seq iter.Seq2[Row, error], t Table) error {
	var buf bytes.Buffer
	if err := convert(&buf, seq, t); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// WriteChan converts rows received from ch and writes the table to w.
// It is a thin wrapper around [WriteIter]. The sender must close ch; on an
// error WriteChan stops receiving.
func WriteChan(w io.Writer, ch <-chan Row, t Table) error {
	return WriteIter(w, chanToIter(ch), t)
}

func chanToIter(ch <-chan Row) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for row := range ch {
			if !yield(row, nil) {
				return
			}
		}
	}
}

// SliceRows adapts in-memory rows to the sequence accepted by [WriteIter].
func SliceRows(rows []Row) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for _, row := range rows {
			if !yield(row, nil) {
				return
			}
		}
	}
}
