package latextab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// ReadRows returns the records of the delimited text in r as a single-pass
// sequence. The first record is the header. Parse failures are yielded
// once, wrapped in ErrSourceRead, and end the sequence.
func ReadRows(r io.Reader, t Table) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		cr := csv.NewReader(r)
		cr.Comma = t.delimiter()
		if t.Flexible {
			cr.FieldsPerRecord = -1
		}
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, sourceError(err))
				return
			}
			if !yield(Row(rec), nil) {
				return
			}
		}
	}
}

func sourceError(err error) error {
	return fmt.Errorf("%w: %w", ErrSourceRead, err)
}
