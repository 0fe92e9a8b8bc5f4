package latextab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSourceRead        = errors.New("source read failed")
	ErrMalformedHeader   = errors.New("malformed header")
	ErrMissingRow        = errors.New("missing row")
	ErrUnsupportedMode   = errors.New("unsupported header mode")
	ErrUnsupportedFormat = errors.New("unsupported layout format")
)

// Row is one record of the source: an ordered sequence of text fields.
type Row []string

// HeaderMode selects how the leading rows of the source become the table header.
type HeaderMode string

const (
	// Simple renders the first row as the only header line.
	Simple HeaderMode = "simple"
	// Extended resolves merged cells across the first two rows.
	Extended HeaderMode = "extended"
)

var headerModes = []HeaderMode{Simple, Extended}

// String returns the mode name.
func (m HeaderMode) String() string { return string(m) }

// RowSkip returns how many rows after the first one the header consumes.
func (m HeaderMode) RowSkip() int {
	if m == Extended {
		return 1
	}
	return 0
}

// HeaderModes returns all supported header mode names.
func HeaderModes() []HeaderMode {
	out := make([]HeaderMode, len(headerModes))
	copy(out, headerModes)
	return out
}

// ParseHeaderMode parses a mode name. Matching is case-insensitive.
func ParseHeaderMode(s string) (HeaderMode, error) {
	for _, m := range headerModes {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// HeaderModeFromBool maps a "multirow" switch onto a mode.
func HeaderModeFromBool(multirow bool) HeaderMode {
	if multirow {
		return Extended
	}
	return Simple
}

// Table holds the settings of one conversion. The zero value converts
// comma-separated input with a simple header and no caption or label.
type Table struct {
	// Caption is written as \caption{...} after the tabular block.
	Caption string
	// Label is written as \label{...} after the caption.
	Label string
	// Variant is appended to the outer environment name, e.g. "*" for table*.
	Variant string
	// Args follows \begin{table} verbatim, e.g. "[h]".
	Args string
	// Mode defaults to Simple.
	Mode HeaderMode
	// Delimiter separates fields. Default: comma.
	Delimiter rune
	// Flexible accepts records whose field count differs from the first record.
	Flexible bool
	// Pad aligns the cell separators of plain rows in the emitted source.
	Pad bool
}

func (t Table) headerMode() (HeaderMode, error) {
	if t.Mode == "" {
		return Simple, nil
	}
	return ParseHeaderMode(string(t.Mode))
}

func (t Table) delimiter() rune {
	if t.Delimiter == 0 {
		return ','
	}
	return t.Delimiter
}

// ColumnSpec returns the tabular column specification for n centered,
// bordered columns: "|c|c|...|".
func ColumnSpec(n int) string {
	return "|" + strings.Repeat("c|", n)
}

// Write converts the delimited text read from r and writes the table to w.
// Nothing is written unless the whole conversion succeeds.
func Write(w io.Writer, r io.Reader, t Table) error {
	return WriteIter(w, ReadRows(r, t), t)
}

// Marshal converts the delimited text read from r and returns the table.
func Marshal(r io.Reader, t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, r, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func convert(buf *bytes.Buffer, seq iter.Seq2[Row, error], t Table) error {
	mode, err := t.headerMode()
	if err != nil {
		return err
	}

	next, stop := iter.Pull2(seq)
	defer stop()

	head, err := pull(next, "header row")
	if err != nil {
		return err
	}
	var sub Row
	if mode == Extended {
		if sub, err = pull(next, "second header row"); err != nil {
			return err
		}
	}
	var body []Row
	for {
		row, err, ok := next()
		if !ok {
			break
		}
		if err != nil {
			return err
		}
		body = append(body, row)
	}

	align := func(row Row) Row { return row }
	if t.Pad {
		plain := append([]Row{head}, body...)
		if mode == Extended {
			plain[0] = sub
		}
		widths := columnWidths(plain)
		align = func(row Row) Row { return padRow(row, widths) }
	}

	if err := writePreamble(buf, t, len(head)); err != nil {
		return err
	}
	switch mode {
	case Extended:
		text, _, err := resolveHeader(head, sub, align(sub))
		if err != nil {
			return err
		}
		buf.WriteString(text)
	default:
		buf.WriteString(RenderRow(align(head)))
	}
	for _, row := range body {
		buf.WriteString(RenderRow(align(row)))
	}
	return writeEnder(buf, t)
}

// pull reads the next row, reporting a missing one as ErrMissingRow.
func pull(next func() (Row, error, bool), what string) (Row, error) {
	row, err, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: no %s", ErrMissingRow, what)
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
