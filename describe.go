package latextab

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// LayoutFormat is an encoding for [Describe].
type LayoutFormat string

const (
	LayoutJSON LayoutFormat = "json"
	LayoutYAML LayoutFormat = "yaml"
)

var layoutFormats = []LayoutFormat{LayoutJSON, LayoutYAML}

// String returns the format name.
func (f LayoutFormat) String() string { return string(f) }

// ParseLayoutFormat parses a layout format name.
func ParseLayoutFormat(s string) (LayoutFormat, error) {
	for _, f := range layoutFormats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Layout is the merge structure inferred from a header pair.
type Layout struct {
	Columns int           `json:"columns" yaml:"columns"`
	Spans   []SpanInfo    `json:"spans" yaml:"spans"`
	Rules   []RuleSegment `json:"rules" yaml:"rules"`
}

// SpanInfo describes one span with a 1-based start column.
type SpanInfo struct {
	Label   string   `json:"label" yaml:"label"`
	Kind    SpanKind `json:"kind" yaml:"kind"`
	Column  int      `json:"column" yaml:"column"`
	Columns int      `json:"columns" yaml:"columns"`
	Rows    int      `json:"rows" yaml:"rows"`
}

// NewLayout infers the layout of a header pair.
func NewLayout(row1, row2 Row) (Layout, error) {
	spans, err := InferSpans(row1, row2)
	if err != nil {
		return Layout{}, err
	}
	l := Layout{
		Columns: len(row1),
		Spans:   make([]SpanInfo, len(spans)),
		Rules:   RuleSegments(spans, len(row1)),
	}
	for i, s := range spans {
		l.Spans[i] = SpanInfo{
			Label:   s.Label,
			Kind:    s.Kind(),
			Column:  s.Start + 1,
			Columns: s.Columns,
			Rows:    s.Rows,
		}
	}
	return l, nil
}

// ReadLayout infers the layout from the first two rows of seq.
func ReadLayout(seq iter.Seq2[Row, error]) (Layout, error) {
	next, stop := iter.Pull2(seq)
	defer stop()
	row1, err := pull(next, "header row")
	if err != nil {
		return Layout{}, err
	}
	row2, err := pull(next, "second header row")
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(row1, row2)
}

// Describe encodes l to w in format f.
func Describe(w io.Writer, f LayoutFormat, l Layout) error {
	switch f {
	case LayoutJSON:
		return writeJSON(w, l)
	case LayoutYAML:
		return writeYAML(w, l)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
