package latextab

import (
	"fmt"
	"strings"
)

// SpanKind classifies how a header label is merged.
type SpanKind string

const (
	SpanSingle      SpanKind = "single"
	SpanMulticolumn SpanKind = "multicolumn"
	SpanMultirow    SpanKind = "multirow"
)

// Span is the extent of one header label. Start is the 0-based column of
// the label. A span never covers more than one row and more than one
// column at the same time.
type Span struct {
	Label   string
	Start   int
	Columns int
	Rows    int
}

// Kind reports whether the span is a plain cell, a multicolumn or a
// multirow.
func (s Span) Kind() SpanKind {
	switch {
	case s.Rows > 1:
		return SpanMultirow
	case s.Columns > 1:
		return SpanMulticolumn
	default:
		return SpanSingle
	}
}

func (s Span) markup() string {
	switch s.Kind() {
	case SpanMultirow:
		return fmt.Sprintf(`\multirow{%d}{*}{%s}`, s.Rows, s.Label)
	case SpanMulticolumn:
		return fmt.Sprintf(`\multicolumn{%d}{|c|}{%s}`, s.Columns, s.Label)
	default:
		return s.Label
	}
}

// RuleSegment is a partial horizontal rule under columns Start through End,
// both 1-based and inclusive.
type RuleSegment struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// String renders the segment as a \cline directive.
func (r RuleSegment) String() string {
	return fmt.Sprintf(`\cline{%d-%d}`, r.Start, r.End)
}

// InferSpans derives one span per non-blank label of row1. A run of blank
// cells after a label widens it; a label standing alone whose cell in row2
// is blank or missing extends down into the second row.
func InferSpans(row1, row2 Row) ([]Span, error) {
	var spans []Span
	for i, label := range row1 {
		if label == "" {
			continue
		}
		cols := 1
		for j := i + 1; j < len(row1) && row1[j] == ""; j++ {
			cols++
		}
		// Only single-column labels may extend down.
		rows := 1
		if cols == 1 && blank(row2, i) {
			rows = 2
		}
		s := Span{Label: label, Start: i, Columns: cols, Rows: rows}
		if err := checkSpan(s); err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}

func blank(row Row, i int) bool {
	return i >= len(row) || row[i] == ""
}

func checkSpan(s Span) error {
	if s.Rows > 1 && s.Columns > 1 {
		return fmt.Errorf("%w: column %d (%q) spans %d rows and %d columns",
			ErrMalformedHeader, s.Start+1, s.Label, s.Rows, s.Columns)
	}
	return nil
}

// RuleSegments returns the runs of columns, out of width, that are not
// covered by a multirow span, in ascending order.
func RuleSegments(spans []Span, width int) []RuleSegment {
	var segs []RuleSegment
	start := 1
	for _, s := range spans {
		if s.Kind() != SpanMultirow {
			continue
		}
		col := s.Start + 1
		if start < col {
			segs = append(segs, RuleSegment{Start: start, End: col - 1})
		}
		start = col + 1
	}
	if start <= width {
		segs = append(segs, RuleSegment{Start: start, End: width})
	}
	return segs
}

// ResolveHeader renders the two header rows with their merged cells. The
// first line carries the \multirow and \multicolumn labels and is closed by
// partial rules; row2 follows as a plain row.
func ResolveHeader(row1, row2 Row) (string, []RuleSegment, error) {
	return resolveHeader(row1, row2, row2)
}

// resolveHeader infers the layout from row1 and row2 but renders sub as
// the second line, so padding never hides a blank cell.
func resolveHeader(row1, row2, sub Row) (string, []RuleSegment, error) {
	spans, err := InferSpans(row1, row2)
	if err != nil {
		return "", nil, err
	}
	segs := RuleSegments(spans, len(row1))

	cells := make([]string, len(spans))
	for i, s := range spans {
		cells[i] = s.markup()
	}

	var sb strings.Builder
	sb.WriteString(rowIndent)
	sb.WriteString(strings.Join(cells, cellSep))
	sb.WriteString(rowBreak)
	for _, seg := range segs {
		sb.WriteString(seg.String())
	}
	sb.WriteString("\n")
	sb.WriteString(RenderRow(sub))
	return sb.String(), segs, nil
}
