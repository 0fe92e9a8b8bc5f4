package latextab

import (
	"io"
	"text/template"
)

var preambleTmpl = template.Must(template.New("preamble").Parse(
	`\begin{table{{.Variant}}}{{.Args}}
    \begin{center}
        \begin{tabular}{ {{- .Columns -}} }
        \hline
`))

var enderTmpl = template.Must(template.New("ender").Parse(
	`        \end{tabular}
    \end{center}
{{- if .Caption}}
    \caption{ {{- .Caption -}} }
{{- end}}
{{- if .Label}}
    \label{ {{- .Label -}} }
{{- end}}
\end{table{{.Variant}}}
`))

type frame struct {
	Variant string
	Args    string
	Columns string
	Caption string
	Label   string
}

func newFrame(t Table, numCols int) frame {
	return frame{
		Variant: t.Variant,
		Args:    t.Args,
		Columns: ColumnSpec(numCols),
		Caption: t.Caption,
		Label:   t.Label,
	}
}

func writePreamble(w io.Writer, t Table, numCols int) error {
	return preambleTmpl.Execute(w, newFrame(t, numCols))
}

func writeEnder(w io.Writer, t Table) error {
	return enderTmpl.Execute(w, newFrame(t, 0))
}
