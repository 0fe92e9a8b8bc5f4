package latextab

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, l Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
