package render

import (
	"encoding/json"
	"io"
)

// JSON writes data as a single json line, html characters are kept as is
// since file names and cell values are shown verbatim
func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc.Encode(data)
}
