package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes data as a yaml document indented by two spaces
func YAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(data); err != nil {
		return err
	}

	return enc.Close()
}
