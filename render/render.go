package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/go-utils/ternary"
)

// SupportedFormats lists every output format of Render
var SupportedFormats = []string{"table", "markdown", "csv", "html", "json", "yaml", "xml", "plain"}

// Render writes kvs in the given format, colNames decides the column order
func Render(format string, noHeader bool, colNames []string, kvs []map[string]interface{}) (*bytes.Buffer, error) {
	writer := bytes.NewBuffer(nil)

	switch format {
	case "json":
		if err := JSON(writer, kvs); err != nil {
			return nil, err
		}
	case "yaml":
		if err := YAML(writer, kvs); err != nil {
			return nil, err
		}
	case "xml":
		if err := XML(writer, colNames, kvs); err != nil {
			return nil, err
		}
	case "table", "markdown", "csv", "html":
		renderTable(writer, noHeader, colNames, kvs, format)
	case "plain", "":
		for _, kv := range kvs {
			lines := array.Map(colNames, func(colName string, _ int) string {
				return strings.ReplaceAll(fmt.Sprintf("%s=%v", colName, kv[colName]), "\n", "\\n")
			})

			writer.WriteString(fmt.Sprintln(strings.Join(lines, ", ")))
		}
	default:
		return nil, fmt.Errorf("unsupported format %s, support %s", format, strings.Join(SupportedFormats, ", "))
	}

	return writer, nil
}

// Rows converts positional rows into kvs keyed by colNames, missing cells are empty
func Rows(colNames []string, rows [][]string) []map[string]interface{} {
	return array.Map(rows, func(row []string, _ int) map[string]interface{} {
		kv := make(map[string]interface{}, len(colNames))
		for i, col := range colNames {
			kv[col] = ternary.IfElseLazy(i < len(row), func() string { return row[i] }, func() string { return "" })
		}

		return kv
	})
}
