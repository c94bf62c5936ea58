package render

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mylxsw/go-utils/array"
)

type XMLField struct {
	XMLName xml.Name    `xml:"field"`
	Name    string      `xml:"name,attr"`
	Value   string   `xml:",chardata"`
}

type XMLRow struct {
	XMLName xml.Name `xml:"row"`
	Value   []XMLField
}

type XMLResultSet struct {
	XMLName xml.Name `xml:"resultset"`
	XMLNS   string   `xml:"xmlns:xsi,attr"`
	Value   []XMLRow
}

func XML(w io.Writer, colNames []string, data []map[string]interface{}) error {
	result := XMLResultSet{
		XMLNS: "http://www.w3.org/2001/XMLSchema-instance",
		Value: array.Map(data, func(item map[string]interface{}, _ int) XMLRow {
			row := XMLRow{Value: make([]XMLField, 0)}
			for _, col := range colNames {
				if v, ok := item[col]; ok && v != nil {
					row.Value = append(row.Value, XMLField{Name: col, Value: fmt.Sprint(v)})
				}
			}

			return row
		}),
	}

	marshalData, err := xml.MarshalIndent(result, "", "    ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, xml.Header+string(marshalData))
	return err
}
