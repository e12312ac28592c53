// Package render turns extracted entities into output file content.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/go-scripts/mdextract/pkg/common"
)

// CSVHeader is the first record of every CSV output
var CSVHeader = []string{"URL", "Owner", "Dataset Name"}

const (
	tableHeader    = "| Name | Message | Category |\n"
	tableSeparator = "|------|---------|----------|\n"
)

// Lines renders one URL per line, each terminated by a newline.
func Lines(urls []string) string {
	var b strings.Builder
	for _, u := range urls {
		b.WriteString(u)
		b.WriteByte('\n')
	}
	return b.String()
}

// CSV renders the header and one record per row
func CSV(rows []common.URLRow) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return "", fmt.Errorf("write csv record %q: %w", row.URL, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// TableRows wraps each list item as the Name of an otherwise empty row
func TableRows(items []string) []common.TableRow {
	rows := make([]common.TableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, common.TableRow{Name: item})
	}
	return rows
}

// Table renders rows as a three column Markdown table. Cell text is written
// as is; embedded newlines and pipes are not escaped.
func Table(rows []common.TableRow) string {
	var b strings.Builder
	b.WriteString(tableHeader)
	b.WriteString(tableSeparator)
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Name, row.Message, row.Category)
	}
	return b.String()
}
