package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/go-scripts/mdextract/pkg/common"
)

// HTML renders the Markdown table through goldmark with the GFM table
// extension. Raw HTML inside items is omitted by the renderer.
func HTML(rows []common.TableRow) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Table(rows)), &buf); err != nil {
		return "", fmt.Errorf("convert table to html: %w", err)
	}
	return buf.String(), nil
}
