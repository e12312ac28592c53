package common

import "strings"

// Format selects both the extractor and the renderer for one run
type Format string

const (
	FormatText  Format = "txt"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
	FormatHTML  Format = "html"
)

// Formats lists every supported output format in help order
var Formats = []Format{FormatText, FormatCSV, FormatTable, FormatHTML}

// ParseFormat normalizes a user supplied format name. The boolean is false
// for unknown names.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// ExtractsLinks reports whether the format is fed by the inline-link extractor.
// The remaining formats are fed by the list item extractor.
func (f Format) ExtractsLinks() bool {
	return f == FormatText || f == FormatCSV
}

// Extension is the file extension used for derived output names
func (f Format) Extension() string {
	switch f {
	case FormatTable:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return "." + string(f)
	}
}

// DedupeMode controls URL deduplication before rendering
type DedupeMode string

const (
	DedupeAuto   DedupeMode = "auto"
	DedupeAlways DedupeMode = "always"
	DedupeNever  DedupeMode = "never"
)

// Enabled resolves the mode for a format. Auto only deduplicates CSV output.
func (m DedupeMode) Enabled(f Format) bool {
	switch m {
	case DedupeAlways:
		return true
	case DedupeNever:
		return false
	default:
		return f == FormatCSV
	}
}

// Document is the full text of one input file. It is read once and never
// modified afterwards.
type Document struct {
	Path string
	Text string
}

// URLRow is the CSV projection of one extracted URL
type URLRow struct {
	URL         string
	Owner       string
	DatasetName string
}

// Record returns the row in CSV column order
func (r URLRow) Record() []string {
	return []string{r.URL, r.Owner, r.DatasetName}
}

// TableRow is one row of the annotation table. Message and Category are
// left empty for manual annotation.
type TableRow struct {
	Name     string
	Message  string
	Category string
}
