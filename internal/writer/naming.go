package writer

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/go-scripts/mdextract/pkg/common"
)

const (
	// timestampLayout prefixes link list outputs: YYYYMMDDHHMMSS
	timestampLayout = "20060102150405"
	// dateLayout suffixes table outputs: yyMMddTHH:mm, sanitized before use
	dateLayout = "060102T15:04"
)

var unsafeChars = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// SanitizeFilename replaces each of < > : " / \ | ? * with an underscore
func SanitizeFilename(name string) string {
	return unsafeChars.Replace(name)
}

// OutputName derives the output file name for input rendered as format f.
// Link outputs are prefixed with a timestamp; table outputs get a date
// suffix and a -table marker.
func OutputName(input string, f common.Format, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(input), ".md")
	if f.ExtractsLinks() {
		return now.Format(timestampLayout) + "_" + base + f.Extension()
	}
	return base + "-" + SanitizeFilename(now.Format(dateLayout)) + "-table" + f.Extension()
}
