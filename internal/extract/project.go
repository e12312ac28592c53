package extract

import (
	"strings"

	"github.com/go-scripts/mdextract/pkg/common"
)

// ProjectURL splits a URL on "/" and uses its last two path segments as owner
// and dataset name. The split is positional: nothing is decoded and any query
// string stays on the last segment. Fewer than two path segments yields empty
// owner and dataset name.
func ProjectURL(url string) common.URLRow {
	row := common.URLRow{URL: url}

	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	// scheme://host/... splits into "scheme:", "", "host", path...
	if len(parts) >= 3 && strings.HasSuffix(parts[0], ":") && parts[1] == "" {
		parts = parts[3:]
	}

	var segments []string
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) >= 2 {
		row.Owner = segments[len(segments)-2]
		row.DatasetName = segments[len(segments)-1]
	}
	return row
}

// ProjectURLs maps ProjectURL over urls, one row per URL in input order.
func ProjectURLs(urls []string) []common.URLRow {
	rows := make([]common.URLRow, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, ProjectURL(u))
	}
	return rows
}
