// Package extract holds the two extraction grammars: inline-link URLs and
// top-level list items. Both run as a single regular expression pass over a
// whole document.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/go-scripts/mdextract/pkg/common"
)

const (
	// linkPattern matches [label](http(s)://url). The label is non-greedy and
	// stays on one line; the URL runs to the last ")" of its non-space run.
	linkPattern = `\[.*?\]\((https?://[^\s]+)\)`

	// listItemPattern matches a "-" marker at line start followed by spaces or
	// tabs, then every following line that does not open another item.
	listItemPattern = `^-[ \t]+(.*(?:\n(?!-[ \t]).*)*)`
)

// DefaultMatchTimeout bounds a single match attempt
const DefaultMatchTimeout = 5 * time.Second

// Extractor runs the link and list item grammars with a shared match timeout.
// An Extractor is not safe for concurrent use.
type Extractor struct {
	links *regexp2.Regexp
	items *regexp2.Regexp
}

// New compiles both grammars. A zero timeout disables the per-match limit.
func New(timeout time.Duration) (*Extractor, error) {
	links, err := regexp2.Compile(linkPattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile link pattern: %w", err)
	}
	items, err := regexp2.Compile(listItemPattern, regexp2.Multiline)
	if err != nil {
		return nil, fmt.Errorf("compile list item pattern: %w", err)
	}
	if timeout > 0 {
		links.MatchTimeout = timeout
		items.MatchTimeout = timeout
	}
	return &Extractor{links: links, items: items}, nil
}

// URLs returns every URL found inside inline link syntax, in document order.
func (e *Extractor) URLs(doc common.Document) ([]string, error) {
	urls, err := findAll(e.links, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("extract urls from %s: %w", doc.Path, err)
	}
	return urls, nil
}

// ListItems returns the text of every top-level list item in document order.
// Continuation lines are kept verbatim; trailing line breaks are dropped.
func (e *Extractor) ListItems(doc common.Document) ([]string, error) {
	items, err := findAll(e.items, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("extract list items from %s: %w", doc.Path, err)
	}
	for i, item := range items {
		items[i] = strings.TrimRight(item, "\r\n")
	}
	return items, nil
}

// findAll collects capture group 1 of every non-overlapping match
func findAll(re *regexp2.Regexp, text string) ([]string, error) {
	out := make([]string, 0)
	m, err := re.FindStringMatch(text)
	for m != nil {
		out = append(out, m.GroupByNumber(1).String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
