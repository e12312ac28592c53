// Package source loads the Markdown document a run extracts from.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/go-scripts/mdextract/pkg/common"
)

var (
	// ErrIsDirectory is returned when the input path names a directory
	ErrIsDirectory = errors.New("input is a directory")
	// ErrNotUTF8 is returned when the input bytes are not valid UTF-8
	ErrNotUTF8 = errors.New("input is not valid UTF-8")
)

// yamlFrontMatter only recognizes "---" fenced YAML blocks. The library's
// default set would also treat a leading "{" as JSON front matter.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Options tunes how a document is loaded
type Options struct {
	// StripFrontMatter drops a leading YAML front matter block
	StripFrontMatter bool
}

// Read loads path as a Document
func Read(path string, opts Options) (common.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return common.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return common.Document{}, fmt.Errorf("read %s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return common.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return common.Document{}, fmt.Errorf("read %s: %w", path, ErrNotUTF8)
	}

	if opts.StripFrontMatter {
		data, err = StripFrontMatter(data)
		if err != nil {
			return common.Document{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return common.Document{Path: path, Text: string(data)}, nil
}

// StripFrontMatter returns the body that follows a leading YAML front matter
// block. Content without front matter is returned unchanged.
func StripFrontMatter(data []byte) ([]byte, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta, yamlFrontMatter)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	return body, nil
}
