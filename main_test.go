package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/mdextract/internal/config"
	"github.com/go-scripts/mdextract/pkg/common"
)

func fixedClock() time.Time {
	return time.Date(2026, 5, 18, 9, 41, 7, 0, time.Local)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	links := "- [a](https://host/org/one)\n- [b](https://host/org/two)\n- [a](https://host/org/one)\n"
	list := "- item 1\n- item 2\n- item 3"

	tests := []struct {
		name     string
		content  string
		args     []string
		wantFile string
		want     string
	}{
		{
			name:     "txt keeps duplicates",
			content:  links,
			args:     []string{"--format", "txt"},
			wantFile: "20260518094107_input.txt",
			want:     "https://host/org/one\nhttps://host/org/two\nhttps://host/org/one\n",
		},
		{
			name:     "csv dedupes",
			content:  links,
			args:     []string{"-f", "csv"},
			wantFile: "20260518094107_input.csv",
			want:     "URL,Owner,Dataset Name\nhttps://host/org/one,org,one\nhttps://host/org/two,org,two\n",
		},
		{
			name:     "csv without dedupe",
			content:  links,
			args:     []string{"-f", "CSV", "--dedupe", "never"},
			wantFile: "20260518094107_input.csv",
			want:     "URL,Owner,Dataset Name\nhttps://host/org/one,org,one\nhttps://host/org/two,org,two\nhttps://host/org/one,org,one\n",
		},
		{
			name:     "table",
			content:  list,
			args:     []string{"--format", "table"},
			wantFile: "input-260518T09_41-table.md",
			want: "| Name | Message | Category |\n|------|---------|----------|\n" +
				"| item 1 |  |  |\n| item 2 |  |  |\n| item 3 |  |  |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeFile(t, filepath.Join(dir, "input.md"), tt.content)
			outDir := filepath.Join(dir, "out")

			var stderr bytes.Buffer
			args := append([]string{input, "--output-dir", outDir}, tt.args...)
			code := run(context.Background(), args, &stderr, fixedClock)
			require.Equal(t, 0, code, stderr.String())

			data, err := os.ReadFile(filepath.Join(outDir, tt.wantFile))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
			assert.Contains(t, stderr.String(), "wrote output")
		})
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	var stderr bytes.Buffer
	code := run(context.Background(),
		[]string{filepath.Join(dir, "missing.md"), "-f", "csv", "--output-dir", outDir},
		&stderr, fixedClock)

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "INPUT_INVALID")
	assert.NoDirExists(t, outDir)
}

func TestRunInputIsDirectory(t *testing.T) {
	dir := t.TempDir()

	var stderr bytes.Buffer
	code := run(context.Background(), []string{dir, "--output-dir", filepath.Join(dir, "out")}, &stderr, fixedClock)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "INPUT_INVALID")
}

func TestRunInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "input.md"), "- item")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{input, "-f", "xml"}, &stderr, fixedClock)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CONFIG_INVALID")
}

func TestRunBadFlag(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--no-such-flag"}, &stderr, fixedClock)
	assert.Equal(t, 2, code)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "input.md"), "- [a](https://host/x/y)\n- [a](https://host/x/y)\n")
	outDir := filepath.Join(dir, "exports")
	cfgPath := writeFile(t, filepath.Join(dir, "mdextract.yaml"),
		"format: csv\ndedupe: never\noutput_dir: "+outDir+"\n")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{input, "--config", cfgPath, "--dedupe", "always"}, &stderr, fixedClock)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(outDir, "20260518094107_input.csv"))
	require.NoError(t, err)
	assert.Equal(t, "URL,Owner,Dataset Name\nhttps://host/x/y,x,y\n", string(data), "flags override the file")
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(CLIFlags{
		Input:        "in.md",
		Format:       "Table",
		MatchTimeout: time.Second,
		Preview:      true,
		Debug:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "in.md", cfg.Input)
	assert.Equal(t, common.FormatTable, cfg.Format)
	assert.Equal(t, time.Second, cfg.MatchTimeout)
	assert.Equal(t, common.DedupeAuto, cfg.Dedupe)
	assert.True(t, cfg.Preview)
	assert.Equal(t, "debug", cfg.LogLevel)

	defaults, err := loadConfig(CLIFlags{Input: "in.md"})
	require.NoError(t, err)
	want := config.Default()
	want.Input = "in.md"
	assert.Equal(t, want, defaults)
}
