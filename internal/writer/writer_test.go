package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/mdextract/pkg/common"
)

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	w, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir)
	require.NoError(t, err)

	_, err = Open(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = Open(file)
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestWriteOverwrites(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write("out.txt", "first content\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir(), "out.txt"), path)

	_, err = w.Write("out.txt", "second\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWriteFileMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.md")
	err := WriteFile(path, "content")
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"test:file/name":    "test_file_name",
		"valid_filename":    "valid_filename",
		"invalid|name":      "invalid_name",
		`a<b>c"d\e?f*g`:     "a_b_c_d_e_f_g",
		"260518T09:41":      "260518T09_41",
		"already-safe.name": "already-safe.name",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SanitizeFilename(in))
		})
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2026, 5, 18, 9, 41, 7, 0, time.Local)
	tests := []struct {
		input  string
		format common.Format
		want   string
	}{
		{"notes/datasets.md", common.FormatText, "20260518094107_datasets.txt"},
		{"/abs/path/datasets.md", common.FormatCSV, "20260518094107_datasets.csv"},
		{"readme.markdown", common.FormatCSV, "20260518094107_readme.markdown.csv"},
		{"notes/tools.md", common.FormatTable, "tools-260518T09_41-table.md"},
		{"tools.md", common.FormatHTML, "tools-260518T09_41-table.html"},
	}
	for _, tt := range tests {
		t.Run(tt.input+"/"+string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, OutputName(tt.input, tt.format, now))
		})
	}
}
