package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned when an output directory path exists but is a file
var ErrNotDirectory = errors.New("not a directory")

// FileWriter writes rendered output into a single directory
type FileWriter struct {
	outputDir string
}

// New creates a FileWriter, creating outputDir and its parents if missing
func New(outputDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// Open creates a FileWriter for a directory that must already exist
func Open(outputDir string) (*FileWriter, error) {
	info, err := os.Stat(outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory %q: %w", outputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory %q: %w", outputDir, ErrNotDirectory)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// Dir returns the directory files are written into
func (w *FileWriter) Dir() string {
	return w.outputDir
}

// Write creates or truncates name inside the output directory and returns
// the full path written.
func (w *FileWriter) Write(name, content string) (string, error) {
	path := filepath.Join(w.outputDir, name)
	if err := WriteFile(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile creates or truncates path and writes content. The parent
// directory is not created.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
