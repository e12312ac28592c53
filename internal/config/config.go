// Package config builds the single configuration value a run is driven by.
// Values come from defaults, then an optional YAML file, then command line
// flags. Validation and output directory preparation happen in Resolve, at
// the start of a run, never at package load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/go-scripts/mdextract/internal/failure"
	"github.com/go-scripts/mdextract/internal/writer"
	"github.com/go-scripts/mdextract/pkg/common"
)

const (
	// DefaultLinkOutputDir receives txt and csv outputs when no directory is set
	DefaultLinkOutputDir = "output"

	DefaultMatchTimeout = 5 * time.Second
)

// LogLevels lists the accepted log_level values
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds every setting of one run
type Config struct {
	Input            string            `yaml:"-"`
	Format           common.Format     `yaml:"format"`
	Dedupe           common.DedupeMode `yaml:"dedupe"`
	OutputDir        string            `yaml:"output_dir"`
	Output           string            `yaml:"output"`
	StripFrontMatter bool              `yaml:"strip_front_matter"`
	Delay            time.Duration     `yaml:"delay"`
	MatchTimeout     time.Duration     `yaml:"match_timeout"`
	Preview          bool              `yaml:"preview"`
	Progress         bool              `yaml:"progress"`
	LogLevel         string            `yaml:"log_level"`
	Debug            bool              `yaml:"debug"`
}

// Default returns the configuration used when neither a file nor flags set a value
func Default() Config {
	return Config{
		Format:       common.FormatText,
		Dedupe:       common.DedupeAuto,
		MatchTimeout: DefaultMatchTimeout,
		LogLevel:     "info",
	}
}

// Load reads a YAML configuration file over the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, failure.Config(fmt.Errorf("config: read %s: %w", path, err))
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, failure.Config(fmt.Errorf("config: parse %s: %w", path, err))
	}
	return cfg, nil
}

// Validate checks field values and that the input names an existing file
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.Required, validation.In(toAny(common.Formats)...)),
		validation.Field(&c.Dedupe, validation.Required,
			validation.In(common.DedupeAuto, common.DedupeAlways, common.DedupeNever)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(toAny(LogLevels)...)),
		validation.Field(&c.Delay, validation.Min(time.Duration(0))),
		validation.Field(&c.MatchTimeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return failure.Config(err)
	}

	if err := validation.Validate(c.Input, validation.Required, validation.By(isFile)); err != nil {
		return failure.InvalidInput(err, c.Input)
	}
	return nil
}

func isFile(value any) error {
	path, _ := value.(string)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("does not exist")
		}
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	return nil
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Target is where a run writes its output
type Target struct {
	Writer *writer.FileWriter
	Name   string
}

// Path returns the full output path
func (t Target) Path() string {
	return filepath.Join(t.Writer.Dir(), t.Name)
}

// Resolve validates the configuration and prepares the output target.
// Link formats create their output directory; table formats written beside
// the input require that directory to exist already.
func (c Config) Resolve(now time.Time) (Target, error) {
	if err := c.Validate(); err != nil {
		return Target{}, err
	}

	if c.Output != "" {
		w, err := writer.Open(filepath.Dir(c.Output))
		if err != nil {
			return Target{}, failure.Config(fmt.Errorf("config: output %s: %w", c.Output, err))
		}
		return Target{Writer: w, Name: filepath.Base(c.Output)}, nil
	}

	name := writer.OutputName(c.Input, c.Format, now)
	dir := strings.TrimSpace(c.OutputDir)

	var (
		w   *writer.FileWriter
		err error
	)
	switch {
	case dir != "":
		w, err = writer.New(dir)
	case c.Format.ExtractsLinks():
		w, err = writer.New(DefaultLinkOutputDir)
	default:
		inputDir := filepath.Dir(c.Input)
		if abs, absErr := filepath.Abs(c.Input); absErr == nil {
			inputDir = filepath.Dir(abs)
		}
		w, err = writer.Open(inputDir)
	}
	if err != nil {
		return Target{}, failure.Config(fmt.Errorf("config: prepare output directory: %w", err))
	}
	return Target{Writer: w, Name: name}, nil
}
