package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/mdextract/internal/config"
	"github.com/go-scripts/mdextract/internal/failure"
	"github.com/go-scripts/mdextract/internal/logging"
	"github.com/go-scripts/mdextract/internal/pipeline"
	"github.com/go-scripts/mdextract/pkg/common"
)

var version = "dev"

// CLIFlags is the command line surface. Empty values leave the config file
// or default value in place.
type CLIFlags struct {
	Input string `arg:"" name:"input" help:"Markdown file to extract from."`

	ConfigFile       string        `name:"config" help:"Path to a YAML configuration file." placeholder:"PATH"`
	Format           string        `help:"Output format: txt, csv, table or html (default txt)." short:"f"`
	Dedupe           string        `help:"URL deduplication: auto, always or never (default auto, which only dedupes csv)."`
	OutputDir        string        `help:"Directory for the output file (default ./output for txt/csv, the input's directory for table/html)." short:"d"`
	Output           string        `help:"Explicit output file path. Its directory must exist." short:"o"`
	StripFrontMatter bool          `help:"Drop a leading YAML front matter block before extracting."`
	Delay            time.Duration `help:"Wait this long before processing."`
	MatchTimeout     time.Duration `help:"Timeout for a single regular expression match (default 5s)."`
	Preview          bool          `help:"Print the extracted rows as a table on stderr."`
	Progress         bool          `help:"Print a stage progress bar on stderr."`
	LogLevel         string        `help:"Log level: debug, info, warn or error (default info)."`
	Debug            bool          `help:"Enable debug logging and full error chains."`

	Version kong.VersionFlag `help:"Print the version and exit."`
}

// loadConfig reads the optional config file and applies flag overrides
func loadConfig(flags CLIFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.ConfigFile != "" {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.Input = flags.Input
	if flags.Format != "" {
		if f, ok := common.ParseFormat(flags.Format); ok {
			cfg.Format = f
		} else {
			cfg.Format = common.Format(flags.Format)
		}
	}
	if flags.Dedupe != "" {
		cfg.Dedupe = common.DedupeMode(flags.Dedupe)
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if flags.Output != "" {
		cfg.Output = flags.Output
	}
	if flags.Delay != 0 {
		cfg.Delay = flags.Delay
	}
	if flags.MatchTimeout != 0 {
		cfg.MatchTimeout = flags.MatchTimeout
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	cfg.StripFrontMatter = cfg.StripFrontMatter || flags.StripFrontMatter
	cfg.Preview = cfg.Preview || flags.Preview
	cfg.Progress = cfg.Progress || flags.Progress
	cfg.Debug = cfg.Debug || flags.Debug
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stderr io.Writer, now func() time.Time) int {
	var flags CLIFlags
	parser, err := kong.New(&flags,
		kong.Name("mdextract"),
		kong.Description("Extract links or list items from a Markdown file into a text list, CSV or table."),
		kong.Writers(stderr, stderr),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error building CLI: %v\n", err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error parsing flags: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		report(logging.New(stderr, "info"), err, false)
		return 1
	}
	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("configuration loaded", "input", cfg.Input, "format", cfg.Format, "dedupe", cfg.Dedupe)

	target, err := cfg.Resolve(now())
	if err != nil {
		report(logger, err, cfg.Debug)
		return 1
	}

	p, err := pipeline.New(cfg, target, logger, stderr)
	if err != nil {
		report(logger, err, cfg.Debug)
		return 1
	}
	res, err := p.Run(ctx)
	if err != nil {
		report(logger, err, cfg.Debug)
		return 1
	}
	logger.Info("done", "output", res.OutputPath, "extracted", res.Extracted, "written", res.Written)
	return 0
}

// report logs a single diagnostic for err. With debug on, every error in the
// chain is logged as well.
func report(logger *log.Logger, err error, debug bool) {
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted")
		return
	}
	logger.Error("run failed", "code", failure.Code(err), "err", err)
	if !debug {
		return
	}
	for depth, e := 0, errors.Unwrap(err); e != nil; depth, e = depth+1, errors.Unwrap(e) {
		logger.Debug("caused by", "depth", depth, "err", e)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr, time.Now)
	stop()
	os.Exit(code)
}
