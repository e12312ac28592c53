// Package pipeline runs one input file through read, extract, render and
// write. Each stage either hands its result to the next or stops the run
// with a classified error; nothing is written unless every stage succeeds.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/go-scripts/mdextract/internal/config"
	"github.com/go-scripts/mdextract/internal/extract"
	"github.com/go-scripts/mdextract/internal/failure"
	"github.com/go-scripts/mdextract/internal/progress"
	"github.com/go-scripts/mdextract/internal/render"
	"github.com/go-scripts/mdextract/internal/source"
	"github.com/go-scripts/mdextract/pkg/common"
	"github.com/go-scripts/mdextract/ui"
)

// Extractor is the extraction grammar a Pipeline runs
type Extractor interface {
	URLs(doc common.Document) ([]string, error)
	ListItems(doc common.Document) ([]string, error)
}

// Result summarizes a finished run
type Result struct {
	OutputPath string
	Extracted  int
	Removed    int
	Written    int
}

// Pipeline processes exactly one input into exactly one output
type Pipeline struct {
	cfg       config.Config
	target    config.Target
	extractor Extractor
	logger    *log.Logger
	tracker   *progress.Tracker
	out       io.Writer
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithExtractor replaces the regular expression extractor
func WithExtractor(e Extractor) Option {
	return func(p *Pipeline) {
		p.extractor = e
	}
}

// New builds a Pipeline for a resolved configuration. Progress bars, spinners
// and previews are written to out.
func New(cfg config.Config, target config.Target, logger *log.Logger, out io.Writer, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:     cfg,
		target:  target,
		logger:  logger,
		tracker: progress.New(out, cfg.Progress),
		out:     out,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.extractor == nil {
		e, err := extract.New(cfg.MatchTimeout)
		if err != nil {
			return nil, failure.Extraction(err, cfg.Input)
		}
		p.extractor = e
	}
	return p, nil
}

// Run executes every stage in order
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if p.cfg.Delay > 0 {
		p.logger.Info("waiting before processing", "delay", p.cfg.Delay)
		if err := progress.Wait(ctx, p.out, p.cfg.Delay, "waiting to process "+p.cfg.Input); err != nil {
			return Result{}, err
		}
	}

	doc, err := source.Read(p.cfg.Input, source.Options{StripFrontMatter: p.cfg.StripFrontMatter})
	if err != nil {
		return Result{}, failure.Input(err, p.cfg.Input)
	}
	p.logger.Info("read input", "path", doc.Path, "bytes", len(doc.Text))
	p.tracker.Advance("read")

	var (
		content string
		res     Result
	)
	if p.cfg.Format.ExtractsLinks() {
		content, res, err = p.links(doc)
	} else {
		content, res, err = p.table(doc)
	}
	if err != nil {
		return Result{}, err
	}

	path, err := p.target.Writer.Write(p.target.Name, content)
	if err != nil {
		return Result{}, failure.Output(err, p.target.Path())
	}
	p.tracker.Advance("write")
	p.logger.Info("wrote output", "path", path, "rows", res.Written)

	res.OutputPath = path
	return res, nil
}

func (p *Pipeline) links(doc common.Document) (string, Result, error) {
	urls, err := p.extractor.URLs(doc)
	if err != nil {
		return "", Result{}, failure.Extraction(err, doc.Path)
	}
	p.logger.Info("extracted urls", "count", len(urls))
	p.tracker.Advance("extract")

	res := Result{Extracted: len(urls)}
	if p.cfg.Dedupe.Enabled(p.cfg.Format) {
		var removed int
		urls, removed = extract.Dedupe(urls)
		res.Removed = removed
		p.logger.Info(fmt.Sprintf("removed %d duplicate urls", removed), "remaining", len(urls))
	}
	res.Written = len(urls)

	var content string
	switch p.cfg.Format {
	case common.FormatCSV:
		rows := extract.ProjectURLs(urls)
		content, err = render.CSV(rows)
		if err != nil {
			return "", Result{}, failure.Render(err)
		}
		if p.cfg.Preview {
			fmt.Fprintln(p.out, ui.URLPreview(rows))
		}
	default:
		content = render.Lines(urls)
		if p.cfg.Preview {
			fmt.Fprintln(p.out, ui.URLPreview(extract.ProjectURLs(urls)))
		}
	}
	p.tracker.Advance("render")
	p.logger.Debug("rendered output", "format", p.cfg.Format, "bytes", len(content))
	return content, res, nil
}

func (p *Pipeline) table(doc common.Document) (string, Result, error) {
	items, err := p.extractor.ListItems(doc)
	if err != nil {
		return "", Result{}, failure.Extraction(err, doc.Path)
	}
	p.logger.Info("extracted list items", "count", len(items))
	p.tracker.Advance("extract")

	rows := render.TableRows(items)
	content := render.Table(rows)
	if p.cfg.Format == common.FormatHTML {
		content, err = render.HTML(rows)
		if err != nil {
			return "", Result{}, failure.Render(err)
		}
	}
	if p.cfg.Preview {
		fmt.Fprintln(p.out, ui.TablePreview(rows))
	}
	p.tracker.Advance("render")
	p.logger.Debug("rendered output", "format", p.cfg.Format, "bytes", len(content))
	return content, Result{Extracted: len(items), Written: len(rows)}, nil
}
