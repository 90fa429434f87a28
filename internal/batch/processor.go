package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ProcessorConfig configures a Processor.
type ProcessorConfig struct {
	// OutputDir is where text dumps are written. Job output names are
	// resolved relative to it.
	OutputDir string

	// Step is the brightness reduction for masked pixels. Negative selects
	// mask.DefaultStep; 0 disables darkening.
	Step int

	Logger *slog.Logger
}

// Processor runs job files and saves their results.
type Processor struct {
	outputDir string
	step      int
	logger    *slog.Logger
}

func NewProcessor(cfg ProcessorConfig) *Processor {
	return &Processor{
		outputDir: cfg.OutputDir,
		step:      cfg.Step,
		logger:    cfg.Logger,
	}
}

// Process parses the job file at path, runs it and writes the text dump.
// It returns the path of the written dump.
func (p *Processor) Process(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open job %s: %w", path, err)
	}
	job, err := Parse(f)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("failed to parse job %s: %w", path, err)
	}

	out, err := p.OutputPath(job.Output)
	if err != nil {
		return "", fmt.Errorf("job %s: %w", path, err)
	}

	start := time.Now()
	g, changed := job.Run(p.step)

	if err := g.SaveText(out); err != nil {
		return "", err
	}

	p.log().Debug("Job complete",
		"job", path,
		"output", out,
		"rows", g.Rows(),
		"cols", g.Cols(),
		"masked", changed,
		"elapsed", time.Since(start),
	)
	return out, nil
}

// OutputPath resolves a job's output name inside the output directory.
// Names that would escape the directory are rejected.
func (p *Processor) OutputPath(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("invalid output name %q: must be a relative path inside the output directory", name)
	}
	return filepath.Join(p.outputDir, name), nil
}

func (p *Processor) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}
