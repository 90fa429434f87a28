package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/colorgrid/internal/batch"
	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/MeKo-Tech/colorgrid/internal/grid"
	"github.com/MeKo-Tech/colorgrid/internal/mask"
	"github.com/MeKo-Tech/colorgrid/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var applyCmd = &cobra.Command{
	Use:   "apply [files...]",
	Short: "Run mask job files",
	Long: `Run one or more job files in parallel. Each file describes a grid size, a fill
color, a mask and an output name; the resulting grid is written as a text dump
inside the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	applyCmd.Flags().Bool("progress", true, "Show progress bar")
	applyCmd.Flags().Bool("allow-failures", false, "Exit successfully even if some jobs fail")
	applyCmd.Flags().Bool("display", false, "Print every written grid to stdout")
	applyCmd.Flags().Int("step", mask.DefaultStep, "Brightness reduction for masked pixels (0 disables darkening)")

	bindFlags(applyCmd, []flagBinding{
		{"apply.workers", "workers"},
		{"apply.progress", "progress"},
		{"apply.allow_failures", "allow-failures"},
		{"apply.display", "display"},
		{"apply.step", "step"},
	})
}

func runApply(cmd *cobra.Command, args []string) error {
	workers := viper.GetInt("apply.workers")
	showProgress := viper.GetBool("apply.progress")
	allowFailures := viper.GetBool("apply.allow_failures")
	display := viper.GetBool("apply.display")
	step := viper.GetInt("apply.step")
	outputDir := viper.GetString("output-dir")

	if logger == nil {
		initLogging()
	}

	if step < 0 {
		return fmt.Errorf("invalid step %d: must not be negative", step)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("Starting batch",
		"jobs", len(args),
		"workers", workers,
		"output_dir", outputDir,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tasks := make([]worker.Task, 0, len(args))
	for _, path := range args {
		tasks = append(tasks, worker.Task{Path: path})
	}

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers: workers,
		Processor: batch.NewProcessor(batch.ProcessorConfig{
			OutputDir: outputDir,
			Step:      step,
			Logger:    logger,
		}),
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	failed := worker.Failed(results)
	for _, r := range failed {
		logger.Error("Job failed", "job", r.Task.Path, "error", r.Err)
	}

	logger.Info(progress.Summary())

	if display {
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			if err := displayDump(cmd, r.Output); err != nil {
				return err
			}
		}
	}

	if len(failed) > 0 {
		if allowFailures {
			logger.Warn("Some jobs failed, but continuing due to --allow-failures flag", "failed_count", len(failed))
			return nil
		}
		return fmt.Errorf("%d of %d jobs failed", len(failed), len(tasks))
	}
	return nil
}

// displayDump re-reads a written dump and prints it under a header line.
func displayDump(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	g, err := grid.ReadText(f, colormodel.SpaceRGBA)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s (%dx%d)\n", path, g.Rows(), g.Cols())
	return g.WriteText(out)
}
