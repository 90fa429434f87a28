package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Tech/colorgrid/internal/batch"
	"github.com/MeKo-Tech/colorgrid/internal/mask"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a masked grid from console input",
	Long: `Read a grid size, fill color, mask size and mask cells from standard input,
print the resulting grid and save it under a file name read last.

Prompts are only printed when standard input is a terminal, so a job file can
also be piped in.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().Int("step", mask.DefaultStep, "Brightness reduction for masked pixels (0 disables darkening)")

	bindFlags(interactiveCmd, []flagBinding{
		{"interactive.step", "step"},
	})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	step := viper.GetInt("interactive.step")
	if step < 0 {
		return fmt.Errorf("invalid step %d: must not be negative", step)
	}

	in := cmd.InOrStdin()
	return interact(in, cmd.OutOrStdout(), promptWriter(in, cmd.OutOrStdout()),
		viper.GetString("output-dir"), step)
}

// promptWriter returns out when in is an interactive terminal and nil
// otherwise, so piped input runs without prompts.
func promptWriter(in io.Reader, out io.Writer) io.Writer {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return out
}

// interact runs one console session: read the job, show the grid, ask for
// a name and save. prompts may be nil.
func interact(in io.Reader, out, prompts io.Writer, outputDir string, step int) error {
	if logger == nil {
		initLogging()
	}

	p := batch.NewPrompter(in, prompts)
	job, err := p.Job()
	if err != nil {
		return fmt.Errorf("failed to read job: %w", err)
	}

	g, changed := job.Run(step)
	logger.Debug("Mask applied", "rows", g.Rows(), "cols", g.Cols(), "masked", changed)

	if err := g.WriteText(out); err != nil {
		return err
	}

	name, err := p.OutputName()
	if err != nil {
		return fmt.Errorf("failed to read output name: %w", err)
	}

	proc := batch.NewProcessor(batch.ProcessorConfig{OutputDir: outputDir, Logger: logger})
	path, err := proc.OutputPath(name)
	if err != nil {
		return err
	}
	if err := g.SaveText(path); err != nil {
		return err
	}

	logger.Info("Grid saved", "path", path)
	return nil
}
