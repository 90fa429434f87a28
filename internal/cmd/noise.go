package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/colorgrid/internal/batch"
	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/MeKo-Tech/colorgrid/internal/mask"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Darken a filled grid through a Perlin noise mask",
	Long: `Fill a grid with a color, build a mask of the same size from Perlin noise and
apply it. Cells where the normalized noise reaches --threshold are darkened.`,
	Args: cobra.NoArgs,
	RunE: runNoise,
}

func init() {
	rootCmd.AddCommand(noiseCmd)

	noiseCmd.Flags().Int("rows", 16, "Grid rows")
	noiseCmd.Flags().Int("cols", 16, "Grid columns")
	noiseCmd.Flags().String("fill", "rgba(100, 150, 200, 255)", "Fill color (any notation accepted by convert)")
	noiseCmd.Flags().Float64("scale", 8, "Noise feature size in cells")
	noiseCmd.Flags().Float64("threshold", 0.5, "Normalized noise level at which a cell is masked")
	noiseCmd.Flags().Int64("seed", 1337, "Deterministic noise seed")
	noiseCmd.Flags().Int("step", mask.DefaultStep, "Brightness reduction for masked pixels (0 disables darkening)")
	noiseCmd.Flags().StringP("output", "o", "noise.txt", "Output file name inside the output directory")
	noiseCmd.Flags().Bool("display", false, "Print the grid to stdout")

	bindFlags(noiseCmd, []flagBinding{
		{"noise.rows", "rows"},
		{"noise.cols", "cols"},
		{"noise.fill", "fill"},
		{"noise.scale", "scale"},
		{"noise.threshold", "threshold"},
		{"noise.seed", "seed"},
		{"noise.step", "step"},
		{"noise.output", "output"},
		{"noise.display", "display"},
	})
}

func runNoise(cmd *cobra.Command, args []string) error {
	rows := viper.GetInt("noise.rows")
	cols := viper.GetInt("noise.cols")
	fill := viper.GetString("noise.fill")
	scale := viper.GetFloat64("noise.scale")
	threshold := viper.GetFloat64("noise.threshold")
	seed := viper.GetInt64("noise.seed")
	step := viper.GetInt("noise.step")
	output := viper.GetString("noise.output")
	display := viper.GetBool("noise.display")

	if logger == nil {
		initLogging()
	}

	if step < 0 {
		return fmt.Errorf("invalid step %d: must not be negative", step)
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("invalid grid size %dx%d: must not be negative", rows, cols)
	}

	c, err := colormodel.Parse(fill)
	if err != nil {
		return fmt.Errorf("invalid fill color: %w", err)
	}

	job := batch.Job{
		Rows: rows,
		Cols: cols,
		Fill: c.ToRGBA(),
		Mask: mask.FromNoise(rows, cols, scale, threshold, seed),
	}
	g, changed := job.Run(step)

	proc := batch.NewProcessor(batch.ProcessorConfig{OutputDir: viper.GetString("output-dir"), Logger: logger})
	path, err := proc.OutputPath(output)
	if err != nil {
		return err
	}
	if err := g.SaveText(path); err != nil {
		return err
	}

	logger.Info("Noise grid saved",
		"path", path,
		"rows", rows,
		"cols", cols,
		"masked", changed,
		"seed", seed,
	)

	if display {
		return g.WriteText(cmd.OutOrStdout())
	}
	return nil
}
