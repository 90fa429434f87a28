package cmd

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another color space",
	Long: `Convert a color to another space and print it with its packed integer and
luminance. Without --to, the color is printed in every space.

Colors are written as rgb(r, g, b), rgba(r, g, b, a), hsb(h, s, b),
cmyk(c, m, y, k), xyz(x, y, z) or #rrggbb[aa].`,
	Example: `  colorgrid convert "rgb(255, 0, 0)" --to hsb
  colorgrid convert "#00ff00"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("to", "", "Target space: rgba, hsb, cmyk or xyz (default: all)")

	bindFlags(convertCmd, []flagBinding{
		{"convert.to", "to"},
	})
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colormodel.Parse(args[0])
	if err != nil {
		return err
	}

	targets := colormodel.Spaces
	if to := viper.GetString("convert.to"); to != "" {
		space, err := colormodel.ParseSpace(to)
		if err != nil {
			return err
		}
		targets = []colormodel.Space{space}
	}

	for _, space := range targets {
		converted, err := colormodel.Convert(c, space)
		if err != nil {
			return err
		}
		printColor(cmd.OutOrStdout(), converted)
	}
	return nil
}

func printColor(w io.Writer, c colormodel.Color) {
	fmt.Fprintf(w, "%-32s integer=%-10d luminance=%.2f\n", c, c.Integer(), c.Luminance())
}
