package cmd

import (
	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine <add|or|and|xor> <a> <b>",
	Short: "Combine two colors",
	Long: `Combine two colors in the space of the first one. add averages the channels,
or/and/xor apply the bitwise operator per channel. XYZ colors only support add.`,
	Example: `  colorgrid combine add "rgba(255, 0, 0, 255)" "rgba(0, 255, 0, 255)"
  colorgrid combine or "hsb(0, 100, 64)" "#00ff00"`,
	Args: cobra.ExactArgs(3),
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	op, err := colormodel.ParseOp(args[0])
	if err != nil {
		return err
	}
	a, err := colormodel.Parse(args[1])
	if err != nil {
		return err
	}
	b, err := colormodel.Parse(args[2])
	if err != nil {
		return err
	}

	res, err := colormodel.Combine(op, a, b)
	if err != nil {
		return err
	}
	printColor(cmd.OutOrStdout(), res)
	return nil
}
