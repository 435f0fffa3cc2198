package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply a move sequence to a cube and display the result",
	Long: `twist applies a move sequence to the solved cube (or, with --start, to
a CFEN-specified starting state) and displays the outcome. Unlike solve, it
never searches for a solution — it just shows what the moves do, which is
useful for exploring algorithms by hand.

Examples:
  cube twist "R1 U1 R3 U3"
  cube twist "F2" --start "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movesText := args[0]
		startText, _ := cmd.Flags().GetString("start")
		useColor, _ := cmd.Flags().GetBool("color")
		useCfenOut, _ := cmd.Flags().GetBool("cfen")

		var c cube.Cube
		if startText != "" {
			state, err := cfen.Parse(startText)
			if err != nil {
				return fmt.Errorf("parsing --start CFEN: %w", err)
			}
			c, err = state.ToCube()
			if err != nil {
				return fmt.Errorf("converting --start CFEN to a cube: %w", err)
			}
		} else {
			c = cube.NewSolvedCube()
		}

		moves, err := cube.CompileSequence(movesText)
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}
		c = c.ApplyAll(moves)

		if useCfenOut {
			fmt.Println(cfen.Generate(c))
			return nil
		}

		fmt.Printf("After applying %s (%d moves):\n\n", movesText, len(moves))
		fmt.Print(renderCube(c, useColor))
		fmt.Printf("Solved: %t\n", c.IsSolved())
		return nil
	},
}

func init() {
	twistCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output")
	twistCmd.Flags().Bool("cfen", false, "Print the result as a CFEN string instead of a rendered net")
}
