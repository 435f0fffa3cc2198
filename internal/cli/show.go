package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Display a cube state without solving it",
	Long: `show displays the solved cube, a cube produced by applying a move
sequence to it, or an arbitrary state given with --start as a CFEN string.

Examples:
  cube show
  cube show "R U R' U'"
  cube show --start "WG|W9/R9/G9/Y9/O9/B9" --cfen`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
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

		if scramble != "" {
			moves, err := cube.CompileSequence(scramble)
			if err != nil {
				return fmt.Errorf("parsing scramble: %w", err)
			}
			c = c.ApplyAll(moves)
		}

		if useCfenOut {
			fmt.Println(cfen.Generate(c))
			return nil
		}

		if scramble != "" {
			fmt.Printf("Cube state after %s:\n\n", scramble)
		} else {
			fmt.Println("Cube state:")
		}
		fmt.Print(renderCube(c, useColor))
		fmt.Printf("Solved: %t\n", c.IsSolved())
		return nil
	},
}

func init() {
	showCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
	showCmd.Flags().Bool("cfen", false, "Print the state as a CFEN string instead of a rendered net")
}
