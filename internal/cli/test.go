package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cube"
)

var testCmd = &cobra.Command{
	Use:   "test [scramble-length]",
	Short: "Construct a solved cube and optionally apply a random scramble to it",
	Long: `test builds the solved cube, displays it, and — if a scramble length
is given — applies that many random moves from the eighteen-move operative
set and displays the result alongside the inverse sequence that undoes it.

This is the spec's exploratory mode: it never invokes the solver.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useColor, _ := cmd.Flags().GetBool("color")

		solved := cube.NewSolvedCube()
		fmt.Println("Solved cube:")
		fmt.Print(renderCube(solved, useColor))
		fmt.Printf("Solved: %t\n", solved.IsSolved())

		if len(args) == 0 {
			return nil
		}
		var n int
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 0 {
			return fmt.Errorf("scramble length must be a non-negative integer, got %q", args[0])
		}

		scrambled, descs := cube.Scramble(n)
		fmt.Printf("\nAfter %d random moves (%s):\n", n, cube.FormatSequence(descs))
		fmt.Print(renderCube(scrambled, useColor))
		fmt.Printf("Solved: %t\n", scrambled.IsSolved())

		inverse := make([]cube.MoveDescription, len(descs))
		for i, d := range descs {
			inverse[len(descs)-1-i] = d.Inverse()
		}
		fmt.Printf("\nInverse sequence: %s\n", cube.FormatSequence(inverse))

		back := scrambled.ApplyAll(cubeMovesOf(inverse))
		fmt.Printf("Applying the inverse resolves: %t\n", back.IsSolved())
		return nil
	},
}

func cubeMovesOf(descs []cube.MoveDescription) []cube.Move {
	moves := make([]cube.Move, len(descs))
	for i, d := range descs {
		moves[i] = cube.Compile(d)
	}
	return moves
}

func init() {
	testCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
