package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms a start CFEN pattern into a target CFEN pattern",
	Long: `verify applies a move sequence to a --start state (default: solved) and
checks the result against a --target pattern. Both patterns support the '?'
wildcard, which matches any sticker, so a target can describe just the
pieces an algorithm is meant to affect.

Examples:
  cube verify "R1 U1 R3 U1 R1 U2 R3" --target "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := args[0]
		startText, _ := cmd.Flags().GetString("start")
		targetText, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		useColor, _ := cmd.Flags().GetBool("color")

		if startText == "" {
			startText = cfen.Generate(cube.NewSolvedCube())
		}
		if targetText == "" {
			targetText = cfen.Generate(cube.NewSolvedCube())
		}

		startState, err := cfen.Parse(startText)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
		targetState, err := cfen.Parse(targetText)
		if err != nil {
			return fmt.Errorf("parsing --target: %w", err)
		}
		c, err := startState.ToCube()
		if err != nil {
			return fmt.Errorf("converting --start to a cube: %w", err)
		}

		if verbose {
			fmt.Println("Start state:")
			fmt.Print(renderCube(c, useColor))
		}

		moves, err := cube.CompileSequence(algorithm)
		if err != nil {
			return fmt.Errorf("parsing algorithm: %w", err)
		}
		c = c.ApplyAll(moves)

		if verbose {
			fmt.Printf("\nAfter %s:\n", algorithm)
			fmt.Print(renderCube(c, useColor))
		}

		if targetState.Matches(c) {
			fmt.Printf("PASS: %s transforms %s into %s\n", algorithm, startText, targetText)
			return nil
		}
		fmt.Printf("FAIL: %s does not reach the target pattern\n", algorithm)
		fmt.Printf("  start:  %s\n", startText)
		fmt.Printf("  target: %s\n", targetText)
		fmt.Printf("  actual: %s\n", cfen.Generate(c))
		return fmt.Errorf("verification failed")
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN pattern (default: solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN pattern, '?' stickers match anything (default: solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show the cube before and after the algorithm")
	verifyCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
