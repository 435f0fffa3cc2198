package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/pdb"
	"github.com/ehrlich-b/cube/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve N",
	Short: "Scramble N random moves, load the Korf heuristic, and solve optimally",
	Long: `solve applies N random moves to the solved cube (or, with --start, to a
CFEN-specified starting state), loads the combined Korf pattern database
from disk, and runs the parallel IDA* search for a shortest move sequence
back to solved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var n int
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 0 {
			return fmt.Errorf("N must be a non-negative integer, got %q", args[0])
		}

		korfPath, _ := cmd.Flags().GetString("korf")
		startText, _ := cmd.Flags().GetString("start")
		useColor, _ := cmd.Flags().GetBool("color")
		useCfenOut, _ := cmd.Flags().GetBool("cfen")
		showStats, _ := cmd.Flags().GetBool("stats")

		start, scrambleDesc, err := startingCube(startText, n)
		if err != nil {
			return err
		}

		if !useCfenOut {
			fmt.Printf("Scramble: %s\n", scrambleDesc)
			fmt.Print(renderCube(start, useColor))
		}

		corners, lower, upper, err := pdb.LoadKorf(korfPath)
		if err != nil {
			return fmt.Errorf("loading korf heuristic from %s (run `cube generate` first): %w", korfPath, err)
		}
		cornerEnc := pdb.NewCornerEncoder()
		lowerEnc := pdb.NewLowerMiddleEncoder()
		upperEnc := pdb.NewUpperMiddleEncoder()
		if len(corners) != cornerEnc.ImageSize() || len(lower) != lowerEnc.ImageSize() || len(upper) != upperEnc.ImageSize() {
			return fmt.Errorf("pdb: loaded table length disagrees with encoder image size, file is corrupted")
		}

		korf := &pdb.Korf{
			Corners:      &pdb.TableHeuristic{Encoder: cornerEnc, Table: corners},
			LowerMiddles: &pdb.TableHeuristic{Encoder: lowerEnc, Table: lower},
			UpperMiddles: &pdb.TableHeuristic{Encoder: upperEnc, Table: upper},
		}

		var h pdb.Heuristic = korf
		counting := &pdb.Counting{Inner: korf}
		if showStats {
			h = counting
		}

		t0 := time.Now()
		path, stats := solver.Solve(start, h)
		elapsed := time.Since(t0)

		result := start.ApplyAll(cubeMovesOf(path))

		if useCfenOut {
			fmt.Println(cfen.Generate(result))
			return nil
		}

		fmt.Printf("\nSolution (%d moves): %s\n", len(path), cube.FormatSequence(path))
		fmt.Printf("Solved: %t\n", result.IsSolved())
		fmt.Printf("Time: %v\n", elapsed)
		if showStats {
			fmt.Printf("Cubes expanded: %d\n", stats.CubesExpanded)
			fmt.Printf("Heuristic calls: %d\n", counting.Calls)
			fmt.Printf("Depth iterations: %d\n", stats.DepthIterations)
		}
		return nil
	},
}

// startingCube builds the cube to solve: either parsed from a CFEN string,
// or the solved cube scrambled by n random moves.
func startingCube(startText string, n int) (cube.Cube, string, error) {
	if startText != "" {
		state, err := cfen.Parse(startText)
		if err != nil {
			return cube.Cube{}, "", fmt.Errorf("parsing --start CFEN: %w", err)
		}
		c, err := state.ToCube()
		if err != nil {
			return cube.Cube{}, "", fmt.Errorf("converting --start CFEN to a cube: %w", err)
		}
		return c, startText, nil
	}
	c, descs := cube.Scramble(n)
	return c, cube.FormatSequence(descs), nil
}

func init() {
	solveCmd.Flags().String("korf", filepath.Join("data", "korf_heuristic.bin"), "Path to the combined korf heuristic file")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (overrides the N-move scramble)")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output")
	solveCmd.Flags().Bool("cfen", false, "Print only the solved state's CFEN string")
	solveCmd.Flags().Bool("stats", false, "Print cubes-expanded and heuristic-call counts")
}
