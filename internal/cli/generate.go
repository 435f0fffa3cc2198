package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/pdb"
	"github.com/ehrlich-b/cube/internal/pdbstore"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build all three pattern databases and write them to disk",
	Long: `generate runs the parallel iterative-deepening fill for the corner
encoder and both middle (edge) encoders, writes each to its own file plus a
combined Korf file that references all three, and archives a build-history
row per table in the sqlite audit log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("out")
		dbPath, _ := cmd.Flags().GetString("db")

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}

		store, err := pdbstore.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening build audit database: %w", err)
		}
		defer store.Close()

		cornerEnc := pdb.NewCornerEncoder()
		lowerEnc := pdb.NewLowerMiddleEncoder()
		upperEnc := pdb.NewUpperMiddleEncoder()

		corners, err := buildAndArchive(store, "corners", cornerEnc, pdb.KindCorners)
		if err != nil {
			return err
		}
		lower, err := buildAndArchive(store, "lower-middles", lowerEnc, pdb.KindLowerMiddles)
		if err != nil {
			return err
		}
		upper, err := buildAndArchive(store, "upper-middles", upperEnc, pdb.KindUpperMiddles)
		if err != nil {
			return err
		}

		if err := pdb.SaveTable(filepath.Join(dir, "corners_heuristic.bin"), pdb.KindCorners, corners); err != nil {
			return fmt.Errorf("writing corners table: %w", err)
		}
		if err := pdb.SaveTable(filepath.Join(dir, "lower_middles_heuristic.bin"), pdb.KindLowerMiddles, lower); err != nil {
			return fmt.Errorf("writing lower-middles table: %w", err)
		}
		if err := pdb.SaveTable(filepath.Join(dir, "upper_middles_heuristic.bin"), pdb.KindUpperMiddles, upper); err != nil {
			return fmt.Errorf("writing upper-middles table: %w", err)
		}
		if err := pdb.SaveKorf(filepath.Join(dir, "korf_heuristic.bin"), corners, lower, upper); err != nil {
			return fmt.Errorf("writing combined korf table: %w", err)
		}

		log.WithField("dir", dir).Info("all pattern databases written")
		return nil
	},
}

func buildAndArchive(store *pdbstore.Store, name string, enc pdb.Encoder, kind int) ([]pdb.OptionU8, error) {
	entry := log.WithFields(logrus.Fields{"encoder": name, "kind": kind})
	entry.Info("build starting")

	table, history, elapsed := pdb.BuildWithHistory(enc, entry)

	iterations := make([]pdbstore.IterationStat, len(history))
	maxDepth := 0
	for i, h := range history {
		iterations[i] = pdbstore.IterationStat{Depth: h.Depth, NewCubes: h.NewCubes}
		if h.Depth > maxDepth {
			maxDepth = h.Depth
		}
	}
	if err := store.RecordBuild(name, enc.ImageSize(), maxDepth, elapsed, iterations); err != nil {
		return nil, fmt.Errorf("archiving %s build: %w", name, err)
	}
	entry.WithField("elapsed", elapsed).Info("build complete")
	return table, nil
}

func init() {
	generateCmd.Flags().String("out", "./data", "Directory to write the PDB files into")
	generateCmd.Flags().String("db", "./data/builds.db", "sqlite build-history audit database path")
}
