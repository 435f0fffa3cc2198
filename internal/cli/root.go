package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:     "cube",
	Short:   "An optimal 3x3x3 Rubik's cube solver",
	Version: "1.0.0",
	Long: `cube builds Korf-style corner and edge pattern databases and uses them
to drive a parallel IDA* search that finds a shortest move sequence back to
the solved state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command; cmd/cube/main.go is its only caller.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
}
