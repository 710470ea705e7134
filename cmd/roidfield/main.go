// roidfield is a terminal space shooter: thrust, turn, and clear the
// asteroid field.
//
// Usage:
//
//	roidfield play           - Fly
//	roidfield scores         - Show the run history
//	roidfield serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.roidfield/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ormakov/roidfield/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roidfield",
	Short: "Roidfield - asteroid shooting in your terminal",
	Long: `Roidfield is a terminal space shooter. Thrust and turn the ship,
shoot asteroids for points, and try not to fly into one.

Available commands:
  play     - Fly
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  roidfield play
  roidfield play --difficulty hard
  roidfield scores
  roidfield serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
