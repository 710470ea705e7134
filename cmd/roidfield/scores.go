package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ormakov/roidfield/internal/platform/tui"
	"github.com/ormakov/roidfield/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs.

Examples:
  roidfield scores
  roidfield scores --tui
  roidfield scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Roidfield - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'roidfield play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Roids", "Ships", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-6s  %s\n",
			i+1, run.Score, run.Asteroids, run.ShipsLost,
			fmt.Sprintf("%ds", run.Duration),
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
