package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	scoresRuns  int
	scoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recorded runs",
	Long: `Display the top 10 high scores for a mode (default: asteroids),
followed by the most recent recorded headless runs.

Examples:
  asteroids scores
  asteroids scores asteroids_demo --runs 20
  asteroids scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&scoresRuns, "runs", 5, "Number of recent headless runs to show (0 = none)")
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "Delete every recorded score for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "asteroids"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'asteroids list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	cmd.SilenceUsage = true

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if scoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Removed %d scores for %s.\n", n, game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "Rank", "Score", "Wave", "Date")
		fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "----", "-----", "----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %-4s  %s\n", i+1, entry.Score, waveLabel(entry.Wave), entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
		if st, err := store.Stats(gameID); err == nil {
			fmt.Printf("Best: %d  Games: %d  Average: %.0f  Furthest wave: %s\n",
				st.HighScore, st.GamesCount, st.AvgScore, waveLabel(st.BestWave))
		}
	}

	if scoresRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns("", scoresRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Println()
	fmt.Println("Recent headless runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Try 'asteroids sim --record'.")
		return nil
	}
	fmt.Printf("  %-10s  %-20s  %-5s  %-8s  %-8s  %s\n", "Policy", "Seed", "Eps", "Best", "Avg", "Date")
	fmt.Printf("  %-10s  %-20s  %-5s  %-8s  %-8s  %s\n", "------", "----", "---", "----", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-20d  %-5d  %-8d  %-8.1f  %s\n",
			r.Policy, r.Seed, r.Episodes, r.BestScore, r.AvgScore(), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func waveLabel(w int) string {
	if w <= 0 {
		return "-"
	}
	return fmt.Sprint(w)
}
