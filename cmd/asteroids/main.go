// asteroids is a vector-style Asteroids game for the terminal, with a
// headless simulation mode for running autopilots at machine speed.
//
// Usage:
//
//	asteroids list              - List playable modes
//	asteroids play [mode]       - Play (default: asteroids)
//	asteroids menu              - Pick a mode interactively
//	asteroids sim               - Run headless episodes with a policy
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores [mode]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes.
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
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
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `A terminal rendition of the vector arcade classic, plus a headless
simulator for autopilots.

Available commands:
  list     - Show playable modes
  play     - Play directly
  menu     - Interactive mode picker
  sim      - Run headless episodes
  serve    - Start SSH server for remote play
  scores   - View high scores and recorded runs

Examples:
  asteroids play
  asteroids play --difficulty hard --sound
  asteroids play --demo
  asteroids sim --episodes 20 --policy autopilot --record
  asteroids serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
