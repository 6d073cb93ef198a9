package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagDemo       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play asteroids",
	Long: `Start playing. Without an argument the arcade mode is used.

Controls:
  Left/Right, A/D  - Rotate
  Up/W             - Thrust
  Down/S           - Brake
  Space            - Fire
  H                - Hyperspace
  Enter            - Start
  P/Esc            - Pause
  B                - Leave (paused or game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, slower rocks, fewer small saucers
  normal - Three lives
  hard   - Two lives, faster rocks, more small saucers
  fixed  - No speed progression

Examples:
  asteroids play
  asteroids play --difficulty easy --sound
  asteroids play --demo
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the system speaker")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume in [0, 1]")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the autopilot play")
}

// terminalConfig sizes a runtime config to the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg = cfg.Resized(w, h)
	}
	return cfg.Normalized()
}

// openStore opens the scores database. Failure only disables scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "asteroids"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagDemo {
		gameID = "asteroids_demo"
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'asteroids list')", gameID)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var sound audio.Port = audio.Null{}
	if flagSound {
		sound = audio.NewSynth(audio.DefaultSampleRate, flagVolume)
	}

	cmd.SilenceUsage = true
	return tui.Run(game, store, sound, terminalConfig())
}
