package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/env"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	simEpisodes   int
	simPolicy     string
	simMaxFrames  int
	simConfig     string
	simDifficulty string
	simReward     string
	simRecord     bool
	simVerbose    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless episodes with a policy",
	Long: `Run the simulation without a screen, as fast as the machine allows.

Each episode is one full game, capped at --max-frames. A summary line is
logged per episode. With --record the run is stored and shows up in
'asteroids scores' and on the scoreboard.

Policies: idle, random, autopilot.

Examples:
  asteroids sim
  asteroids sim --episodes 50 --policy random --seed 7
  asteroids sim --policy autopilot --difficulty hard --record
  asteroids sim --reward ./reward.yaml`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&simEpisodes, "episodes", 10, "Number of episodes to run")
	simCmd.Flags().StringVar(&simPolicy, "policy", "autopilot", "Policy: idle, random, autopilot")
	simCmd.Flags().IntVar(&simMaxFrames, "max-frames", 36000, "Frame cap per episode (0 = none)")
	simCmd.Flags().StringVar(&simConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&simDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().StringVar(&simReward, "reward", "", "Path to reward weights YAML")
	simCmd.Flags().BoolVar(&simRecord, "record", false, "Save the run summary to the database")
	simCmd.Flags().BoolVar(&simVerbose, "verbose", false, "Log simulation events")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if simEpisodes <= 0 {
		return fmt.Errorf("--episodes must be positive, got %d", simEpisodes)
	}

	cfg, err := config.LoadAsteroids(simConfig)
	if err != nil {
		return err
	}
	if simDifficulty != "" {
		preset, perr := config.ParsePreset(simDifficulty)
		if perr != nil {
			return perr
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
	}

	reward := env.DefaultRewardConfig()
	if simReward != "" {
		if reward, err = env.LoadRewardConfig(simReward); err != nil {
			return err
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids-sim",
	})
	if simVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []env.Option{
		env.WithReward(reward),
		env.WithMaxFrames(simMaxFrames),
		env.WithEpisodeEnd(env.EndOnGameOver),
	}
	if simVerbose {
		opts = append(opts, env.WithLogger(logger))
	}
	e, err := env.New(cfg, seed, opts...)
	if err != nil {
		return err
	}
	policy, err := env.NewPolicy(simPolicy, seed, e.Scale())
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting run", "policy", policy.Name(), "episodes", simEpisodes, "seed", seed)
	start := time.Now()
	results, runErr := env.Run(ctx, e, policy, simEpisodes, logger)
	if runErr != nil {
		logger.Warn("run stopped early", "finished", len(results), "error", runErr)
	}
	if len(results) == 0 {
		return runErr
	}

	rec := storage.RunRecord{Policy: policy.Name(), Seed: seed, Episodes: len(results)}
	var shots, hits int
	for _, r := range results {
		rec.Frames += r.Frames
		rec.TotalScore += r.Score
		rec.BestScore = max(rec.BestScore, r.Score)
		shots += r.Shots
		hits += r.Hits
	}
	accuracy := 0.0
	if shots > 0 {
		accuracy = float64(hits) / float64(shots)
	}

	elapsed := time.Since(start)
	fmt.Printf("Policy:    %s\n", rec.Policy)
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Episodes:  %d\n", rec.Episodes)
	fmt.Printf("Frames:    %d (%.0f/s)\n", rec.Frames, float64(rec.Frames)/max(elapsed.Seconds(), 1e-9))
	fmt.Printf("Best:      %d\n", rec.BestScore)
	fmt.Printf("Average:   %.1f\n", rec.AvgScore())
	fmt.Printf("Accuracy:  %.1f%%\n", accuracy*100)

	if simRecord {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			return fmt.Errorf("opening scores database: %w", openErr)
		}
		defer store.Close()
		id, saveErr := store.SaveRun(rec)
		if saveErr != nil {
			return fmt.Errorf("recording run: %w", saveErr)
		}
		logger.Info("run recorded", "id", id)
	}
	return runErr
}
