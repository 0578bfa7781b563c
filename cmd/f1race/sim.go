package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/f1race/internal/core"
	"github.com/vovakirdan/f1race/internal/games/f1race"
	"github.com/vovakirdan/f1race/internal/platform/headless"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot race headless",
	Long: `Run the race without a terminal UI, steered by the built-in
autopilot, and print a summary when it stops.

Without --realtime the simulation runs as fast as possible and needs
--games or --ticks. With --realtime it keeps the configured tick rate
and runs until a limit is reached or it is interrupted.

Examples:
  f1race sim --games 10
  f1race sim --ticks 5000 --seed 7
  f1race sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Int("games", 0, "Stop after this many finished games")
	simCmd.Flags().Int("ticks", 0, "Stop after this many ticks")
	simCmd.Flags().Bool("realtime", false, "Pace the simulation at --fps")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("f1race-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	race, err := loadRace()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := f1race.New(race, nil)
	pilot := f1race.NewAutopilot()
	drive := headless.PilotFunc(func() core.InputFrame {
		return pilot.Next(game.World())
	})

	sum, err := headless.Run(ctx, game, drive, runtimeConfig(), headless.Options{
		Games:    viper.GetInt("games"),
		Ticks:    viper.GetInt("ticks"),
		Realtime: viper.GetBool("realtime"),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	printSummary(cmd, sum)
	return nil
}

func printSummary(cmd *cobra.Command, sum headless.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games:      %d\n", sum.Games)
	fmt.Fprintf(out, "Ticks:      %d\n", sum.Ticks)
	fmt.Fprintf(out, "Spawned:    %d (%d refused)\n", sum.Spawns, sum.SpawnMisses)
	fmt.Fprintf(out, "Passes:     %d\n", sum.Passes)
	fmt.Fprintf(out, "Flies:      %d\n", sum.Flies)
	fmt.Fprintf(out, "Crashes:    %d\n", sum.Crashes)
	fmt.Fprintf(out, "Best score: %d\n", sum.BestScore)
	fmt.Fprintf(out, "Best level: %d\n", sum.BestLevel)
	fmt.Fprintf(out, "Avg score:  %.1f\n", sum.AverageScore())
	if sum.Interrupted {
		fmt.Fprintln(out, "(interrupted)")
	}
}
