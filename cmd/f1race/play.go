package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/f1race/internal/audio"
	"github.com/vovakirdan/f1race/internal/core"
	"github.com/vovakirdan/f1race/internal/games/f1race"
	"github.com/vovakirdan/f1race/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in the terminal",
	Long: `Start a race.

Controls:
  Arrows/WASD/2468  - Steer
  Space/Enter/5     - Fly over traffic
  P                 - Pause
  M/7               - Mute
  N/Tab/0           - Switch background track
  Ctrl+S            - Screenshot
  Q/Esc/Ctrl+C      - Quit

Examples:
  f1race play
  f1race play --mute
  f1race play --lowcost --hold 300ms
  f1race play --config ./my-race.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Bool("mute", false, "Start with sound muted")
	playCmd.Flags().Bool("lowcost", false, "Use the chiptune background track")
	playCmd.Flags().Float64("volume", audio.DefaultVolume, "Music volume, above 0 and at most 1 (use --mute for silence)")
	playCmd.Flags().Duration("hold", tui.DefaultHoldWindow, "How long a key press counts as held")
	playCmd.Flags().String("screenshots", "", "Screenshot directory (default ~/.f1race/screenshots)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	volume := viper.GetFloat64("volume")
	if volume <= 0 || volume > 1 {
		return fmt.Errorf("volume must be above 0 and at most 1, got %g (use --mute for silence)", volume)
	}

	logger, closeLog, err := newLogger("f1race", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	race, err := loadRace()
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	variant := core.MusicFull
	if viper.GetBool("lowcost") {
		variant = core.MusicLowCost
	}

	var (
		sound    core.Audio = core.NopAudio{}
		controls tui.AudioControls
	)
	player, err := audio.Open(audio.Options{
		Volume:  volume,
		Muted:   viper.GetBool("mute"),
		Variant: variant,
	})
	if err != nil {
		logger.Warn("continuing without sound", "error", err)
	} else {
		defer player.Close()
		sound, controls = player, player
		logger.Info("audio ready", "music", player.Variant(), "muted", player.Muted())
	}

	game := f1race.New(race, sound)
	return tui.Run(game, cfg, tui.Options{
		Logger:        logger,
		Audio:         controls,
		HoldWindow:    holdWindow(),
		ScreenshotDir: viper.GetString("screenshots"),
	})
}

func holdWindow() time.Duration {
	if d := viper.GetDuration("hold"); d > 0 {
		return d
	}
	return tui.DefaultHoldWindow
}
