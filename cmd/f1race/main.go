// f1race is a top-down racing game for the terminal.
//
// Usage:
//
//	f1race play      - Race in the terminal
//	f1race sim       - Run the autopilot headless and print a summary
//	f1race config    - Print the effective race configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 10)
//	--seed <value>       - Set RNG seed for reproducible races
//	--config <path>      - Use a custom race config YAML
//	--log <path>         - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//
// Every flag can also be set through the environment, e.g. F1RACE_FPS=15
// or F1RACE_LOG_LEVEL=debug.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

const envPrefix = "F1RACE"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "f1race",
	Short: "F1 Race - dodge traffic in your terminal",
	Long: `F1 Race is a top-down racing game. Steer between three lanes,
pass the oncoming cars and jump over them when boxed in.

Available commands:
  play     - Race in the terminal
  sim      - Let the autopilot race headless
  config   - Print the effective race configuration

Examples:
  f1race play
  f1race play --seed 42 --mute
  f1race sim --games 20
  f1race config > my-race.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bindEnv,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 10, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to custom race config YAML")
	flags.String("log", "", "Write logs to this file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// bindEnv lets F1RACE_* variables fill flags the user did not set.
func bindEnv(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return bindFlags(cmd.Flags())
}

// bindFlags registers every flag with viper and mirrors environment values
// back into unset flags so --help and cobra see the effective setting.
func bindFlags(fs *pflag.FlagSet) error {
	if err := viper.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !viper.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, viper.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s from environment: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if fps := viper.GetInt("fps"); fps > 0 {
		cfg.TickRate = fps
	}
	cfg.Seed = viper.GetInt64("seed")
	return cfg
}

func loadRace() (config.RaceConfig, error) {
	return config.Load(viper.GetString("config"))
}

// newLogger builds the process logger. Without --log it writes to fallback,
// which play sets to io.Discard so log lines do not tear the TUI.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	out, closer := fallback, func() {}
	if path := viper.GetString("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
