package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "f1race.yaml"

// Load loads the race configuration.
// Search order: customPath -> ~/.f1race/configs/f1race.yaml -> ./configs/f1race.yaml -> embedded default.
// Only an explicit customPath turns read and parse failures into errors;
// the implicit locations are skipped when unreadable.
func Load(customPath string) (RaceConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RaceConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RaceConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRaceYAML)
	if err != nil {
		return DefaultRaceConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result,
// so a file only needs to list the values it changes.
func Parse(data []byte) (RaceConfig, error) {
	cfg := DefaultRaceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RaceConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RaceConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RaceConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every inconsistency in the configuration.
func (c RaceConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %dx%d", p.Width, p.Height)
	check(p.Shift > 0, "player shift must be positive, got %d", p.Shift)
	check(p.FlyShift >= 0, "player fly_shift must not be negative, got %d", p.FlyShift)
	check(p.FlyFrames > 0, "player fly_frames must be positive, got %d", p.FlyFrames)
	check(p.InitialFlyCount >= 0 && p.InitialFlyCount <= p.MaxFlyCount,
		"player initial_fly_count must be within [0, %d], got %d", p.MaxFlyCount, p.InitialFlyCount)

	o := c.Opponents
	check(o.AppearRate > 0, "opponents appear_rate must be positive, got %d", o.AppearRate)
	check(o.SpawnGuard >= 0, "opponents spawn_guard must not be negative, got %g", o.SpawnGuard)
	check(len(o.Types) > 0, "opponents need at least one type")
	for i, t := range o.Types {
		check(t.Width > 0 && t.Height > 0, "opponent type %d size must be positive, got %dx%d", i, t.Width, t.Height)
		check(t.Speed > 0, "opponent type %d speed must be positive, got %d", i, t.Speed)
	}
	check(o.TableFor(c.Progression.InitialLevel) != nil,
		"opponents need a spawn table for level %d", c.Progression.InitialLevel)
	for i, t := range o.SpawnTables {
		check(len(t.Draws) > 0, "spawn table %d has no draws", i)
		for _, d := range t.Draws {
			check(d >= 0 && d < len(o.Types), "spawn table %d references unknown type %d", i, d)
		}
	}

	g := c.Progression
	check(g.InitialLevel >= 1, "progression initial_level must be at least 1, got %d", g.InitialLevel)
	check(g.SpeedPerLevel >= 0, "progression speed_per_level must not be negative, got %d", g.SpeedPerLevel)
	check(g.ChargePasses > 0, "progression charge_passes must be positive, got %d", g.ChargePasses)

	k := c.Crash
	check(k.Countdown > 0, "crash countdown must be positive, got %d", k.Countdown)
	check(k.GameOverAt > 0 && k.GameOverAt < k.Countdown,
		"crash game_over_at must be within (0, %d), got %d", k.Countdown, k.GameOverAt)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".f1race", "configs", filename)
}
