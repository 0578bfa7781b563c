// Package config provides YAML-based race configuration loading and the
// level progression rules for the simulation.
package config

// RaceConfig contains all tunable parameters of the race simulation.
type RaceConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Opponents   OpponentsConfig   `yaml:"opponents"`
	Progression ProgressionConfig `yaml:"progression"`
	Crash       CrashConfig       `yaml:"crash"`
}

// PlayerConfig defines the player car and its fly resource.
type PlayerConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	Shift           int `yaml:"shift"`     // Pixels moved per tick while a direction is held
	FlyShift        int `yaml:"fly_shift"` // Pixels climbed per tick while flying
	FlyFrames       int `yaml:"fly_frames"`
	InitialFlyCount int `yaml:"initial_fly_count"`
	MaxFlyCount     int `yaml:"max_fly_count"`
}

// OpponentsConfig defines oncoming traffic.
type OpponentsConfig struct {
	AppearRate  int                  `yaml:"appear_rate"` // A spawn is attempted on 1 of every N draws
	SpawnGuard  float64              `yaml:"spawn_guard"` // Blocking band at the top, in player heights
	Types       []OpponentTypeConfig `yaml:"types"`
	SpawnTables []SpawnTableConfig   `yaml:"spawn_tables"`
}

// OpponentTypeConfig defines one opponent car variant.
type OpponentTypeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Base speed in pixels per tick
}

// SpawnTableConfig maps uniform draws to opponent type indices.
// The table with the highest MinLevel not above the current level is used.
type SpawnTableConfig struct {
	MinLevel int   `yaml:"min_level"`
	Draws    []int `yaml:"draws"`
}

// ProgressionConfig defines scoring, leveling and fly charging.
type ProgressionConfig struct {
	InitialLevel    int   `yaml:"initial_level"`
	LevelThresholds []int `yaml:"level_thresholds"` // Exact pass counts that raise the level
	SpeedPerLevel   int   `yaml:"speed_per_level"`
	ChargePasses    int   `yaml:"charge_passes"` // Passes needed to earn one fly
}

// CrashConfig defines the crash and game over sequence, in ticks.
type CrashConfig struct {
	Countdown  int `yaml:"countdown"`
	GameOverAt int `yaml:"game_over_at"` // Countdown value at which the game over screen starts
}

// TableFor returns the spawn draw table that applies at the given level.
func (o OpponentsConfig) TableFor(level int) []int {
	var best *SpawnTableConfig
	for i := range o.SpawnTables {
		t := &o.SpawnTables[i]
		if t.MinLevel > level {
			continue
		}
		if best == nil || t.MinLevel >= best.MinLevel {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	return best.Draws
}
