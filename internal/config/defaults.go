package config

import (
	_ "embed"
)

//go:embed defaults/f1race.yaml
var defaultRaceYAML []byte

// DefaultRaceConfig returns the built-in race configuration.
// It mirrors defaults/f1race.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Player: PlayerConfig{
			Width:           15,
			Height:          20,
			Shift:           5,
			FlyShift:        2,
			FlyFrames:       10,
			InitialFlyCount: 1,
			MaxFlyCount:     9,
		},
		Opponents: OpponentsConfig{
			AppearRate: 2,
			SpawnGuard: 1.5,
			Types: []OpponentTypeConfig{
				{Width: 17, Height: 35, Speed: 3},
				{Width: 12, Height: 18, Speed: 4},
				{Width: 15, Height: 20, Speed: 6},
				{Width: 12, Height: 18, Speed: 3},
				{Width: 17, Height: 27, Speed: 3},
				{Width: 13, Height: 21, Speed: 5},
				{Width: 13, Height: 22, Speed: 3},
			},
			SpawnTables: []SpawnTableConfig{
				{MinLevel: 1, Draws: []int{0, 0, 1, 1, 1, 2, 3, 3, 4, 5, 6}},
				{MinLevel: 3, Draws: []int{0, 1, 1, 2, 2, 3, 3, 4, 5, 5, 6}},
			},
		},
		Progression: ProgressionConfig{
			InitialLevel:    1,
			LevelThresholds: []int{10, 20, 30, 40, 50, 60, 70, 100},
			SpeedPerLevel:   1,
			ChargePasses:    6,
		},
		Crash: CrashConfig{
			Countdown:  20,
			GameOverAt: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaceYAML
}
