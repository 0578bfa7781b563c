package f1race

import (
	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// Game adapts a World to the platform drivers.
type Game struct {
	race   config.RaceConfig
	audio  core.Audio
	world  *World
	config core.RuntimeConfig
	ticks  int
}

// New creates a race game. audio may be nil for a silent game.
func New(race config.RaceConfig, audio core.Audio) *Game {
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &Game{race: race, audio: audio}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "f1race"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "F1 Race"
}

// Reset builds a fresh world from cfg and starts the race.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.ticks = 0
	g.world = NewWorld(g.race, NewRNG(cfg.Seed), g.audio)
	g.world.Reset()
}

// Step applies the input frame and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Apply(in)
	events := g.world.Tick()
	g.ticks++
	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.world.Progress()
	return core.GameState{
		Score:    p.Score,
		Level:    p.Level,
		GameOver: g.world.Phase() == PhaseGameOver,
		Paused:   g.world.Paused(),
	}
}

// Draw describes the track on a pixel canvas.
func (g *Game) Draw(c Canvas) {
	g.world.Draw(c)
}

// World exposes the simulation for drivers and tests.
func (g *Game) World() *World {
	return g.world
}

// Ticks returns the number of steps since the last Reset.
func (g *Game) Ticks() int {
	return g.ticks
}
