package f1race

import (
	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// Phase is the state of the game loop.
type Phase int

const (
	PhaseNewGame  Phase = iota // Waiting to (re)initialize
	PhasePlaying               // Normal driving
	PhaseCrashing              // Crash sprite shown, countdown running
	PhaseGameOver              // Late part of the crash countdown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNewGame:
		return "new_game"
	case PhasePlaying:
		return "playing"
	case PhaseCrashing:
		return "crashing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World owns the complete simulation state of one race.
type World struct {
	cfg   config.RaceConfig
	rules *config.Progression
	rng   RNG
	audio core.Audio

	phase     Phase
	countdown int
	paused    bool
	scroll    int // Separator offset, 0 up to SeparatorPeriod

	player   Player
	keys     Keys
	fleet    *Fleet
	progress Progress

	events []core.Event
}

// NewWorld creates a world in the NewGame phase. The first Tick (or Reset)
// starts the race.
func NewWorld(cfg config.RaceConfig, rng RNG, audio core.Audio) *World {
	if audio == nil {
		audio = core.NopAudio{}
	}
	w := &World{
		cfg:   cfg,
		rules: config.NewProgression(cfg.Progression),
		rng:   rng,
		audio: audio,
		fleet: NewFleet(cfg.Opponents, cfg.Player.Height),
	}
	w.init()
	return w
}

// init restores every piece of game state to its starting value.
func (w *World) init() {
	w.phase = PhaseNewGame
	w.countdown = 0
	w.paused = false
	w.scroll = 0
	w.player = newPlayer(w.cfg.Player)
	w.keys.Clear()
	w.fleet.Reset()
	w.progress = newProgress(w.rules.InitialLevel(), w.cfg.Player.InitialFlyCount)
}

// Reset starts a fresh race: full re-initialization, background music,
// then Playing. Calling it twice leaves the same state as calling it once.
func (w *World) Reset() {
	w.events = nil
	w.newGame()
}

func (w *World) newGame() {
	w.init()
	w.audio.PlayTrack(core.TrackBackground, true)
	w.phase = PhasePlaying
	w.emit(core.EventNewGame, 0)
}

// Press handles a key going down. Presses are ignored outside Playing.
// While paused only the pause key is honored.
func (w *World) Press(a core.Action) {
	if w.phase != PhasePlaying {
		return
	}
	if a == core.ActionPause {
		w.paused = !w.paused
		return
	}
	if w.paused {
		return
	}
	switch {
	case a.IsDirection():
		w.keys.Press(a)
	case a == core.ActionFly:
		w.Fly()
	}
}

// Release handles a key going up. Releases only clear state, so they are
// applied in every phase.
func (w *World) Release(a core.Action) {
	w.keys.Release(a)
}

// Fly starts a flight. It is a no-op unless Playing, grounded and holding a fly.
func (w *World) Fly() bool {
	if w.phase != PhasePlaying || w.paused {
		return false
	}
	if !w.player.TakeOff(&w.progress.FlyCount) {
		return false
	}
	w.emit(core.EventFly, w.progress.FlyCount)
	return true
}

// Apply feeds a frame of key events in arrival order.
func (w *World) Apply(in core.InputFrame) {
	for _, e := range in.Events {
		if e.Pressed {
			w.Press(e.Action)
		} else {
			w.Release(e.Action)
		}
	}
}

// Tick advances the simulation by one step and returns the events it produced.
func (w *World) Tick() []core.Event {
	w.events = nil
	switch w.phase {
	case PhaseNewGame:
		w.newGame()
	case PhasePlaying:
		if !w.paused {
			w.frame()
		}
	case PhaseCrashing, PhaseGameOver:
		w.crashTick()
	}
	return w.events
}

// frame runs one Playing step: flight, movement, traffic, collisions, spawn.
func (w *World) frame() {
	pc := w.cfg.Player

	w.player.advanceFlight(pc.FlyFrames)
	w.player.Move(w.keys, pc.Shift)
	w.fleet.Advance()

	if w.player.Flying {
		w.player.Ascend(pc.FlyShift)
	} else {
		w.checkCollisions()
	}

	w.spawn()

	w.scroll = (w.scroll + SeparatorStep) % SeparatorPeriod
}

// spawn attempts to add a car and reports every attempt that got past the
// appear-rate gate. Value is the lane of the new car, or -1.
func (w *World) spawn() {
	out := w.fleet.TrySpawn(w.rng, w.progress.Level, w.rules.SpeedBonus(w.progress.Level))
	if out == SpawnGated {
		return
	}
	lane := -1
	if out == Spawned {
		lane = w.fleet.LastLane()
	}
	w.events = append(w.events, core.Event{Kind: core.EventSpawn, Value: lane, Detail: out.String()})
}

func (w *World) checkCollisions() {
	res := sweep(w.player.Box(), w.fleet.Slots())
	for range res.Passed {
		out := w.progress.recordPass(w.rules, w.cfg.Player.MaxFlyCount)
		w.emit(core.EventPass, w.progress.Score)
		if out.LevelUp {
			w.emit(core.EventLevelUp, w.progress.Level)
		}
		if out.Charged {
			w.emit(core.EventFlyCharged, w.progress.FlyCount)
		}
	}
	if res.Crashed {
		w.crash()
	}
}

// crash enters the Crashing phase. Held keys are dropped here since
// presses are ignored until the next game.
func (w *World) crash() {
	w.phase = PhaseCrashing
	w.countdown = w.cfg.Crash.Countdown
	w.keys.Clear()
	w.audio.PlayTrack(core.TrackCrash, false)
	w.emit(core.EventCrash, w.progress.Score)
}

func (w *World) crashTick() {
	w.countdown--
	if w.phase == PhaseCrashing && w.countdown <= w.cfg.Crash.GameOverAt {
		w.phase = PhaseGameOver
		w.audio.PlayTrack(core.TrackGameOver, false)
		w.emit(core.EventGameOver, w.progress.Score)
	}
	if w.countdown <= 0 {
		w.newGame()
	}
}

func (w *World) emit(kind core.EventKind, value int) {
	w.events = append(w.events, core.Event{Kind: kind, Value: value})
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Countdown returns the remaining crash ticks.
func (w *World) Countdown() int { return w.countdown }

// Paused reports whether the race is paused.
func (w *World) Paused() bool { return w.paused }

// Player returns a copy of the player car.
func (w *World) Player() Player { return w.player }

// Keys returns the held directions.
func (w *World) Keys() Keys { return w.keys }

// Progress returns a copy of the score state.
func (w *World) Progress() Progress { return w.progress }

// Fleet returns the opponent fleet.
func (w *World) Fleet() *Fleet { return w.fleet }

// Scroll returns the separator animation offset.
func (w *World) Scroll() int { return w.scroll }

// Config returns the race configuration.
func (w *World) Config() config.RaceConfig { return w.cfg }
