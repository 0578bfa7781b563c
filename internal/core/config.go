package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed; 0 seeds from the wall clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
	}
}

// GameState is the per-tick summary a game exposes to its platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	GameOver bool // Whether the game-over screen is showing
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNewGame EventKind = iota
	EventCrash
	EventGameOver
	EventPass
	EventLevelUp
	EventFly
	EventFlyCharged
	EventSpawn
)

// String returns a short name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventCrash:
		return "crash"
	case EventGameOver:
		return "game_over"
	case EventPass:
		return "pass"
	case EventLevelUp:
		return "level_up"
	case EventFly:
		return "fly"
	case EventFlyCharged:
		return "fly_charged"
	case EventSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Value carries the kind-specific number
// (new level, new fly count, score at crash, lane of a spawned car).
type Event struct {
	Kind   EventKind
	Value  int
	Detail string // Optional label, e.g. why a spawn attempt failed
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
