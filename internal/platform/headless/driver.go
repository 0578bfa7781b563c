// Package headless runs a game without a terminal, driven by a pilot
// instead of a keyboard. It backs the sim command and long-running tests.
package headless

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f1race/internal/core"
)

// Game is the part of a game the driver needs.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
}

// Pilot produces the input for each tick.
type Pilot interface {
	Next() core.InputFrame
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func() core.InputFrame

// Next implements Pilot.
func (f PilotFunc) Next() core.InputFrame { return f() }

// Options controls a headless run. At least one of Ticks, Games or
// Realtime must be set; a realtime run without limits ends on cancellation.
type Options struct {
	Ticks    int  // Stop after this many ticks (0 = no limit)
	Games    int  // Stop after this many finished games (0 = no limit)
	Realtime bool // Pace ticks at cfg.TickRate instead of running flat out
	Logger   *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	Games       int // Games that reached game over
	Ticks       int
	Crashes     int
	Passes      int
	Flies       int
	Spawns      int // Cars that entered the track
	SpawnMisses int // Attempts refused because the pool was full or the top was busy
	BestScore   int
	BestLevel   int
	TotalScore  int
	Elapsed     time.Duration
	Interrupted bool // The context was cancelled before a limit was reached
}

// AverageScore returns the mean score of finished games.
func (s Summary) AverageScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// ErrNoLimit is returned when a flat-out run has nothing to stop it.
var ErrNoLimit = errors.New("headless: a tick or game limit is required unless running in real time")

// Run resets the game and steps it until a limit is reached or ctx is done.
func Run(ctx context.Context, game Game, pilot Pilot, cfg core.RuntimeConfig, opts Options) (Summary, error) {
	if !opts.Realtime && opts.Ticks <= 0 && opts.Games <= 0 {
		return Summary{}, ErrNoLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var tick <-chan time.Time
	if opts.Realtime {
		rate := cfg.TickRate
		if rate <= 0 {
			rate = core.DefaultConfig().TickRate
		}
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	var sum Summary
	game.Reset(cfg)
	logger.Info("simulation started", "seed", cfg.Seed, "ticks", opts.Ticks, "games", opts.Games, "realtime", opts.Realtime)

	for !sum.done(opts) {
		if tick != nil {
			select {
			case <-ctx.Done():
				sum.Interrupted = true
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				sum.Interrupted = true
			default:
			}
		}
		if sum.Interrupted {
			break
		}

		res := game.Step(pilot.Next())
		sum.Ticks++
		sum.record(res, logger)
	}

	sum.Elapsed = time.Since(start)
	logger.Info("simulation finished",
		"games", sum.Games, "ticks", sum.Ticks, "best_score", sum.BestScore,
		"best_level", sum.BestLevel, "interrupted", sum.Interrupted, "elapsed", sum.Elapsed)
	return sum, nil
}

func (s *Summary) done(opts Options) bool {
	if opts.Ticks > 0 && s.Ticks >= opts.Ticks {
		return true
	}
	return opts.Games > 0 && s.Games >= opts.Games
}

func (s *Summary) record(res core.StepResult, logger *log.Logger) {
	s.BestLevel = core.Max(s.BestLevel, res.State.Level)
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventPass:
			s.Passes++
		case core.EventFly:
			s.Flies++
		case core.EventCrash:
			s.Crashes++
			logger.Debug("crash", "score", e.Value, "level", res.State.Level, "tick", s.Ticks)
		case core.EventGameOver:
			s.Games++
			s.TotalScore += e.Value
			s.BestScore = core.Max(s.BestScore, e.Value)
			logger.Info("game over", "game", s.Games, "score", e.Value, "level", res.State.Level, "tick", s.Ticks)
		case core.EventLevelUp:
			logger.Debug("level up", "level", e.Value, "tick", s.Ticks)
		case core.EventSpawn:
			if e.Value >= 0 {
				s.Spawns++
			} else {
				s.SpawnMisses++
			}
			logger.Debug("spawn", "outcome", e.Detail, "lane", e.Value, "tick", s.Ticks)
		}
	}
}
