package f1race

import (
	"testing"

	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// crashWorld puts a stationary car on top of the player and ticks once.
func crashWorld(t *testing.T) (*World, *recordingAudio) {
	t.Helper()
	w, audio := newTestWorld()
	p := w.Player()
	w.fleet.slots[0] = Slot{Occupied: true, X: p.X, Y: p.Y, Width: 15, Height: 20}
	w.progress = Progress{Score: 42, Level: 4, Pass: 42, FlyCount: 0, FlyCharger: 3}
	w.keys = Keys{Up: true}

	events := w.Tick()
	if !hasEvent(events, core.EventCrash) {
		t.Fatalf("events = %v, want crash", events)
	}
	return w, audio
}

func TestWorldStartsInNewGame(t *testing.T) {
	audio := &recordingAudio{}
	w := NewWorld(config.DefaultRaceConfig(), constRNG(1), audio)
	if w.Phase() != PhaseNewGame {
		t.Fatalf("phase = %v, want new_game", w.Phase())
	}

	events := w.Tick()
	if w.Phase() != PhasePlaying || !hasEvent(events, core.EventNewGame) {
		t.Errorf("after first tick: phase %v events %v", w.Phase(), events)
	}
	if len(audio.plays) != 1 || audio.plays[0] != (trackPlay{core.TrackBackground, true}) {
		t.Errorf("audio = %v, want looping background", audio.plays)
	}
}

func TestCrashSequence(t *testing.T) {
	w, audio := crashWorld(t)

	if w.Phase() != PhaseCrashing || w.Countdown() != 20 {
		t.Fatalf("phase %v countdown %d, want crashing 20", w.Phase(), w.Countdown())
	}
	if w.Keys().Any() {
		t.Errorf("keys still held after crash: %+v", w.Keys())
	}
	if got := audio.plays[len(audio.plays)-1]; got != (trackPlay{core.TrackCrash, false}) {
		t.Errorf("last track = %+v, want one-shot crash", got)
	}

	for i := 1; i <= 9; i++ {
		w.Tick()
		if w.Phase() != PhaseCrashing {
			t.Fatalf("tick %d: phase %v, want crashing", i, w.Phase())
		}
		if w.Countdown() != 20-i {
			t.Fatalf("tick %d: countdown %d, want %d", i, w.Countdown(), 20-i)
		}
	}

	events := w.Tick()
	if w.Phase() != PhaseGameOver || !hasEvent(events, core.EventGameOver) {
		t.Fatalf("tick 10: phase %v events %v, want game over", w.Phase(), events)
	}

	for i := 11; i <= 19; i++ {
		if events := w.Tick(); hasEvent(events, core.EventGameOver) {
			t.Fatalf("tick %d: game over fired again", i)
		}
		if w.Phase() != PhaseGameOver {
			t.Fatalf("tick %d: phase %v, want game_over", i, w.Phase())
		}
	}
	if n := audio.count(core.TrackGameOver); n != 1 {
		t.Errorf("game over track played %d times, want 1", n)
	}

	backgroundBefore := audio.count(core.TrackBackground)
	events = w.Tick()
	if w.Phase() != PhasePlaying || !hasEvent(events, core.EventNewGame) {
		t.Fatalf("tick 20: phase %v events %v, want a new game", w.Phase(), events)
	}
	if audio.count(core.TrackBackground) != backgroundBefore+1 {
		t.Error("background music did not restart")
	}

	p := w.Progress()
	if p != (Progress{Score: 0, Level: 1, Pass: 0, FlyCount: 1, FlyCharger: 0}) {
		t.Errorf("progress after reset = %+v", p)
	}
	if w.Fleet().Active() != 0 {
		t.Errorf("%d slots still occupied after reset", w.Fleet().Active())
	}
	if pl := w.Player(); pl.X != 39 || pl.Y != 103 || pl.Flying {
		t.Errorf("player after reset = %+v", pl)
	}
}

func TestPressesIgnoredWhileCrashing(t *testing.T) {
	w, _ := crashWorld(t)

	w.Press(core.ActionLeft)
	if w.Keys().Any() {
		t.Errorf("press during crash held a key: %+v", w.Keys())
	}
	if w.Fly() {
		t.Error("Fly() succeeded during crash")
	}
	w.Press(core.ActionPause)
	if w.Paused() {
		t.Error("pause toggled during crash")
	}
	w.Release(core.ActionLeft)
	if w.Keys().Any() {
		t.Error("release set a key")
	}
}

func TestPause(t *testing.T) {
	w, _ := newTestWorld()
	w.keys = Keys{Left: true}
	w.Press(core.ActionPause)
	if !w.Paused() {
		t.Fatal("not paused")
	}

	before := w.Player()
	w.Tick()
	if w.Player() != before {
		t.Error("player moved while paused")
	}
	w.Press(core.ActionRight)
	if w.Keys() != (Keys{Left: true}) {
		t.Errorf("direction changed while paused: %+v", w.Keys())
	}

	w.Press(core.ActionPause)
	w.Tick()
	if w.Player().X != before.X-5 {
		t.Errorf("X = %d after resume, want %d", w.Player().X, before.X-5)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	type snapshot struct {
		phase     Phase
		countdown int
		paused    bool
		scroll    int
		player    Player
		keys      Keys
		progress  Progress
		slots     [SlotCount]Slot
		lastLane  int
	}
	snap := func(w *World) snapshot {
		return snapshot{w.phase, w.countdown, w.paused, w.scroll, w.player, w.keys, w.progress, w.fleet.slots, w.fleet.lastLane}
	}

	w := NewWorld(config.DefaultRaceConfig(), NewRNG(3), nil)
	w.Reset()
	first := snap(w)
	w.Reset()
	if got := snap(w); got != first {
		t.Errorf("second Reset differs:\n got %+v\nwant %+v", got, first)
	}

	w.Press(core.ActionLeft)
	w.Fly()
	for i := 0; i < 200; i++ {
		w.Tick()
	}
	w.Reset()
	if got := snap(w); got != first {
		t.Errorf("Reset after play differs:\n got %+v\nwant %+v", got, first)
	}
}

func TestApplyInputOrder(t *testing.T) {
	w, _ := newTestWorld()

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Release(core.ActionLeft)
	in.Set(core.ActionDown)
	w.Apply(in)

	if w.Keys() != (Keys{Down: true}) {
		t.Errorf("keys = %+v, want only Down", w.Keys())
	}
}

func TestLevelUpEvent(t *testing.T) {
	w, _ := newTestWorld()
	w.progress.Pass = 9
	w.progress.Score = 9
	w.fleet.slots[0] = Slot{Occupied: true, X: 12, Y: 120, Width: 12, Height: 18, Speed: 3}

	events := w.Tick()
	if !hasEvent(events, core.EventLevelUp) {
		t.Fatalf("events = %v, want level up", events)
	}
	if w.Progress().Level != 2 {
		t.Errorf("level = %d, want 2", w.Progress().Level)
	}
}

func spawnEvents(events []core.Event) []core.Event {
	var out []core.Event
	for _, e := range events {
		if e.Kind == core.EventSpawn {
			out = append(out, e)
		}
	}
	return out
}

func TestTickReportsSpawnOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *Fleet)
		detail string
		lane   int
	}{
		{
			name:   "spawned",
			setup:  func(*Fleet) {},
			detail: "spawned",
			lane:   1, // Intn(3)=0 repeats the last lane, so the next one is used
		},
		{
			name: "blocked by a car near the top",
			setup: func(f *Fleet) {
				f.slots[0] = Slot{Occupied: true, Width: 12, Height: 18, Speed: 3, X: 15, Y: 0}
			},
			detail: "blocked",
			lane:   -1,
		},
		{
			name: "pool full",
			setup: func(f *Fleet) {
				for i := range f.slots {
					f.slots[i] = Slot{Occupied: true, Width: 12, Height: 18, Speed: 3, X: 15, Y: 40}
				}
			},
			detail: "pool_full",
			lane:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(config.DefaultRaceConfig(), constRNG(0), nil)
			w.Reset()
			tt.setup(w.fleet)

			got := spawnEvents(w.Tick())
			if len(got) != 1 {
				t.Fatalf("spawn events = %+v, want exactly one", got)
			}
			if got[0].Detail != tt.detail || got[0].Value != tt.lane {
				t.Errorf("spawn event = %+v, want %s in lane %d", got[0], tt.detail, tt.lane)
			}
		})
	}
}

func TestGatedSpawnIsSilent(t *testing.T) {
	w, _ := newTestWorld() // constRNG(1) never passes the appear-rate gate
	for range 5 {
		if got := spawnEvents(w.Tick()); len(got) != 0 {
			t.Fatalf("gated tick reported %+v", got)
		}
	}
}
