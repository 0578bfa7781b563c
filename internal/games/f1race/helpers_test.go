package f1race

import (
	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// constRNG always draws the same value (reduced mod n).
type constRNG int

func (c constRNG) Intn(n int) int { return int(c) % n }

// scriptedRNG replays draws in order and then repeats the last one.
type scriptedRNG struct {
	draws []int
	calls []int // n of every call, for asserting draw order
}

func (r *scriptedRNG) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[0]
	if len(r.draws) > 1 {
		r.draws = r.draws[1:]
	}
	return v % n
}

type trackPlay struct {
	Track core.Track
	Loop  bool
}

type recordingAudio struct {
	plays []trackPlay
}

func (a *recordingAudio) PlayTrack(t core.Track, loop bool) {
	a.plays = append(a.plays, trackPlay{t, loop})
}

func (a *recordingAudio) count(t core.Track) int {
	n := 0
	for _, p := range a.plays {
		if p.Track == t {
			n++
		}
	}
	return n
}

// newTestWorld returns a started world whose spawner never fires.
func newTestWorld() (*World, *recordingAudio) {
	audio := &recordingAudio{}
	w := NewWorld(config.DefaultRaceConfig(), constRNG(1), audio)
	w.Reset()
	return w, audio
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
