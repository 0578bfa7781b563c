package f1race

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/f1race/internal/config"
)

func newTestFleet() *Fleet {
	cfg := config.DefaultRaceConfig()
	return NewFleet(cfg.Opponents, cfg.Player.Height)
}

func TestOpponentTypes(t *testing.T) {
	f := newTestFleet()
	want := []struct{ w, h, speed, offset int }{
		{17, 35, 3, 3},
		{12, 18, 4, 5},
		{15, 20, 6, 4},
		{12, 18, 3, 5},
		{17, 27, 3, 3},
		{13, 21, 5, 5},
		{13, 22, 3, 5},
	}
	types := f.Types()
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for i, w := range want {
		got := types[i]
		if got.Width != w.w || got.Height != w.h || got.Speed != w.speed || got.Offset != w.offset {
			t.Errorf("type %d = %+v, want %+v", i, got, w)
		}
		if got.Sprite != SpriteOpponent0+SpriteID(i) {
			t.Errorf("type %d sprite = %v", i, got.Sprite)
		}
	}
}

func TestFleetExhaustsAfterEightSpawns(t *testing.T) {
	f := newTestFleet()
	rng := constRNG(0)

	var lanes []int
	for i := 0; i < SlotCount; i++ {
		if got := f.TrySpawn(rng, 1, 0); got != Spawned {
			t.Fatalf("spawn %d: outcome %v, want spawned", i+1, got)
		}
		s := &f.slots[i]
		lanes = append(lanes, s.Lane)
		// Move the new car below the guard band so the next spawn is not blocked.
		s.Y = 60
	}

	if got := f.Active(); got != SlotCount {
		t.Errorf("Active() = %d, want %d", got, SlotCount)
	}
	if got := f.TrySpawn(rng, 1, 0); got != SpawnPoolFull {
		t.Errorf("9th spawn: outcome %v, want pool_full", got)
	}

	wantLanes := []int{1, 0, 1, 0, 1, 0, 1, 0}
	if !reflect.DeepEqual(lanes, wantLanes) {
		t.Errorf("lanes = %v, want %v", lanes, wantLanes)
	}
}

func TestFleetSpawnPopulatesSlot(t *testing.T) {
	f := newTestFleet()
	rng := &scriptedRNG{draws: []int{0, 2, 5}}

	if got := f.TrySpawn(rng, 1, 0); got != Spawned {
		t.Fatalf("outcome %v, want spawned", got)
	}
	if !reflect.DeepEqual(rng.calls, []int{2, 3, 11}) {
		t.Errorf("draw order = %v, want [2 3 11]", rng.calls)
	}

	s := f.slots[0]
	// Level 1 table maps draw 5 to type 2.
	want := Slot{
		Occupied: true,
		Type:     2,
		Width:    15,
		Height:   20,
		Speed:    6,
		Offset:   4,
		Sprite:   SpriteOpponent2,
		X:        62 + 4,
		Y:        3 - 20,
		Lane:     2,
	}
	if s != want {
		t.Errorf("slot = %+v\nwant   %+v", s, want)
	}
	if f.LastLane() != 2 {
		t.Errorf("LastLane() = %d, want 2", f.LastLane())
	}
}

func TestFleetTypeTableByLevel(t *testing.T) {
	tests := []struct {
		level     int
		bonus     int
		draw      int
		wantType  int
		wantSpeed int
	}{
		{1, 0, 5, 2, 6},
		{2, 1, 5, 2, 7},
		{3, 2, 5, 3, 5},
		{3, 2, 0, 0, 5},
		{5, 4, 9, 5, 9},
	}
	for _, tt := range tests {
		f := newTestFleet()
		rng := &scriptedRNG{draws: []int{0, 1, tt.draw}}
		if got := f.TrySpawn(rng, tt.level, tt.bonus); got != Spawned {
			t.Fatalf("level %d: outcome %v", tt.level, got)
		}
		s := f.slots[0]
		if s.Type != tt.wantType || s.Speed != tt.wantSpeed {
			t.Errorf("level %d draw %d: type %d speed %d, want type %d speed %d",
				tt.level, tt.draw, s.Type, s.Speed, tt.wantType, tt.wantSpeed)
		}
	}
}

func TestFleetSpawnOutcomes(t *testing.T) {
	f := newTestFleet()

	if got := f.TrySpawn(constRNG(1), 1, 0); got != SpawnGated {
		t.Errorf("odd gate draw: outcome %v, want gated", got)
	}
	if f.Active() != 0 {
		t.Fatal("gated attempt occupied a slot")
	}

	if got := f.TrySpawn(constRNG(0), 1, 0); got != Spawned {
		t.Fatalf("outcome %v, want spawned", got)
	}
	// The fresh car sits above the guard line.
	if got := f.TrySpawn(constRNG(0), 1, 0); got != SpawnBlocked {
		t.Errorf("outcome %v, want blocked", got)
	}
	f.slots[0].Y = 29
	if got := f.TrySpawn(constRNG(0), 1, 0); got != SpawnBlocked {
		t.Errorf("car at y=29: outcome %v, want blocked", got)
	}
	f.slots[0].Y = 30
	if got := f.TrySpawn(constRNG(0), 1, 0); got != Spawned {
		t.Errorf("car at y=30: outcome %v, want spawned", got)
	}
}

func TestFleetAdvanceDespawns(t *testing.T) {
	f := newTestFleet()
	f.slots[3] = Slot{Occupied: true, Height: 20, Speed: 4, Y: 140}

	f.Advance()
	if s := f.slots[3]; !s.Occupied || s.Y != 144 {
		t.Fatalf("slot = %+v, want occupied at y=144", s)
	}
	f.Advance()
	if f.slots[3].Occupied {
		t.Error("slot still occupied past the bottom edge")
	}
}

func TestFleetReset(t *testing.T) {
	f := newTestFleet()
	f.TrySpawn(constRNG(0), 1, 0)
	f.Reset()
	if f.Active() != 0 || f.LastLane() != 0 {
		t.Errorf("after Reset: active %d, last lane %d", f.Active(), f.LastLane())
	}
}
