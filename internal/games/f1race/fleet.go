package f1race

import (
	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// OpponentType is an immutable oncoming car variant.
type OpponentType struct {
	Width, Height int
	Speed         int // Base pixels per tick
	Offset        int // Horizontal offset that centers the car in its lane
	Sprite        SpriteID
}

func newOpponentTypes(cfgs []config.OpponentTypeConfig) []OpponentType {
	types := make([]OpponentType, len(cfgs))
	for i, c := range cfgs {
		types[i] = OpponentType{
			Width:  c.Width,
			Height: c.Height,
			Speed:  c.Speed,
			Offset: (LaneWidth - c.Width) / 2,
			Sprite: OpponentSprite(i),
		}
	}
	return types
}

// Slot holds one oncoming car. Unoccupied slots carry no meaning.
type Slot struct {
	Occupied bool
	Type     int
	Width    int
	Height   int
	Speed    int
	Offset   int
	Sprite   SpriteID
	X, Y     int
	Lane     int
	Scored   bool // The car has been passed and counted
}

// Box returns the collision box.
func (s Slot) Box() core.Rect {
	return hitbox(s.X, s.Y, s.Width, s.Height)
}

// SpawnOutcome tells what a spawn attempt did.
type SpawnOutcome int

const (
	SpawnGated    SpawnOutcome = iota // The appear-rate draw skipped this tick
	SpawnPoolFull                     // Every slot is occupied
	SpawnBlocked                      // A car near the top leaves no room
	Spawned
)

// String returns the outcome name.
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnGated:
		return "gated"
	case SpawnPoolFull:
		return "pool_full"
	case SpawnBlocked:
		return "blocked"
	case Spawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// Fleet manages the fixed pool of oncoming cars.
type Fleet struct {
	slots    [SlotCount]Slot
	types    []OpponentType
	cfg      config.OpponentsConfig
	guardY   float64 // Cars above this line block spawning
	lastLane int
}

// NewFleet creates an empty fleet. playerHeight scales the spawn guard band.
func NewFleet(cfg config.OpponentsConfig, playerHeight int) *Fleet {
	f := &Fleet{
		types:  newOpponentTypes(cfg.Types),
		cfg:    cfg,
		guardY: float64(playerHeight) * cfg.SpawnGuard,
	}
	f.Reset()
	return f
}

// Reset empties every slot and forgets the last lane.
func (f *Fleet) Reset() {
	f.slots = [SlotCount]Slot{}
	f.lastLane = 0
}

// TrySpawn makes one spawn attempt. Draws happen in a fixed order:
// appear gate, lane, type. The guard is checked after the draws, so a
// blocked attempt still consumes them.
func (f *Fleet) TrySpawn(rng RNG, level, speedBonus int) SpawnOutcome {
	if rng.Intn(f.cfg.AppearRate) != 0 {
		return SpawnGated
	}

	idx := f.firstFree()
	if idx < 0 {
		return SpawnPoolFull
	}

	lane := rng.Intn(LaneCount)
	if lane == f.lastLane {
		lane = (lane + 1) % LaneCount
	}

	table := f.cfg.TableFor(level)
	typ := table[rng.Intn(len(table))]

	for i := range f.slots {
		if f.slots[i].Occupied && float64(f.slots[i].Y) < f.guardY {
			return SpawnBlocked
		}
	}

	t := f.types[typ]
	f.slots[idx] = Slot{
		Occupied: true,
		Type:     typ,
		Width:    t.Width,
		Height:   t.Height,
		Speed:    t.Speed + speedBonus,
		Offset:   t.Offset,
		Sprite:   t.Sprite,
		X:        LaneStart(lane) + t.Offset,
		Y:        DisplayStartY - t.Height,
		Lane:     lane,
	}
	f.lastLane = lane
	return Spawned
}

// Advance moves every car down by its speed and frees those that left the
// bottom of the track.
func (f *Fleet) Advance() {
	for i := range f.slots {
		s := &f.slots[i]
		if !s.Occupied {
			continue
		}
		s.Y += s.Speed
		if s.Y > DisplayEndY+s.Height {
			*s = Slot{}
		}
	}
}

func (f *Fleet) firstFree() int {
	for i := range f.slots {
		if !f.slots[i].Occupied {
			return i
		}
	}
	return -1
}

// Slots returns the slot arena. Callers must not keep it across ticks.
func (f *Fleet) Slots() []Slot {
	return f.slots[:]
}

// Active returns the number of occupied slots.
func (f *Fleet) Active() int {
	n := 0
	for i := range f.slots {
		if f.slots[i].Occupied {
			n++
		}
	}
	return n
}

// LastLane returns the lane of the most recent spawn.
func (f *Fleet) LastLane() int {
	return f.lastLane
}

// Types returns the opponent variants.
func (f *Fleet) Types() []OpponentType {
	return f.types
}
