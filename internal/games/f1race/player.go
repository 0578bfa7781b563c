package f1race

import (
	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

// Player is the car under the player's control.
type Player struct {
	X, Y     int
	Width    int
	Height   int
	Flying   bool
	FlyFrame int // Ticks since take-off while Flying
}

// newPlayer places the car centered in the middle lane, one pixel above the bottom edge.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:      (LaneStart(1) + LaneEnd(1) - cfg.Width) / 2,
		Y:      DisplayEndY - cfg.Height - 1,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Box returns the collision box, inset one pixel up and left like every car.
func (p Player) Box() core.Rect {
	return hitbox(p.X, p.Y, p.Width, p.Height)
}

// minX..maxY bound the car's top-left corner so it stays on the road.
func (p Player) minX() int { return RoadStartX }
func (p Player) maxX() int { return RoadEndX - p.Width }
func (p Player) minY() int { return DisplayStartY }
func (p Player) maxY() int { return DisplayEndY - p.Height }

// Move applies one tick of held directions. Shifts are shortened at the
// road edges so the car stops exactly on the boundary. Up and down have
// no effect while flying.
func (p *Player) Move(keys Keys, shift int) {
	if !p.Flying {
		if keys.Up {
			p.Y = core.Max(p.Y-shift, p.minY())
		}
		if keys.Down {
			p.Y = core.Min(p.Y+shift, p.maxY())
		}
	}
	if keys.Right {
		p.X = core.Min(p.X+shift, p.maxX())
	}
	if keys.Left {
		p.X = core.Max(p.X-shift, p.minX())
	}
}

// Ascend lifts a flying car, stopping at the top edge.
func (p *Player) Ascend(shift int) {
	p.Y = core.Max(p.Y-shift, p.minY())
}

// TakeOff starts a flight if the car is grounded and a fly is available.
// It returns false without changing anything otherwise.
func (p *Player) TakeOff(flyCount *int) bool {
	if p.Flying || *flyCount <= 0 {
		return false
	}
	p.Flying = true
	p.FlyFrame = 0
	*flyCount--
	return true
}

// advanceFlight counts one flight frame and lands the car after frames ticks.
func (p *Player) advanceFlight(frames int) (landed bool) {
	if !p.Flying {
		return false
	}
	p.FlyFrame++
	if p.FlyFrame >= frames {
		p.Flying = false
		return true
	}
	return false
}

// Keys is the held state of the four directions. At most one is held:
// pressing a direction releases the others.
type Keys struct {
	Left, Right, Up, Down bool
}

// Press holds a direction and releases the other three.
func (k *Keys) Press(a core.Action) {
	if !a.IsDirection() {
		return
	}
	k.Clear()
	k.set(a, true)
}

// Release lets go of a direction.
func (k *Keys) Release(a core.Action) {
	k.set(a, false)
}

// Clear releases everything.
func (k *Keys) Clear() {
	*k = Keys{}
}

// Any reports whether a direction is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Up || k.Down
}

func (k *Keys) set(a core.Action, v bool) {
	switch a {
	case core.ActionLeft:
		k.Left = v
	case core.ActionRight:
		k.Right = v
	case core.ActionUp:
		k.Up = v
	case core.ActionDown:
		k.Down = v
	}
}
