package f1race

import (
	"math"

	"github.com/vovakirdan/f1race/internal/core"
)

// Autopilot drives the player car for headless runs. It steers toward the
// adjacent lane with the most free road ahead and flies when boxed in.
type Autopilot struct {
	// FlyDistance is the gap, in pixels, at which an unavoidable car triggers a flight.
	FlyDistance int
	// Slack is how far off a lane center the car may drift before steering.
	Slack int
}

// NewAutopilot returns an autopilot with tuned defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{FlyDistance: 12, Slack: 2}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if w.Phase() != PhasePlaying || w.Paused() {
		return in
	}

	p := w.Player()
	cur := laneOf(p)
	best := cur
	bestGap := laneGap(w, p, cur)
	for _, l := range []int{cur - 1, cur + 1} {
		if l < 0 || l >= LaneCount {
			continue
		}
		if g := laneGap(w, p, l); g > bestGap {
			best, bestGap = l, g
		}
	}

	if best == cur && bestGap < a.FlyDistance && w.Progress().FlyCount > 0 && !p.Flying {
		in.Set(core.ActionFly)
	}

	target := (LaneStart(best) + LaneEnd(best) - p.Width) / 2
	switch {
	case p.X < target-a.Slack:
		in.Set(core.ActionRight)
	case p.X > target+a.Slack:
		in.Set(core.ActionLeft)
	default:
		in.Release(core.ActionLeft)
		in.Release(core.ActionRight)
	}
	return in
}

// laneOf returns the lane under the center of the car.
func laneOf(p Player) int {
	center := p.X + p.Width/2
	return core.Clamp((center-RoadStartX)/(LaneWidth+SeparatorWidth), 0, LaneCount-1)
}

// laneGap returns the free distance above the car in lane l. Cars already
// alongside give zero; an empty lane gives math.MaxInt.
func laneGap(w *World, p Player, lane int) int {
	gap := math.MaxInt
	for _, s := range w.Fleet().Slots() {
		if !s.Occupied || s.Lane != lane || s.Y >= p.Y+p.Height {
			continue
		}
		gap = core.Min(gap, core.Max(p.Y-(s.Y+s.Height), 0))
	}
	return gap
}
