package f1race

import "github.com/vovakirdan/f1race/internal/core"

// hitbox returns a car's collision box: its sprite bounds shifted one
// pixel up and left.
func hitbox(x, y, w, h int) core.Rect {
	return core.NewRect(x, y, w, h).Offset(-1, -1)
}

// Overlaps reports whether two collision boxes intersect.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// hasPassed reports whether the opponent box lies entirely below the player box.
func hasPassed(player, opponent core.Rect) bool {
	return player.Bottom() <= opponent.Y
}

// collisionResult summarizes one collision and scoring sweep.
type collisionResult struct {
	Crashed bool
	Slot    int   // Slot that caused the crash, or -1
	Passed  []int // Slots scored this sweep, in slot order
}

// sweep tests the player against every occupied slot in order. The first
// overlap stops the sweep; slots before it may already have scored.
// Passed slots are marked Scored so each car counts once.
func sweep(player core.Rect, slots []Slot) collisionResult {
	res := collisionResult{Slot: -1}
	for i := range slots {
		s := &slots[i]
		if !s.Occupied {
			continue
		}
		box := s.Box()
		if Overlaps(player, box) {
			res.Crashed = true
			res.Slot = i
			return res
		}
		if !s.Scored && hasPassed(player, box) {
			s.Scored = true
			res.Passed = append(res.Passed, i)
		}
	}
	return res
}
